// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDuplicateApplication 唯一索引 (job_id, uid) 冲突
	// 并发重复投递由数据库裁决，这里不做先查后插
	ErrDuplicateApplication = errors.New("重复投递")
	// ErrInvalidTransition 状态已是终态，或被并发更新
	ErrInvalidTransition = errors.New("非法的状态流转")
)

type ApplicationDAO interface {
	// Create 投递主记录、答案和 applied 时间线在一个事务里落库
	// 要么全部成功，要么全部不写
	Create(ctx context.Context, app Application, answers []ScreeningAnswer) (int64, error)
	// Update 修改求职信/简历等字段并以 (application_id, question_id) 为键 upsert 答案
	Update(ctx context.Context, app Application, answers []ScreeningAnswer) error
	FindByID(ctx context.Context, id int64) (Application, error)
	FindByJobAndUid(ctx context.Context, jobID, uid int64) (Application, error)
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Application, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	FindAnswers(ctx context.Context, applicationID int64) ([]ScreeningAnswer, error)
	// Transition 状态更新和时间线追加在一个事务里
	// from 之外的当前状态会返回 ErrInvalidTransition
	Transition(ctx context.Context, id int64, from []string, to string, entry ApplicationTimeline) error
	Timeline(ctx context.Context, applicationID int64) ([]ApplicationTimeline, error)
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (g *GORMApplicationDAO) Create(ctx context.Context, app Application, answers []ScreeningAnswer) (int64, error) {
	now := time.Now().UnixMilli()
	app.Ctime = now
	app.Utime = now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&app).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) {
				const uniqueIndexErrNo uint16 = 1062
				if me.Number == uniqueIndexErrNo {
					return ErrDuplicateApplication
				}
			}
			return err
		}
		if err := g.upsertAnswers(tx, app.ID, answers, now); err != nil {
			return err
		}
		return tx.Create(&ApplicationTimeline{
			ApplicationID: app.ID,
			Type:          "applied",
			Ctime:         now,
		}).Error
	})
	if err != nil {
		return 0, err
	}
	return app.ID, nil
}

func (g *GORMApplicationDAO) Update(ctx context.Context, app Application, answers []ScreeningAnswer) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Application{}).
			Where("id = ?", app.ID).
			Updates(map[string]any{
				"cover_letter":  app.CoverLetter,
				"resume_url":    app.ResumeURL,
				"portfolio_url": app.PortfolioURL,
				"utime":         now,
			}).Error
		if err != nil {
			return err
		}
		return g.upsertAnswers(tx, app.ID, answers, now)
	})
}

// upsertAnswers 同一问题重复提交时保留最新值，幂等
func (g *GORMApplicationDAO) upsertAnswers(tx *gorm.DB, applicationID int64, answers []ScreeningAnswer, now int64) error {
	if len(answers) == 0 {
		return nil
	}
	for i := range answers {
		answers[i].ApplicationID = applicationID
		answers[i].Ctime = now
		answers[i].Utime = now
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "application_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"answer_text",
			"selected_options",
			"passed_auto_filter",
			"utime",
		}),
	}).Create(&answers).Error
}

func (g *GORMApplicationDAO) FindByID(ctx context.Context, id int64) (Application, error) {
	var app Application
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	return app, err
}

func (g *GORMApplicationDAO) FindByJobAndUid(ctx context.Context, jobID, uid int64) (Application, error) {
	var app Application
	err := g.db.WithContext(ctx).Where("job_id = ? AND uid = ?", jobID, uid).First(&app).Error
	return app, err
}

func (g *GORMApplicationDAO) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Application, error) {
	var apps []Application
	err := g.db.WithContext(ctx).Where("uid = ?", uid).
		Order("ctime DESC").
		Offset(offset).
		Limit(limit).
		Find(&apps).Error
	return apps, err
}

func (g *GORMApplicationDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Application{}).Where("uid = ?", uid).Count(&count).Error
	return count, err
}

func (g *GORMApplicationDAO) FindAnswers(ctx context.Context, applicationID int64) ([]ScreeningAnswer, error) {
	var ans []ScreeningAnswer
	err := g.db.WithContext(ctx).Where("application_id = ?", applicationID).Find(&ans).Error
	return ans, err
}

func (g *GORMApplicationDAO) Transition(ctx context.Context, id int64, from []string, to string, entry ApplicationTimeline) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Application{}).
			Where("id = ? AND status IN ?", id, from).
			Updates(map[string]any{
				"status": to,
				"utime":  now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		entry.ApplicationID = id
		entry.Ctime = now
		return tx.Create(&entry).Error
	})
}

func (g *GORMApplicationDAO) Timeline(ctx context.Context, applicationID int64) ([]ApplicationTimeline, error) {
	var entries []ApplicationTimeline
	err := g.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

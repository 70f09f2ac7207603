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
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type QuestionDAO interface {
	// FindByJobID 按 display_order 升序返回职位的全部筛选问题
	FindByJobID(ctx context.Context, jobID int64) ([]ScreeningQuestion, error)
	Save(ctx context.Context, q ScreeningQuestion) (int64, error)
	Delete(ctx context.Context, jobID, id int64) error
}

type GORMQuestionDAO struct {
	db *egorm.Component
}

func NewGORMQuestionDAO(db *egorm.Component) QuestionDAO {
	return &GORMQuestionDAO{db: db}
}

func (g *GORMQuestionDAO) FindByJobID(ctx context.Context, jobID int64) ([]ScreeningQuestion, error) {
	var qs []ScreeningQuestion
	err := g.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("display_order ASC").
		Find(&qs).Error
	return qs, err
}

func (g *GORMQuestionDAO) Save(ctx context.Context, q ScreeningQuestion) (int64, error) {
	now := time.Now().UnixMilli()
	q.Ctime = now
	q.Utime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"prompt",
			"type",
			"options",
			"required",
			"auto_filter",
			"expected_answer",
			"display_order",
			"utime",
		}),
	}).Create(&q).Error
	return q.ID, err
}

func (g *GORMQuestionDAO) Delete(ctx context.Context, jobID, id int64) error {
	return g.db.WithContext(ctx).
		Where("job_id = ? AND id = ?", jobID, id).
		Delete(&ScreeningQuestion{}).Error
}

// ScreeningQuestion 职位的筛选问题
// 雇主编辑或删除已有人作答的问题属于接受的数据质量风险，这里不做特殊处理
type ScreeningQuestion struct {
	ID     int64  `gorm:"primaryKey,autoIncrement"`
	JobID  int64  `gorm:"not null;index:idx_job_id;comment:所属职位ID"`
	Prompt string `gorm:"type:text;not null;comment:问题文本"`
	Type   string `gorm:"type:varchar(32);not null;comment:问题类型 yes_no/multiple_choice/text"`
	// Options 仅多选题有值
	Options  sqlx.JsonColumn[[]string] `gorm:"type:varchar(2048)"`
	Required bool                      `gorm:"not null;default:false;comment:是否必答"`
	// AutoFilter 开启后按 expected_answer 自动计算通过与否
	AutoFilter     bool   `gorm:"not null;default:false"`
	ExpectedAnswer string `gorm:"type:varchar(1024);not null;default:'';comment:期望答案，语义取决于类型"`
	DisplayOrder   int    `gorm:"not null;default:0"`
	Ctime          int64
	Utime          int64
}

func (ScreeningQuestion) TableName() string {
	return "screening_questions"
}

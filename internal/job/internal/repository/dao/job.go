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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type JobDAO interface {
	FindByID(ctx context.Context, id int64) (Job, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Job, error)
	Save(ctx context.Context, j Job) (int64, error)
	// IncrApplicantCnt 投递计数，advisory，调用方自行决定是否忽略失败
	IncrApplicantCnt(ctx context.Context, id int64) error
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{db: db}
}

func (g *GORMJobDAO) FindByID(ctx context.Context, id int64) (Job, error) {
	var j Job
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&j).Error
	return j, err
}

func (g *GORMJobDAO) FindByIDs(ctx context.Context, ids []int64) ([]Job, error) {
	var js []Job
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&js).Error
	return js, err
}

func (g *GORMJobDAO) Save(ctx context.Context, j Job) (int64, error) {
	now := time.Now().UnixMilli()
	j.Ctime = now
	j.Utime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"company_id",
			"company_name",
			"title",
			"location",
			"status",
			"utime",
		}),
	}).Create(&j).Error
	return j.ID, err
}

func (g *GORMJobDAO) IncrApplicantCnt(ctx context.Context, id int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).
		Model(&Job{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"applicant_cnt": gorm.Expr("`applicant_cnt` + 1"),
			"utime":         now,
		}).Error
}

// Job 职位。对投递流水线来说是只读的，创作端维护
type Job struct {
	ID          int64  `gorm:"primaryKey,autoIncrement"`
	CompanyID   int64  `gorm:"not null;index:idx_company_id;comment:所属公司ID"`
	CompanyName string `gorm:"type:varchar(256);not null;default:''"`
	Title       string `gorm:"type:varchar(512);not null"`
	Location    string `gorm:"type:varchar(256);not null;default:''"`
	Status      string `gorm:"type:ENUM('active','paused','closed','draft');not null;default:'draft';comment:职位状态"`
	// ApplicantCnt 冗余的投递人数，允许和实际行数有出入
	ApplicantCnt int64 `gorm:"not null;default:0"`
	Ctime        int64
	Utime        int64
}

func (Job) TableName() string {
	return "jobs"
}

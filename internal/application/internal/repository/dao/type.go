package dao

import (
	"database/sql"

	"github.com/ecodeclub/ekit/sqlx"
)

// Application 投递主记录
// (job_id, uid) 上的唯一索引是"是否已投递"的唯一裁决者
type Application struct {
	ID           int64  `gorm:"primaryKey,autoIncrement"`
	JobID        int64  `gorm:"not null;uniqueIndex:unq_job_id_uid,priority:1;comment:职位ID"`
	Uid          int64  `gorm:"not null;uniqueIndex:unq_job_id_uid,priority:2;index:idx_uid;comment:候选人ID"`
	Status       string `gorm:"type:ENUM('applied','viewed','interview_scheduled','accepted','rejected');not null;default:'applied';comment:投递状态"`
	CoverLetter  string `gorm:"type:text;comment:求职信"`
	ResumeURL    string `gorm:"type:varchar(1024);not null;default:'';comment:简历在OSS中的存储URL"`
	PortfolioURL string `gorm:"type:varchar(1024);not null;default:'';comment:作品集URL"`
	Ctime        int64
	Utime        int64
}

func (Application) TableName() string {
	return "applications"
}

// ScreeningAnswer 筛选问题的答案
// (application_id, question_id) 唯一，重复提交走 upsert
type ScreeningAnswer struct {
	ID            int64 `gorm:"primaryKey,autoIncrement"`
	ApplicationID int64 `gorm:"not null;uniqueIndex:unq_application_id_question_id,priority:1"`
	QuestionID    int64 `gorm:"not null;uniqueIndex:unq_application_id_question_id,priority:2"`
	AnswerText    string `gorm:"type:text"`
	// SelectedOptions 仅多选题有值
	SelectedOptions sqlx.JsonColumn[[]string] `gorm:"type:varchar(2048)"`
	// PassedAutoFilter NULL 表示未评估，提交时算一次之后不再重算
	PassedAutoFilter sql.Null[bool] `gorm:"comment:自动筛选结果"`
	Ctime            int64
	Utime            int64
}

func (ScreeningAnswer) TableName() string {
	return "screening_answers"
}

// ApplicationTimeline 投递时间线，只追加，不改不删
type ApplicationTimeline struct {
	ID            int64  `gorm:"primaryKey,autoIncrement"`
	ApplicationID int64  `gorm:"not null;index:idx_application_id"`
	Type          string `gorm:"type:varchar(32);not null;comment:applied/viewed/interview_scheduled/message_sent/accepted/rejected"`
	// Actor 0 表示系统
	Actor int64 `gorm:"not null;default:0"`
	// Interview 仅 interview_scheduled 有值
	Interview sqlx.JsonColumn[Interview] `gorm:"type:varchar(1024)"`
	Message   string                     `gorm:"type:text;comment:给候选人的消息"`
	Ctime     int64
}

func (ApplicationTimeline) TableName() string {
	return "application_timelines"
}

// Interview 面试安排载荷
type Interview struct {
	Date int64  `json:"date"`
	Type string `json:"type"`
	Link string `json:"link"`
}

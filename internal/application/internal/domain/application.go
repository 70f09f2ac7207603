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

package domain

// ApplicationStatus 投递状态机
// applied -> viewed -> interview_scheduled -> accepted | rejected
// 单向流转，终态之后不允许任何变更
type ApplicationStatus string

const (
	StatusApplied            ApplicationStatus = "applied"
	StatusViewed             ApplicationStatus = "viewed"
	StatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	StatusAccepted           ApplicationStatus = "accepted"
	StatusRejected           ApplicationStatus = "rejected"
)

func (s ApplicationStatus) String() string {
	return string(s)
}

// IsTerminal accepted 和 rejected 是终态
func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Application 一次投递
// 唯一性约束：一个候选人对一个职位至多一条记录
type Application struct {
	ID           int64
	JobID        int64
	Uid          int64
	Status       ApplicationStatus
	CoverLetter  string
	ResumeURL    string
	PortfolioURL string
	// Answers 详情页填充
	Answers []Answer
	// Job 列表页和详情页填充，冗余展示信息
	Job   JobCard
	Ctime int64
	Utime int64
}

// JobCard 投递列表上展示的职位摘要
type JobCard struct {
	Title       string
	CompanyName string
	Location    string
}

// Answer 候选人对一道筛选问题的作答
type Answer struct {
	QuestionID int64
	Text       string
	// SelectedOptions 仅多选题有值，保持提交时的顺序
	SelectedOptions []string
	// Passed 自动筛选结果，nil 表示未评估
	// 提交时算一次，之后雇主改期望答案也不重算
	Passed *bool
}

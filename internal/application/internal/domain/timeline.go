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

// TimelineType 时间线条目类型
type TimelineType string

const (
	TimelineApplied            TimelineType = "applied"
	TimelineViewed             TimelineType = "viewed"
	TimelineInterviewScheduled TimelineType = "interview_scheduled"
	// TimelineMessageSent 站内信功能写入，本模块只读
	TimelineMessageSent TimelineType = "message_sent"
	TimelineAccepted    TimelineType = "accepted"
	TimelineRejected    TimelineType = "rejected"
)

func (t TimelineType) String() string {
	return string(t)
}

// SystemActor 系统动作（applied/viewed）的 actor
const SystemActor int64 = 0

// TimelineEntry 投递时间线，只追加，按插入顺序存储
type TimelineEntry struct {
	ID            int64
	ApplicationID int64
	Type          TimelineType
	// Actor 0 表示系统，否则是审阅人 uid
	Actor int64
	// Interview 仅 interview_scheduled 有值
	Interview *InterviewDetail
	// Message 接受/拒绝时附带的给候选人的消息
	Message string
	Ctime   int64
}

// InterviewDetail 面试安排
type InterviewDetail struct {
	// Date 面试时间，UTC Unix 毫秒数
	Date int64  `json:"date"`
	Type string `json:"type"`
	Link string `json:"link"`
}

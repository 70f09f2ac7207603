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

package web

type SubmitReq struct {
	JobID        int64    `json:"jobId"`
	CoverLetter  string   `json:"coverLetter"`
	ResumeURL    string   `json:"resumeUrl"`
	PortfolioURL string   `json:"portfolioUrl"`
	Answers      []Answer `json:"answers"`
}

type Answer struct {
	QuestionID      int64    `json:"questionId"`
	AnswerText      string   `json:"answerText,omitempty"`
	SelectedOptions []string `json:"selectedOptions,omitempty"`
	// Passed 自动筛选结果，null 表示未评估，只在响应里出现
	Passed *bool `json:"passed,omitempty"`
}

type SubmitResp struct {
	ApplicationID int64 `json:"applicationId"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListResp struct {
	Total        int64         `json:"total"`
	Applications []Application `json:"applications"`
}

type DetailReq struct {
	JobID int64 `json:"jobId"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Application struct {
	ID           int64  `json:"id"`
	JobID        int64  `json:"jobId"`
	JobTitle     string `json:"jobTitle"`
	CompanyName  string `json:"companyName"`
	Location     string `json:"location"`
	Status       string `json:"status"`
	CoverLetter  string `json:"coverLetter,omitempty"`
	ResumeURL    string `json:"resumeUrl,omitempty"`
	PortfolioURL string `json:"portfolioUrl,omitempty"`

	Answers []Answer `json:"answers,omitempty"` // 仅详情页填充

	Ctime int64 `json:"ctime"`
}

type ScheduleInterviewReq struct {
	ID int64 `json:"id"`
	// Date 面试时间，UTC Unix 毫秒数
	Date int64  `json:"date"`
	Type string `json:"type"`
	Link string `json:"link"`
}

type DecisionReq struct {
	ID int64 `json:"id"`
	// Message 给候选人的消息，可以为空
	Message string `json:"message"`
}

type TimelineEntry struct {
	Type      string     `json:"type"`
	Actor     int64      `json:"actor"`
	Interview *Interview `json:"interview,omitempty"`
	Message   string     `json:"message,omitempty"`
	Ctime     int64      `json:"ctime"`
}

type Interview struct {
	Date int64  `json:"date"`
	Type string `json:"type"`
	Link string `json:"link"`
}

type TimelineResp struct {
	Entries []TimelineEntry `json:"entries"`
}

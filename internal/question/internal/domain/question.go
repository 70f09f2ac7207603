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

// QuestionType 筛选问题的类型，闭集
type QuestionType string

const (
	// TypeYesNo 是非题
	TypeYesNo QuestionType = "yes_no"
	// TypeMultipleChoice 多选题
	TypeMultipleChoice QuestionType = "multiple_choice"
	// TypeText 简答题
	TypeText QuestionType = "text"
)

func (t QuestionType) String() string {
	return string(t)
}

// Question 雇主为某个职位配置的筛选问题
// 对投递流水线来说是只读的，雇主在创作端维护
type Question struct {
	ID     int64
	JobID  int64
	Prompt string
	Type   QuestionType
	// Options 仅 multiple_choice 类型有值，保持配置时的顺序
	Options  []string
	Required bool
	// AutoFilter 为 true 时，投递的答案会按照 ExpectedAnswer 自动算出通过与否
	AutoFilter     bool
	ExpectedAnswer string
	DisplayOrder   int
	Utime          int64
}

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

package service

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/jobhub/internal/application/internal/domain"
	"github.com/ecodeclub/jobhub/internal/question"
)

var (
	// ErrInvalidQuestionReference 答案引用了不属于该职位的问题
	ErrInvalidQuestionReference = errors.New("答案引用了不属于该职位的问题")
	// ErrMissingRequiredAnswer 必答问题没有作答
	ErrMissingRequiredAnswer = errors.New("必答问题未作答")
)

// AnswerValidator 把提交的答案和职位的问题目录对一遍，纯校验，没有副作用
// 校验全部通过之前不会发生任何写入
type AnswerValidator struct{}

func NewAnswerValidator() *AnswerValidator {
	return &AnswerValidator{}
}

// Validate 全量校验：引用合法性 + 必答完整性
// 返回的错误聚合了所有违规项，调用方可以用 errors.Is 判断类别
func (v *AnswerValidator) Validate(catalog []question.Question, answers []domain.Answer) error {
	violations := v.validateRefs(catalog, answers)

	answered := make(map[int64]struct{}, len(answers))
	for _, ans := range answers {
		answered[ans.QuestionID] = struct{}{}
	}
	for _, q := range catalog {
		if !q.Required {
			continue
		}
		if _, ok := answered[q.ID]; !ok {
			violations = append(violations,
				fmt.Errorf("%w: 问题 %d", ErrMissingRequiredAnswer, q.ID))
		}
	}
	return errors.Join(violations...)
}

// ValidateRefs 只校验引用合法性，修改投递时用
// 修改不要求重新提交全部必答题，但引用仍然必须属于该职位
func (v *AnswerValidator) ValidateRefs(catalog []question.Question, answers []domain.Answer) error {
	return errors.Join(v.validateRefs(catalog, answers)...)
}

func (v *AnswerValidator) validateRefs(catalog []question.Question, answers []domain.Answer) []error {
	valid := make(map[int64]struct{}, len(catalog))
	for _, q := range catalog {
		valid[q.ID] = struct{}{}
	}
	var violations []error
	for _, ans := range answers {
		if _, ok := valid[ans.QuestionID]; !ok {
			violations = append(violations,
				fmt.Errorf("%w: 问题 %d", ErrInvalidQuestionReference, ans.QuestionID))
		}
	}
	return violations
}

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
	"strings"

	"github.com/ecodeclub/jobhub/internal/application/internal/domain"
	"github.com/ecodeclub/jobhub/internal/question"
)

// AutoFilterEvaluator 按问题类型计算答案的自动筛选结果
// 结果只是给审阅人排序/过滤用的标注，永远不会因此拦下投递，
// 所以任何算不出来的情形都返回 nil（未评估），不报错
type AutoFilterEvaluator struct{}

func NewAutoFilterEvaluator() *AutoFilterEvaluator {
	return &AutoFilterEvaluator{}
}

func (e *AutoFilterEvaluator) Evaluate(q question.Question, ans domain.Answer) *bool {
	if !q.AutoFilter {
		return nil
	}
	switch q.Type {
	case question.TypeYesNo:
		return e.evaluateYesNo(q, ans)
	case question.TypeMultipleChoice:
		return e.evaluateMultipleChoice(q, ans)
	case question.TypeText:
		return e.evaluateText(q, ans)
	default:
		// 雇主配置可能不完整或者是后加的类型，不拦投递
		return nil
	}
}

func (e *AutoFilterEvaluator) evaluateYesNo(q question.Question, ans domain.Answer) *bool {
	expected := strings.ToLower(strings.TrimSpace(q.ExpectedAnswer))
	if expected == "" {
		return nil
	}
	passed := strings.ToLower(strings.TrimSpace(ans.Text)) == expected
	return &passed
}

// evaluateMultipleChoice 期望答案是逗号分隔的选项集合，
// 候选人选中全部期望项即通过，多选不扣分
func (e *AutoFilterEvaluator) evaluateMultipleChoice(q question.Question, ans domain.Answer) *bool {
	var expected []string
	for _, opt := range strings.Split(q.ExpectedAnswer, ",") {
		opt = strings.TrimSpace(opt)
		if opt != "" {
			expected = append(expected, opt)
		}
	}
	if len(expected) == 0 {
		return nil
	}
	selected := make(map[string]struct{}, len(ans.SelectedOptions))
	for _, opt := range ans.SelectedOptions {
		selected[opt] = struct{}{}
	}
	passed := true
	for _, opt := range expected {
		if _, ok := selected[opt]; !ok {
			passed = false
			break
		}
	}
	return &passed
}

// evaluateText 去掉两端空白后精确匹配，区分大小写
func (e *AutoFilterEvaluator) evaluateText(q question.Question, ans domain.Answer) *bool {
	expected := strings.TrimSpace(q.ExpectedAnswer)
	if expected == "" {
		return nil
	}
	passed := strings.TrimSpace(ans.Text) == expected
	return &passed
}

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
	"testing"

	"github.com/ecodeclub/jobhub/internal/application/internal/domain"
	"github.com/ecodeclub/jobhub/internal/question"
	"github.com/stretchr/testify/assert"
)

func TestAutoFilterEvaluator_Evaluate(t *testing.T) {
	t.Parallel()
	truePtr := true
	falsePtr := false
	testcases := []struct {
		name     string
		question question.Question
		answer   domain.Answer
		want     *bool
	}{
		{
			name: "非筛选题不评估",
			question: question.Question{
				Type:           question.TypeYesNo,
				AutoFilter:     false,
				ExpectedAnswer: "yes",
			},
			answer: domain.Answer{Text: "yes"},
			want:   nil,
		},
		{
			name: "是非题_大小写和空白不影响",
			question: question.Question{
				Type:           question.TypeYesNo,
				AutoFilter:     true,
				ExpectedAnswer: "Yes",
			},
			answer: domain.Answer{Text: "  yes "},
			want:   &truePtr,
		},
		{
			name: "是非题_不匹配",
			question: question.Question{
				Type:           question.TypeYesNo,
				AutoFilter:     true,
				ExpectedAnswer: "yes",
			},
			answer: domain.Answer{Text: "no"},
			want:   &falsePtr,
		},
		{
			name: "是非题_期望答案为空视为未评估",
			question: question.Question{
				Type:       question.TypeYesNo,
				AutoFilter: true,
			},
			answer: domain.Answer{Text: "yes"},
			want:   nil,
		},
		{
			name: "多选题_覆盖全部期望项即通过",
			question: question.Question{
				Type:           question.TypeMultipleChoice,
				AutoFilter:     true,
				ExpectedAnswer: "sql, python",
			},
			answer: domain.Answer{SelectedOptions: []string{"sql", "python", "go"}},
			want:   &truePtr,
		},
		{
			name: "多选题_缺少期望项不通过",
			question: question.Question{
				Type:           question.TypeMultipleChoice,
				AutoFilter:     true,
				ExpectedAnswer: "sql,python",
			},
			answer: domain.Answer{SelectedOptions: []string{"sql"}},
			want:   &falsePtr,
		},
		{
			name: "多选题_没选任何项不通过",
			question: question.Question{
				Type:           question.TypeMultipleChoice,
				AutoFilter:     true,
				ExpectedAnswer: "sql",
			},
			answer: domain.Answer{},
			want:   &falsePtr,
		},
		{
			name: "文本题_精确匹配区分大小写",
			question: question.Question{
				Type:           question.TypeText,
				AutoFilter:     true,
				ExpectedAnswer: "Beijing",
			},
			answer: domain.Answer{Text: "beijing"},
			want:   &falsePtr,
		},
		{
			name: "文本题_两端空白不影响",
			question: question.Question{
				Type:           question.TypeText,
				AutoFilter:     true,
				ExpectedAnswer: "Beijing",
			},
			answer: domain.Answer{Text: " Beijing "},
			want:   &truePtr,
		},
		{
			name: "未知类型不评估",
			question: question.Question{
				Type:           "video",
				AutoFilter:     true,
				ExpectedAnswer: "whatever",
			},
			answer: domain.Answer{Text: "whatever"},
			want:   nil,
		},
	}

	evaluator := NewAutoFilterEvaluator()
	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := evaluator.Evaluate(tc.question, tc.answer)
			assert.Equal(t, tc.want, got)
		})
	}
}

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
	"github.com/stretchr/testify/require"
)

func TestAnswerValidator_Validate(t *testing.T) {
	t.Parallel()
	catalog := []question.Question{
		{ID: 1, Required: true},
		{ID: 2, Required: false},
		{ID: 3, Required: true},
	}
	testcases := []struct {
		name    string
		answers []domain.Answer
		wantErr error
	}{
		{
			name: "全部必答题都回答了",
			answers: []domain.Answer{
				{QuestionID: 1, Text: "yes"},
				{QuestionID: 3, Text: "no"},
			},
		},
		{
			name: "选答题可以不答",
			answers: []domain.Answer{
				{QuestionID: 1, Text: "yes"},
				{QuestionID: 2, Text: "maybe"},
				{QuestionID: 3, Text: "no"},
			},
		},
		{
			name: "缺必答题",
			answers: []domain.Answer{
				{QuestionID: 1, Text: "yes"},
			},
			wantErr: ErrMissingRequiredAnswer,
		},
		{
			name: "引用了别的职位的问题",
			answers: []domain.Answer{
				{QuestionID: 1, Text: "yes"},
				{QuestionID: 3, Text: "no"},
				{QuestionID: 99, Text: "yes"},
			},
			wantErr: ErrInvalidQuestionReference,
		},
		{
			name:    "一个答案都没有",
			answers: nil,
			wantErr: ErrMissingRequiredAnswer,
		},
		{
			name: "同一道题答了两遍不算违规",
			answers: []domain.Answer{
				{QuestionID: 1, Text: "yes"},
				{QuestionID: 1, Text: "no"},
				{QuestionID: 3, Text: "no"},
			},
		},
	}

	validator := NewAnswerValidator()
	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Validate(catalog, tc.answers)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAnswerValidator_Validate_AllViolations(t *testing.T) {
	t.Parallel()
	catalog := []question.Question{
		{ID: 1, Required: true},
	}
	answers := []domain.Answer{
		{QuestionID: 99, Text: "yes"},
	}
	err := NewAnswerValidator().Validate(catalog, answers)
	require.Error(t, err)
	// 一次提交把所有问题都暴露出来，不让候选人挤牙膏式重试
	assert.ErrorIs(t, err, ErrInvalidQuestionReference)
	assert.ErrorIs(t, err, ErrMissingRequiredAnswer)
}

func TestAnswerValidator_ValidateRefs(t *testing.T) {
	t.Parallel()
	catalog := []question.Question{
		{ID: 1, Required: true},
		{ID: 2, Required: true},
	}
	// 修改投递允许只答一部分必答题
	err := NewAnswerValidator().ValidateRefs(catalog, []domain.Answer{
		{QuestionID: 1, Text: "yes"},
	})
	assert.NoError(t, err)

	err = NewAnswerValidator().ValidateRefs(catalog, []domain.Answer{
		{QuestionID: 42, Text: "yes"},
	})
	assert.ErrorIs(t, err, ErrInvalidQuestionReference)
}

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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/jobhub/internal/question/internal/domain"
	"github.com/ecodeclub/jobhub/internal/question/internal/repository/dao"
)

type QuestionRepository interface {
	// CatalogByJobID 返回职位的有序问题目录
	CatalogByJobID(ctx context.Context, jobID int64) ([]domain.Question, error)
	Save(ctx context.Context, q domain.Question) (int64, error)
	Delete(ctx context.Context, jobID, id int64) error
}

type questionRepository struct {
	dao dao.QuestionDAO
}

func NewQuestionRepository(d dao.QuestionDAO) QuestionRepository {
	return &questionRepository{dao: d}
}

func (r *questionRepository) CatalogByJobID(ctx context.Context, jobID int64) ([]domain.Question, error) {
	qs, err := r.dao.FindByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return slice.Map(qs, func(_ int, src dao.ScreeningQuestion) domain.Question {
		return r.toDomain(src)
	}), nil
}

func (r *questionRepository) Save(ctx context.Context, q domain.Question) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(q))
}

func (r *questionRepository) Delete(ctx context.Context, jobID, id int64) error {
	return r.dao.Delete(ctx, jobID, id)
}

func (r *questionRepository) toDomain(q dao.ScreeningQuestion) domain.Question {
	return domain.Question{
		ID:             q.ID,
		JobID:          q.JobID,
		Prompt:         q.Prompt,
		Type:           domain.QuestionType(q.Type),
		Options:        q.Options.Val,
		Required:       q.Required,
		AutoFilter:     q.AutoFilter,
		ExpectedAnswer: q.ExpectedAnswer,
		DisplayOrder:   q.DisplayOrder,
		Utime:          q.Utime,
	}
}

func (r *questionRepository) toEntity(q domain.Question) dao.ScreeningQuestion {
	return dao.ScreeningQuestion{
		ID:     q.ID,
		JobID:  q.JobID,
		Prompt: q.Prompt,
		Type:   q.Type.String(),
		Options: sqlx.JsonColumn[[]string]{
			Val:   q.Options,
			Valid: len(q.Options) > 0,
		},
		Required:       q.Required,
		AutoFilter:     q.AutoFilter,
		ExpectedAnswer: q.ExpectedAnswer,
		DisplayOrder:   q.DisplayOrder,
	}
}

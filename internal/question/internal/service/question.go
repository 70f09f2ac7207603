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
	"context"

	"github.com/ecodeclub/jobhub/internal/question/internal/domain"
	"github.com/ecodeclub/jobhub/internal/question/internal/repository"
)

//go:generate mockgen -source=./question.go -destination=../../mocks/question.mock.go -package=quemocks -typed=true Service

// Service 提供投递流水线的只读目录访问，以及创作端的问题维护
type Service interface {
	// CatalogByJobID 按 display_order 升序返回职位的全部筛选问题
	CatalogByJobID(ctx context.Context, jobID int64) ([]domain.Question, error)
	Save(ctx context.Context, q domain.Question) (int64, error)
	Delete(ctx context.Context, jobID, id int64) error
}

type service struct {
	repo repository.QuestionRepository
}

func NewService(repo repository.QuestionRepository) Service {
	return &service{repo: repo}
}

func (s *service) CatalogByJobID(ctx context.Context, jobID int64) ([]domain.Question, error) {
	return s.repo.CatalogByJobID(ctx, jobID)
}

func (s *service) Save(ctx context.Context, q domain.Question) (int64, error) {
	return s.repo.Save(ctx, q)
}

func (s *service) Delete(ctx context.Context, jobID, id int64) error {
	return s.repo.Delete(ctx, jobID, id)
}

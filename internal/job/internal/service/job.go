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
	"errors"

	"github.com/ecodeclub/jobhub/internal/job/internal/domain"
	"github.com/ecodeclub/jobhub/internal/job/internal/repository"
	"github.com/ecodeclub/jobhub/internal/job/internal/repository/dao"
)

var ErrJobNotFound = errors.New("职位不存在")

//go:generate mockgen -source=./job.go -destination=../../mocks/job.mock.go -package=jobmocks -typed=true Service

type Service interface {
	FindByID(ctx context.Context, id int64) (domain.Job, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Job, error)
	Save(ctx context.Context, j domain.Job) (int64, error)
	IncrApplicantCnt(ctx context.Context, id int64) error
}

type service struct {
	repo repository.JobRepository
}

func NewService(repo repository.JobRepository) Service {
	return &service{repo: repo}
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Job, error) {
	j, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Job{}, ErrJobNotFound
	}
	return j, err
}

func (s *service) FindByIDs(ctx context.Context, ids []int64) ([]domain.Job, error) {
	return s.repo.FindByIDs(ctx, ids)
}

func (s *service) Save(ctx context.Context, j domain.Job) (int64, error) {
	return s.repo.Save(ctx, j)
}

func (s *service) IncrApplicantCnt(ctx context.Context, id int64) error {
	return s.repo.IncrApplicantCnt(ctx, id)
}

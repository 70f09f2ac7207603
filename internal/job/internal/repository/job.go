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
	"github.com/ecodeclub/jobhub/internal/job/internal/domain"
	"github.com/ecodeclub/jobhub/internal/job/internal/repository/cache"
	"github.com/ecodeclub/jobhub/internal/job/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type JobRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Job, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Job, error)
	Save(ctx context.Context, j domain.Job) (int64, error)
	// IncrApplicantCnt 数据库计数为准，缓存尽力刷新
	IncrApplicantCnt(ctx context.Context, id int64) error
}

type jobRepository struct {
	dao    dao.JobDAO
	cache  cache.JobCache
	logger *elog.Component
}

func NewJobRepository(d dao.JobDAO, c cache.JobCache) JobRepository {
	return &jobRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *jobRepository) FindByID(ctx context.Context, id int64) (domain.Job, error) {
	j, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	res := r.toDomain(j)
	if cnt, cerr := r.cache.GetApplicantCnt(ctx, id); cerr == nil {
		res.ApplicantCnt = cnt
	}
	return res, nil
}

func (r *jobRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Job, error) {
	js, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(js, func(_ int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepository) Save(ctx context.Context, j domain.Job) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(j))
}

func (r *jobRepository) IncrApplicantCnt(ctx context.Context, id int64) error {
	err := r.dao.IncrApplicantCnt(ctx, id)
	if err != nil {
		return err
	}
	j, err := r.dao.FindByID(ctx, id)
	if err != nil {
		// 数据库已经加上了，缓存刷不刷无所谓
		r.logger.Warn("刷新投递人数缓存失败", elog.FieldErr(err), elog.Int64("jid", id))
		return nil
	}
	if cerr := r.cache.SetApplicantCnt(ctx, id, j.ApplicantCnt); cerr != nil {
		r.logger.Warn("刷新投递人数缓存失败", elog.FieldErr(cerr), elog.Int64("jid", id))
	}
	return nil
}

func (r *jobRepository) toDomain(j dao.Job) domain.Job {
	return domain.Job{
		ID:           j.ID,
		CompanyID:    j.CompanyID,
		CompanyName:  j.CompanyName,
		Title:        j.Title,
		Location:     j.Location,
		Status:       domain.JobStatus(j.Status),
		ApplicantCnt: j.ApplicantCnt,
		Ctime:        j.Ctime,
		Utime:        j.Utime,
	}
}

func (r *jobRepository) toEntity(j domain.Job) dao.Job {
	return dao.Job{
		ID:           j.ID,
		CompanyID:    j.CompanyID,
		CompanyName:  j.CompanyName,
		Title:        j.Title,
		Location:     j.Location,
		Status:       j.Status.String(),
		ApplicantCnt: j.ApplicantCnt,
	}
}

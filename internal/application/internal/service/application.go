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

	"github.com/ecodeclub/jobhub/internal/application/internal/domain"
	"github.com/ecodeclub/jobhub/internal/application/internal/event"
	"github.com/ecodeclub/jobhub/internal/application/internal/repository"
	"github.com/ecodeclub/jobhub/internal/job"
	"github.com/ecodeclub/jobhub/internal/question"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrJobNotFound          = errors.New("职位不存在")
	ErrJobNotOpen           = errors.New("该职位暂不接受投递")
	ErrDuplicateApplication = errors.New("已经投递过该职位")
	ErrApplicationNotFound  = errors.New("投递记录不存在")
)

//go:generate mockgen -source=./application.go -destination=../../mocks/application.mock.go -package=appmocks -typed=true Service

// Service 投递主流程：目录读取 -> 校验 -> 自动筛选 -> 落库
// 校验全部通过之前不写任何东西
type Service interface {
	// Submit 创建投递。重复投递返回 ErrDuplicateApplication，
	// 调用方应当引导候选人走修改流程
	Submit(ctx context.Context, app domain.Application, answers []domain.Answer) (int64, error)
	// Update 修改已有投递，按 (job, uid) 定位
	Update(ctx context.Context, app domain.Application, answers []domain.Answer) error
	// List 候选人的投递列表，带职位摘要
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Application, int64, error)
	// Detail 候选人视角：某职位下自己的投递详情，带答案
	Detail(ctx context.Context, jobID, uid int64) (domain.Application, error)
	// DetailByID 审阅人视角：按投递 ID 取详情，带答案
	DetailByID(ctx context.Context, id int64) (domain.Application, error)
}

type service struct {
	repo      repository.ApplicationRepository
	jobSvc    job.Service
	queSvc    question.Service
	validator *AnswerValidator
	evaluator *AutoFilterEvaluator
	producer  event.ApplicantEventProducer
	logger    *elog.Component
}

func NewService(repo repository.ApplicationRepository,
	jobSvc job.Service,
	queSvc question.Service,
	producer event.ApplicantEventProducer) Service {
	return &service{
		repo:      repo,
		jobSvc:    jobSvc,
		queSvc:    queSvc,
		validator: NewAnswerValidator(),
		evaluator: NewAutoFilterEvaluator(),
		producer:  producer,
		logger:    elog.DefaultLogger,
	}
}

func (s *service) Submit(ctx context.Context, app domain.Application, answers []domain.Answer) (int64, error) {
	j, err := s.jobSvc.FindByID(ctx, app.JobID)
	if errors.Is(err, job.ErrJobNotFound) {
		return 0, ErrJobNotFound
	}
	if err != nil {
		return 0, err
	}
	if !j.Status.AcceptsApplications() {
		return 0, ErrJobNotOpen
	}
	catalog, err := s.queSvc.CatalogByJobID(ctx, app.JobID)
	if err != nil {
		return 0, err
	}
	if verr := s.validator.Validate(catalog, answers); verr != nil {
		return 0, verr
	}
	app.Status = domain.StatusApplied
	id, err := s.repo.Create(ctx, app, s.evaluate(catalog, answers))
	if errors.Is(err, repository.ErrDuplicateApplication) {
		// 唯一索引说了算，并发双击也只会有一个赢家
		return 0, ErrDuplicateApplication
	}
	if err != nil {
		return 0, err
	}

	// advisory 的投递计数，发失败不影响投递结果
	evt := event.ApplicantEvent{Uid: app.Uid, JobID: app.JobID, ApplicationID: id}
	if perr := s.producer.Produce(ctx, evt); perr != nil {
		s.logger.Error("发送投递事件失败",
			elog.FieldErr(perr),
			elog.Any("event", evt),
		)
	}
	return id, nil
}

func (s *service) Update(ctx context.Context, app domain.Application, answers []domain.Answer) error {
	existing, err := s.repo.FindByJobAndUid(ctx, app.JobID, app.Uid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrApplicationNotFound
	}
	if err != nil {
		return err
	}
	catalog, err := s.queSvc.CatalogByJobID(ctx, app.JobID)
	if err != nil {
		return err
	}
	// 修改流程不重查必答完整性（首次提交已经查过，允许只改部分内容），
	// 但引用的问题仍然必须属于该职位
	if verr := s.validator.ValidateRefs(catalog, answers); verr != nil {
		return verr
	}
	app.ID = existing.ID
	return s.repo.Update(ctx, app, s.evaluate(catalog, answers))
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Application, int64, error) {
	var (
		apps  []domain.Application
		total int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		apps, err = s.repo.FindByUid(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUid(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	apps, err := s.fillJobCards(ctx, apps)
	return apps, total, err
}

func (s *service) Detail(ctx context.Context, jobID, uid int64) (domain.Application, error) {
	app, err := s.repo.FindByJobAndUid(ctx, jobID, uid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Application{}, ErrApplicationNotFound
	}
	if err != nil {
		return domain.Application{}, err
	}
	return s.fillDetail(ctx, app)
}

func (s *service) DetailByID(ctx context.Context, id int64) (domain.Application, error) {
	app, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Application{}, ErrApplicationNotFound
	}
	if err != nil {
		return domain.Application{}, err
	}
	return s.fillDetail(ctx, app)
}

// evaluate 提交时算一次自动筛选结果，之后不再重算
func (s *service) evaluate(catalog []question.Question, answers []domain.Answer) []domain.Answer {
	byID := make(map[int64]question.Question, len(catalog))
	for _, q := range catalog {
		byID[q.ID] = q
	}
	res := make([]domain.Answer, 0, len(answers))
	for _, ans := range answers {
		q := byID[ans.QuestionID]
		ans.Passed = s.evaluator.Evaluate(q, ans)
		res = append(res, ans)
	}
	return res
}

func (s *service) fillDetail(ctx context.Context, app domain.Application) (domain.Application, error) {
	var eg errgroup.Group
	eg.Go(func() error {
		answers, err := s.repo.FindAnswers(ctx, app.ID)
		app.Answers = answers
		return err
	})
	eg.Go(func() error {
		j, err := s.jobSvc.FindByID(ctx, app.JobID)
		if err != nil {
			return err
		}
		app.Job = domain.JobCard{
			Title:       j.Title,
			CompanyName: j.CompanyName,
			Location:    j.Location,
		}
		return nil
	})
	return app, eg.Wait()
}

func (s *service) fillJobCards(ctx context.Context, apps []domain.Application) ([]domain.Application, error) {
	if len(apps) == 0 {
		return apps, nil
	}
	ids := make([]int64, 0, len(apps))
	for _, app := range apps {
		ids = append(ids, app.JobID)
	}
	jobs, err := s.jobSvc.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]job.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}
	for i := range apps {
		if j, ok := byID[apps[i].JobID]; ok {
			apps[i].Job = domain.JobCard{
				Title:       j.Title,
				CompanyName: j.CompanyName,
				Location:    j.Location,
			}
		}
	}
	return apps, nil
}

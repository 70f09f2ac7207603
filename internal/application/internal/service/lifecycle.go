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
	"github.com/ecodeclub/jobhub/internal/application/internal/repository"
)

// ErrApplicationFinalized 已到终态，拒绝任何后续流转
var ErrApplicationFinalized = errors.New("该投递已有最终结果")

// nonTerminal 允许作为流转起点的状态
var nonTerminal = []domain.ApplicationStatus{
	domain.StatusApplied,
	domain.StatusViewed,
	domain.StatusInterviewScheduled,
}

//go:generate mockgen -source=./lifecycle.go -destination=../../mocks/lifecycle.mock.go -package=appmocks -typed=true LifecycleService

// LifecycleService 审阅侧的状态机
// applied -> viewed -> interview_scheduled -> accepted | rejected
// 每次流转恰好追加一条时间线，状态和时间线在一个事务里写
type LifecycleService interface {
	// MarkViewed 审阅人首次打开时由系统触发，幂等：
	// 只有 applied 状态会真的流转，之后的打开什么都不写
	MarkViewed(ctx context.Context, id int64) error
	// ScheduleInterview 安排面试，可以重新安排
	ScheduleInterview(ctx context.Context, id, reviewer int64, detail domain.InterviewDetail) error
	// Accept 终态，附带给候选人的消息
	Accept(ctx context.Context, id, reviewer int64, message string) error
	// Reject 终态，附带给候选人的消息
	Reject(ctx context.Context, id, reviewer int64, message string) error
	Timeline(ctx context.Context, id int64) ([]domain.TimelineEntry, error)
}

type lifecycleService struct {
	repo repository.ApplicationRepository
}

func NewLifecycleService(repo repository.ApplicationRepository) LifecycleService {
	return &lifecycleService{repo: repo}
}

func (s *lifecycleService) MarkViewed(ctx context.Context, id int64) error {
	app, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrApplicationNotFound
	}
	if err != nil {
		return err
	}
	if app.Status != domain.StatusApplied {
		return nil
	}
	err = s.repo.Transition(ctx, id,
		[]domain.ApplicationStatus{domain.StatusApplied},
		domain.StatusViewed,
		domain.TimelineEntry{
			Type:  domain.TimelineViewed,
			Actor: domain.SystemActor,
		})
	if errors.Is(err, repository.ErrInvalidTransition) {
		// 并发打开，别人已经标过了
		return nil
	}
	return err
}

func (s *lifecycleService) ScheduleInterview(ctx context.Context, id, reviewer int64, detail domain.InterviewDetail) error {
	return s.transition(ctx, id, domain.StatusInterviewScheduled, domain.TimelineEntry{
		Type:      domain.TimelineInterviewScheduled,
		Actor:     reviewer,
		Interview: &detail,
	})
}

func (s *lifecycleService) Accept(ctx context.Context, id, reviewer int64, message string) error {
	return s.transition(ctx, id, domain.StatusAccepted, domain.TimelineEntry{
		Type:    domain.TimelineAccepted,
		Actor:   reviewer,
		Message: message,
	})
}

func (s *lifecycleService) Reject(ctx context.Context, id, reviewer int64, message string) error {
	return s.transition(ctx, id, domain.StatusRejected, domain.TimelineEntry{
		Type:    domain.TimelineRejected,
		Actor:   reviewer,
		Message: message,
	})
}

func (s *lifecycleService) Timeline(ctx context.Context, id int64) ([]domain.TimelineEntry, error) {
	return s.repo.Timeline(ctx, id)
}

func (s *lifecycleService) transition(ctx context.Context, id int64, to domain.ApplicationStatus, entry domain.TimelineEntry) error {
	app, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrApplicationNotFound
	}
	if err != nil {
		return err
	}
	if app.Status.IsTerminal() {
		return ErrApplicationFinalized
	}
	err = s.repo.Transition(ctx, id, nonTerminal, to, entry)
	if errors.Is(err, repository.ErrInvalidTransition) {
		// 查的时候还没到终态，写的时候到了，以写为准
		return ErrApplicationFinalized
	}
	return err
}

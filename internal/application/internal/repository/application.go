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
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/jobhub/internal/application/internal/domain"
	"github.com/ecodeclub/jobhub/internal/application/internal/repository/dao"
)

var (
	ErrRecordNotFound       = dao.ErrRecordNotFound
	ErrDuplicateApplication = dao.ErrDuplicateApplication
	ErrInvalidTransition    = dao.ErrInvalidTransition
)

type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application, answers []domain.Answer) (int64, error)
	Update(ctx context.Context, app domain.Application, answers []domain.Answer) error
	FindByID(ctx context.Context, id int64) (domain.Application, error)
	FindByJobAndUid(ctx context.Context, jobID, uid int64) (domain.Application, error)
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Application, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	FindAnswers(ctx context.Context, applicationID int64) ([]domain.Answer, error)
	Transition(ctx context.Context, id int64,
		from []domain.ApplicationStatus, to domain.ApplicationStatus,
		entry domain.TimelineEntry) error
	Timeline(ctx context.Context, applicationID int64) ([]domain.TimelineEntry, error)
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{dao: d}
}

func (r *applicationRepository) Create(ctx context.Context, app domain.Application, answers []domain.Answer) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(app), slice.Map(answers, func(_ int, src domain.Answer) dao.ScreeningAnswer {
		return r.answerToEntity(src)
	}))
}

func (r *applicationRepository) Update(ctx context.Context, app domain.Application, answers []domain.Answer) error {
	return r.dao.Update(ctx, r.toEntity(app), slice.Map(answers, func(_ int, src domain.Answer) dao.ScreeningAnswer {
		return r.answerToEntity(src)
	}))
}

func (r *applicationRepository) FindByID(ctx context.Context, id int64) (domain.Application, error) {
	app, err := r.dao.FindByID(ctx, id)
	return r.toDomain(app), err
}

func (r *applicationRepository) FindByJobAndUid(ctx context.Context, jobID, uid int64) (domain.Application, error) {
	app, err := r.dao.FindByJobAndUid(ctx, jobID, uid)
	return r.toDomain(app), err
}

func (r *applicationRepository) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Application, error) {
	apps, err := r.dao.FindByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(apps, func(_ int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), nil
}

func (r *applicationRepository) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUid(ctx, uid)
}

func (r *applicationRepository) FindAnswers(ctx context.Context, applicationID int64) ([]domain.Answer, error) {
	ans, err := r.dao.FindAnswers(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return slice.Map(ans, func(_ int, src dao.ScreeningAnswer) domain.Answer {
		return r.answerToDomain(src)
	}), nil
}

func (r *applicationRepository) Transition(ctx context.Context, id int64,
	from []domain.ApplicationStatus, to domain.ApplicationStatus,
	entry domain.TimelineEntry) error {
	return r.dao.Transition(ctx, id,
		slice.Map(from, func(_ int, src domain.ApplicationStatus) string {
			return src.String()
		}),
		to.String(),
		r.entryToEntity(entry))
}

func (r *applicationRepository) Timeline(ctx context.Context, applicationID int64) ([]domain.TimelineEntry, error) {
	entries, err := r.dao.Timeline(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return slice.Map(entries, func(_ int, src dao.ApplicationTimeline) domain.TimelineEntry {
		return r.entryToDomain(src)
	}), nil
}

func (r *applicationRepository) toDomain(app dao.Application) domain.Application {
	return domain.Application{
		ID:           app.ID,
		JobID:        app.JobID,
		Uid:          app.Uid,
		Status:       domain.ApplicationStatus(app.Status),
		CoverLetter:  app.CoverLetter,
		ResumeURL:    app.ResumeURL,
		PortfolioURL: app.PortfolioURL,
		Ctime:        app.Ctime,
		Utime:        app.Utime,
	}
}

func (r *applicationRepository) toEntity(app domain.Application) dao.Application {
	return dao.Application{
		ID:           app.ID,
		JobID:        app.JobID,
		Uid:          app.Uid,
		Status:       app.Status.String(),
		CoverLetter:  app.CoverLetter,
		ResumeURL:    app.ResumeURL,
		PortfolioURL: app.PortfolioURL,
	}
}

func (r *applicationRepository) answerToDomain(ans dao.ScreeningAnswer) domain.Answer {
	res := domain.Answer{
		QuestionID:      ans.QuestionID,
		Text:            ans.AnswerText,
		SelectedOptions: ans.SelectedOptions.Val,
	}
	if ans.PassedAutoFilter.Valid {
		passed := ans.PassedAutoFilter.V
		res.Passed = &passed
	}
	return res
}

func (r *applicationRepository) answerToEntity(ans domain.Answer) dao.ScreeningAnswer {
	res := dao.ScreeningAnswer{
		QuestionID: ans.QuestionID,
		AnswerText: ans.Text,
		SelectedOptions: sqlx.JsonColumn[[]string]{
			Val:   ans.SelectedOptions,
			Valid: len(ans.SelectedOptions) > 0,
		},
	}
	if ans.Passed != nil {
		res.PassedAutoFilter = sql.Null[bool]{V: *ans.Passed, Valid: true}
	}
	return res
}

func (r *applicationRepository) entryToDomain(entry dao.ApplicationTimeline) domain.TimelineEntry {
	res := domain.TimelineEntry{
		ID:            entry.ID,
		ApplicationID: entry.ApplicationID,
		Type:          domain.TimelineType(entry.Type),
		Actor:         entry.Actor,
		Message:       entry.Message,
		Ctime:         entry.Ctime,
	}
	if entry.Interview.Valid {
		res.Interview = &domain.InterviewDetail{
			Date: entry.Interview.Val.Date,
			Type: entry.Interview.Val.Type,
			Link: entry.Interview.Val.Link,
		}
	}
	return res
}

func (r *applicationRepository) entryToEntity(entry domain.TimelineEntry) dao.ApplicationTimeline {
	res := dao.ApplicationTimeline{
		ApplicationID: entry.ApplicationID,
		Type:          entry.Type.String(),
		Actor:         entry.Actor,
		Message:       entry.Message,
	}
	if entry.Interview != nil {
		res.Interview = sqlx.JsonColumn[dao.Interview]{
			Val: dao.Interview{
				Date: entry.Interview.Date,
				Type: entry.Interview.Type,
				Link: entry.Interview.Link,
			},
			Valid: true,
		}
	}
	return res
}

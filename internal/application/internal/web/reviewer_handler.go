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

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobhub/internal/application/internal/domain"
	"github.com/ecodeclub/jobhub/internal/application/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// ReviewerHandler 审阅端：查看投递、安排面试、给出结论
type ReviewerHandler struct {
	svc       service.Service
	lifecycle service.LifecycleService
	logger    *elog.Component
}

func NewReviewerHandler(svc service.Service, lifecycle service.LifecycleService) *ReviewerHandler {
	return &ReviewerHandler{
		svc:       svc,
		lifecycle: lifecycle,
		logger:    elog.DefaultLogger,
	}
}

func (h *ReviewerHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications/review")
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
	g.POST("/schedule-interview", ginx.BS[ScheduleInterviewReq](h.ScheduleInterview))
	g.POST("/accept", ginx.BS[DecisionReq](h.Accept))
	g.POST("/reject", ginx.BS[DecisionReq](h.Reject))
	g.POST("/timeline", ginx.BS[IDReq](h.Timeline))
}

func (h *ReviewerHandler) PublicRoutes(_ *gin.Engine) {}

// Detail 审阅人打开投递详情，首次打开会把状态标成 viewed。
// 标记失败不影响详情展示
func (h *ReviewerHandler) Detail(ctx *ginx.Context, req IDReq, _ session.Session) (ginx.Result, error) {
	app, err := h.svc.DetailByID(ctx, req.ID)
	if errors.Is(err, service.ErrApplicationNotFound) {
		return applicationNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	if merr := h.lifecycle.MarkViewed(ctx, req.ID); merr != nil {
		h.logger.Error("标记已查看失败",
			elog.FieldErr(merr),
			elog.Int64("aid", req.ID),
		)
	}
	return ginx.Result{
		Data: h.toVO(app),
	}, nil
}

func (h *ReviewerHandler) ScheduleInterview(ctx *ginx.Context, req ScheduleInterviewReq, sess session.Session) (ginx.Result, error) {
	err := h.lifecycle.ScheduleInterview(ctx, req.ID, sess.Claims().Uid, domain.InterviewDetail{
		Date: req.Date,
		Type: req.Type,
		Link: req.Link,
	})
	return h.transitionResult(err)
}

func (h *ReviewerHandler) Accept(ctx *ginx.Context, req DecisionReq, sess session.Session) (ginx.Result, error) {
	return h.transitionResult(h.lifecycle.Accept(ctx, req.ID, sess.Claims().Uid, req.Message))
}

func (h *ReviewerHandler) Reject(ctx *ginx.Context, req DecisionReq, sess session.Session) (ginx.Result, error) {
	return h.transitionResult(h.lifecycle.Reject(ctx, req.ID, sess.Claims().Uid, req.Message))
}

func (h *ReviewerHandler) Timeline(ctx *ginx.Context, req IDReq, _ session.Session) (ginx.Result, error) {
	entries, err := h.lifecycle.Timeline(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: TimelineResp{
			Entries: slice.Map(entries, func(_ int, src domain.TimelineEntry) TimelineEntry {
				return h.toTimelineVO(src)
			}),
		},
	}, nil
}

func (h *ReviewerHandler) transitionResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrApplicationNotFound):
		return applicationNotFoundResult, err
	case errors.Is(err, service.ErrApplicationFinalized):
		return applicationFinalizedResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *ReviewerHandler) toVO(app domain.Application) Application {
	return Application{
		ID:           app.ID,
		JobID:        app.JobID,
		JobTitle:     app.Job.Title,
		CompanyName:  app.Job.CompanyName,
		Location:     app.Job.Location,
		Status:       app.Status.String(),
		CoverLetter:  app.CoverLetter,
		ResumeURL:    app.ResumeURL,
		PortfolioURL: app.PortfolioURL,
		Answers: slice.Map(app.Answers, func(_ int, src domain.Answer) Answer {
			return Answer{
				QuestionID:      src.QuestionID,
				AnswerText:      src.Text,
				SelectedOptions: src.SelectedOptions,
				Passed:          src.Passed,
			}
		}),
		Ctime: app.Ctime,
	}
}

func (h *ReviewerHandler) toTimelineVO(entry domain.TimelineEntry) TimelineEntry {
	res := TimelineEntry{
		Type:    entry.Type.String(),
		Actor:   entry.Actor,
		Message: entry.Message,
		Ctime:   entry.Ctime,
	}
	if entry.Interview != nil {
		res.Interview = &Interview{
			Date: entry.Interview.Date,
			Type: entry.Interview.Type,
			Link: entry.Interview.Link,
		}
	}
	return res
}

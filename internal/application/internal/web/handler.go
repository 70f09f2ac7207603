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
	"github.com/ecodeclub/jobhub/internal/application/internal/errs"
	"github.com/ecodeclub/jobhub/internal/application/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler 候选人端。uid 一律从 session 里取，不信任请求体
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications")
	g.POST("/submit", ginx.BS[SubmitReq](h.Submit))
	g.POST("/update", ginx.BS[SubmitReq](h.Update))
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/detail", ginx.BS[DetailReq](h.Detail))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	id, err := h.svc.Submit(ctx, h.toDomain(req, uid), h.toAnswers(req.Answers))
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return jobNotOpenResult, err
	case errors.Is(err, service.ErrJobNotOpen):
		return jobNotOpenResult, err
	case errors.Is(err, service.ErrDuplicateApplication):
		return duplicateApplicationResult, err
	case errors.Is(err, service.ErrInvalidQuestionReference):
		return validationErrorResult(errs.InvalidQuestionReference, err), err
	case errors.Is(err, service.ErrMissingRequiredAnswer):
		return validationErrorResult(errs.MissingRequiredAnswer, err), err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SubmitResp{ApplicationID: id},
	}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.svc.Update(ctx, h.toDomain(req, uid), h.toAnswers(req.Answers))
	switch {
	case errors.Is(err, service.ErrApplicationNotFound):
		return applicationNotFoundResult, err
	case errors.Is(err, service.ErrInvalidQuestionReference):
		return validationErrorResult(errs.InvalidQuestionReference, err), err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	apps, total, err := h.svc.List(ctx, uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Total: total,
			Applications: slice.Map(apps, func(_ int, src domain.Application) Application {
				return h.toVO(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	app, err := h.svc.Detail(ctx, req.JobID, uid)
	if errors.Is(err, service.ErrApplicationNotFound) {
		return applicationNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toVO(app),
	}, nil
}

func (h *Handler) toDomain(req SubmitReq, uid int64) domain.Application {
	return domain.Application{
		JobID:        req.JobID,
		Uid:          uid,
		CoverLetter:  req.CoverLetter,
		ResumeURL:    req.ResumeURL,
		PortfolioURL: req.PortfolioURL,
	}
}

func (h *Handler) toAnswers(answers []Answer) []domain.Answer {
	return slice.Map(answers, func(_ int, src Answer) domain.Answer {
		return domain.Answer{
			QuestionID:      src.QuestionID,
			Text:            src.AnswerText,
			SelectedOptions: src.SelectedOptions,
		}
	})
}

func (h *Handler) toVO(app domain.Application) Application {
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

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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobhub/internal/question/internal/domain"
	"github.com/ecodeclub/jobhub/internal/question/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 创作端：雇主维护职位问卷
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/screening-questions")
	g.POST("/save", ginx.BS[SaveQuestionReq](h.Save))
	g.POST("/catalog", ginx.B[CatalogReq](h.Catalog))
	g.POST("/delete", ginx.BS[DeleteQuestionReq](h.Delete))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveQuestionReq, _ session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, h.toDomain(req.Question))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) Catalog(ctx *ginx.Context, req CatalogReq) (ginx.Result, error) {
	qs, err := h.svc.CatalogByJobID(ctx, req.JobID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CatalogResp{
			Questions: slice.Map(qs, func(_ int, src domain.Question) Question {
				return h.toVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req DeleteQuestionReq, _ session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.JobID, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) toDomain(q Question) domain.Question {
	return domain.Question{
		ID:             q.ID,
		JobID:          q.JobID,
		Prompt:         q.Prompt,
		Type:           domain.QuestionType(q.Type),
		Options:        q.Options,
		Required:       q.Required,
		AutoFilter:     q.AutoFilter,
		ExpectedAnswer: q.ExpectedAnswer,
		DisplayOrder:   q.DisplayOrder,
	}
}

func (h *AdminHandler) toVO(q domain.Question) Question {
	return Question{
		ID:             q.ID,
		JobID:          q.JobID,
		Prompt:         q.Prompt,
		Type:           q.Type.String(),
		Options:        q.Options,
		Required:       q.Required,
		AutoFilter:     q.AutoFilter,
		ExpectedAnswer: q.ExpectedAnswer,
		DisplayOrder:   q.DisplayOrder,
	}
}

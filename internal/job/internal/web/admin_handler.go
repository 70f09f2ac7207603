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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobhub/internal/job/internal/domain"
	"github.com/ecodeclub/jobhub/internal/job/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 创作端：雇主发布、修改职位
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/jobs")
	g.POST("/save", ginx.BS[SaveJobReq](h.Save))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveJobReq, _ session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, domain.Job{
		ID:          req.Job.ID,
		CompanyID:   req.Job.CompanyID,
		CompanyName: req.Job.CompanyName,
		Title:       req.Job.Title,
		Location:    req.Job.Location,
		Status:      domain.JobStatus(req.Job.Status),
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	j, err := h.svc.FindByID(ctx, req.ID)
	if errors.Is(err, service.ErrJobNotFound) {
		return jobNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Job{
			ID:           j.ID,
			CompanyID:    j.CompanyID,
			CompanyName:  j.CompanyName,
			Title:        j.Title,
			Location:     j.Location,
			Status:       j.Status.String(),
			ApplicantCnt: j.ApplicantCnt,
			Utime:        j.Utime,
		},
	}, nil
}

package application

import (
	"github.com/ecodeclub/jobhub/internal/application/internal/domain"
	"github.com/ecodeclub/jobhub/internal/application/internal/service"
	"github.com/ecodeclub/jobhub/internal/application/internal/web"
)

type (
	Handler         = web.Handler
	ReviewerHandler = web.ReviewerHandler

	Service          = service.Service
	LifecycleService = service.LifecycleService

	Application       = domain.Application
	ApplicationStatus = domain.ApplicationStatus
	Answer            = domain.Answer
	TimelineEntry     = domain.TimelineEntry
	InterviewDetail   = domain.InterviewDetail
)

const (
	StatusApplied            = domain.StatusApplied
	StatusViewed             = domain.StatusViewed
	StatusInterviewScheduled = domain.StatusInterviewScheduled
	StatusAccepted           = domain.StatusAccepted
	StatusRejected           = domain.StatusRejected
)

var (
	ErrDuplicateApplication = service.ErrDuplicateApplication
	ErrApplicationNotFound  = service.ErrApplicationNotFound
	ErrApplicationFinalized = service.ErrApplicationFinalized
)

type Module struct {
	Hdl         *Handler
	ReviewerHdl *ReviewerHandler
	Svc         Service
	Lifecycle   LifecycleService
}

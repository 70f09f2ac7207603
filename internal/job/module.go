package job

import (
	"github.com/ecodeclub/jobhub/internal/job/internal/domain"
	"github.com/ecodeclub/jobhub/internal/job/internal/event"
	"github.com/ecodeclub/jobhub/internal/job/internal/service"
	"github.com/ecodeclub/jobhub/internal/job/internal/web"
)

type (
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Job          = domain.Job
	JobStatus    = domain.JobStatus
	Consumer     = event.ApplicantEventConsumer
)

const (
	StatusActive = domain.StatusActive
	StatusPaused = domain.StatusPaused
	StatusClosed = domain.StatusClosed
	StatusDraft  = domain.StatusDraft
)

var ErrJobNotFound = service.ErrJobNotFound

type Module struct {
	AdminHdl *AdminHandler
	Svc      Service
	Consumer *Consumer
}

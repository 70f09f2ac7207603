package event

import (
	"context"

	"github.com/ecodeclub/jobhub/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

type ApplicantEventProducer interface {
	Produce(ctx context.Context, evt ApplicantEvent) error
}

func NewApplicantEventProducer(q mq.MQ) (ApplicantEventProducer, error) {
	return mqx.NewGeneralProducer[ApplicantEvent](q, applicantEvents)
}

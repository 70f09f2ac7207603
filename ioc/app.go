package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
)

type App struct {
	Web       *egin.Component
	Admin     AdminServer
	Consumers []Consumer
}

type Consumer interface {
	Start(ctx context.Context)
}

//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/jobhub/internal/application"
	"github.com/ecodeclub/jobhub/internal/job"
	"github.com/ecodeclub/jobhub/internal/question"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		job.InitModule,
		question.InitModule,
		application.InitModule,
		wire.FieldsOf(new(*application.Module), "Hdl", "ReviewerHdl"),
		wire.FieldsOf(new(*job.Module), "AdminHdl"),
		wire.FieldsOf(new(*question.Module), "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initMQConsumers,
	)
	return new(App), nil
}

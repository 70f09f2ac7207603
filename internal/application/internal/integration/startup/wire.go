//go:build wireinject

package startup

import (
	"github.com/ecodeclub/jobhub/internal/application"
	"github.com/ecodeclub/jobhub/internal/job"
	"github.com/ecodeclub/jobhub/internal/question"
	testioc "github.com/ecodeclub/jobhub/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule(jobModule *job.Module, queModule *question.Module) (*application.Module, error) {
	wire.Build(testioc.BaseSet, application.InitModule)
	return new(application.Module), nil
}

func InitJobModule() (*job.Module, error) {
	wire.Build(testioc.BaseSet, job.InitModule)
	return new(job.Module), nil
}

func InitQuestionModule() (*question.Module, error) {
	wire.Build(testioc.BaseSet, question.InitModule)
	return new(question.Module), nil
}

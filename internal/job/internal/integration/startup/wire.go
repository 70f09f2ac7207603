//go:build wireinject

package startup

import (
	"github.com/ecodeclub/jobhub/internal/job"
	testioc "github.com/ecodeclub/jobhub/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule() (*job.Module, error) {
	wire.Build(testioc.BaseSet, job.InitModule)
	return new(job.Module), nil
}

//go:build wireinject

package startup

import (
	"github.com/ecodeclub/jobhub/internal/question"
	testioc "github.com/ecodeclub/jobhub/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule() (*question.Module, error) {
	wire.Build(testioc.BaseSet, question.InitModule)
	return new(question.Module), nil
}

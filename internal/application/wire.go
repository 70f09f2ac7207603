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

//go:build wireinject

package application

import (
	"sync"

	"github.com/ecodeclub/jobhub/internal/application/internal/event"
	"github.com/ecodeclub/jobhub/internal/application/internal/repository"
	"github.com/ecodeclub/jobhub/internal/application/internal/repository/dao"
	"github.com/ecodeclub/jobhub/internal/application/internal/service"
	"github.com/ecodeclub/jobhub/internal/application/internal/web"
	"github.com/ecodeclub/jobhub/internal/job"
	"github.com/ecodeclub/jobhub/internal/question"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	jobModule *job.Module,
	queModule *question.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewApplicationRepository,
		event.NewApplicantEventProducer,
		service.NewService,
		service.NewLifecycleService,
		web.NewHandler,
		web.NewReviewerHandler,
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.FieldsOf(new(*question.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ApplicationDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMApplicationDAO(db)
}

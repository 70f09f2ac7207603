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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobhub/internal/job"
	"github.com/ecodeclub/jobhub/internal/job/internal/integration/startup"
	"github.com/ecodeclub/jobhub/internal/job/internal/web"
	"github.com/ecodeclub/jobhub/internal/test"
	testioc "github.com/ecodeclub/jobhub/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(1024)

type ModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	module *job.Module
}

func (s *ModuleTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.module = m

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	m.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
}

func (s *ModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `jobs`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `jobs`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TestSaveAndDetail() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/jobs/save", iox.NewJSONReader(web.SaveJobReq{
			Job: web.Job{
				CompanyID:   2,
				CompanyName: "趵突泉数据",
				Title:       "后端工程师",
				Location:    "济南",
				Status:      "active",
			},
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	id := recorder.MustScan().Data
	assert.True(t, id > 0)

	req, err = http.NewRequest(http.MethodPost,
		"/jobs/detail", iox.NewJSONReader(web.IDReq{ID: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	detailRecorder := test.NewJSONResponseRecorder[web.Job]()
	s.server.ServeHTTP(detailRecorder, req)
	require.Equal(t, 200, detailRecorder.Code)
	got := detailRecorder.MustScan().Data
	assert.Equal(t, "后端工程师", got.Title)
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, int64(0), got.ApplicantCnt)
}

func (s *ModuleTestSuite) TestDetail_NotFound() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/jobs/detail", iox.NewJSONReader(web.IDReq{ID: 999}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Job]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 511002, recorder.MustScan().Code)
}

func (s *ModuleTestSuite) TestApplicantEventConsumer() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	jobID, err := s.module.Svc.Save(ctx, job.Job{
		CompanyID:   2,
		CompanyName: "趵突泉数据",
		Title:       "后端工程师",
		Location:    "济南",
		Status:      job.StatusActive,
	})
	require.NoError(t, err)

	q := testioc.InitMQ()
	producer, err := q.Producer("applicant_events")
	require.NoError(t, err)
	data, err := json.Marshal(map[string]any{
		"uid":           uid,
		"jobId":         jobID,
		"applicationId": int64(1),
	})
	require.NoError(t, err)
	_, err = producer.Produce(ctx, &mq.Message{Value: data})
	require.NoError(t, err)

	err = s.module.Consumer.Consume(ctx)
	require.NoError(t, err)

	j, err := s.module.Svc.FindByID(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), j.ApplicantCnt)
}

func TestJobModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

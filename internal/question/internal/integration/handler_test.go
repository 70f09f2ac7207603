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
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobhub/internal/question/internal/integration/startup"
	"github.com/ecodeclub/jobhub/internal/question/internal/web"
	"github.com/ecodeclub/jobhub/internal/test"
	testioc "github.com/ecodeclub/jobhub/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(3001)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)

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

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `screening_questions`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `screening_questions`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) save(t *testing.T, q web.Question) int64 {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost,
		"/screening-questions/save", iox.NewJSONReader(web.SaveQuestionReq{Question: q}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan().Data
}

func (s *HandlerTestSuite) catalog(t *testing.T, jobID int64) []web.Question {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost,
		"/screening-questions/catalog", iox.NewJSONReader(web.CatalogReq{JobID: jobID}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CatalogResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan().Data.Questions
}

func (s *HandlerTestSuite) TestSaveAndCatalog() {
	t := s.T()
	const jobID = int64(10)
	// 乱序插入，目录按 displayOrder 返回
	s.save(t, web.Question{
		JobID:        jobID,
		Prompt:       "会哪些数据库？",
		Type:         "multiple_choice",
		Options:      []string{"mysql", "redis", "mongodb"},
		Required:     true,
		DisplayOrder: 2,
	})
	id1 := s.save(t, web.Question{
		JobID:          jobID,
		Prompt:         "是否接受周末加班？",
		Type:           "yes_no",
		Required:       true,
		AutoFilter:     true,
		ExpectedAnswer: "yes",
		DisplayOrder:   1,
	})

	qs := s.catalog(t, jobID)
	require.Len(t, qs, 2)
	assert.Equal(t, []string{"是否接受周末加班？", "会哪些数据库？"},
		slice.Map(qs, func(_ int, q web.Question) string {
			return q.Prompt
		}))
	assert.Equal(t, []string{"mysql", "redis", "mongodb"}, qs[1].Options)

	// 别的职位看不到
	assert.Empty(t, s.catalog(t, jobID+1))

	// 更新已有问题
	updated := qs[0]
	updated.ExpectedAnswer = "no"
	gotID := s.save(t, updated)
	assert.Equal(t, id1, gotID)
	qs = s.catalog(t, jobID)
	assert.Equal(t, "no", qs[0].ExpectedAnswer)
}

func (s *HandlerTestSuite) TestDelete() {
	t := s.T()
	const jobID = int64(11)
	id := s.save(t, web.Question{
		JobID:        jobID,
		Prompt:       "期望薪资？",
		Type:         "text",
		DisplayOrder: 1,
	})
	req, err := http.NewRequest(http.MethodPost,
		"/screening-questions/delete", iox.NewJSONReader(web.DeleteQuestionReq{
			JobID: jobID,
			ID:    id,
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Empty(t, s.catalog(t, jobID))
}

func TestQuestionHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

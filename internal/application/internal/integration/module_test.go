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
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobhub/internal/application"
	"github.com/ecodeclub/jobhub/internal/application/internal/integration/startup"
	"github.com/ecodeclub/jobhub/internal/application/internal/repository/dao"
	"github.com/ecodeclub/jobhub/internal/application/internal/web"
	"github.com/ecodeclub/jobhub/internal/job"
	"github.com/ecodeclub/jobhub/internal/question"
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

const uid = int64(2077)

type ModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.ApplicationDAO
	jobSvc job.Service
	queSvc question.Service
}

func (s *ModuleTestSuite) SetupSuite() {
	jobModule, err := startup.InitJobModule()
	require.NoError(s.T(), err)
	queModule, err := startup.InitQuestionModule()
	require.NoError(s.T(), err)
	m, err := startup.InitModule(jobModule, queModule)
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	m.ReviewerHdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.dao = dao.NewGORMApplicationDAO(s.db)
	s.jobSvc = jobModule.Svc
	s.queSvc = queModule.Svc
}

func (s *ModuleTestSuite) TearDownSuite() {
	for _, table := range []string{
		"applications", "screening_answers", "application_timelines",
		"jobs", "screening_questions",
	} {
		err := s.db.Exec("DROP TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *ModuleTestSuite) TearDownTest() {
	for _, table := range []string{
		"applications", "screening_answers", "application_timelines",
		"jobs", "screening_questions",
	} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

// createJob 建一个测试职位，默认带一道必答的自动筛选是非题和一道选答文本题
func (s *ModuleTestSuite) createJob(t *testing.T, status job.JobStatus) (jobID int64, questionIDs []int64) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	jobID, err := s.jobSvc.Save(ctx, job.Job{
		CompanyID:   1,
		CompanyName: "大明湖科技",
		Title:       "Go 研发工程师",
		Location:    "北京",
		Status:      status,
	})
	require.NoError(t, err)
	qid1, err := s.queSvc.Save(ctx, question.Question{
		JobID:          jobID,
		Prompt:         "是否接受出差？",
		Type:           question.TypeYesNo,
		Required:       true,
		AutoFilter:     true,
		ExpectedAnswer: "yes",
		DisplayOrder:   1,
	})
	require.NoError(t, err)
	qid2, err := s.queSvc.Save(ctx, question.Question{
		JobID:        jobID,
		Prompt:       "介绍一下你最满意的项目",
		Type:         question.TypeText,
		Required:     false,
		DisplayOrder: 2,
	})
	require.NoError(t, err)
	return jobID, []int64{qid1, qid2}
}

func (s *ModuleTestSuite) submit(t *testing.T, req web.SubmitReq) test.Result[web.SubmitResp] {
	t.Helper()
	httpReq, err := http.NewRequest(http.MethodPost,
		"/applications/submit", iox.NewJSONReader(req))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.SubmitResp]()
	s.server.ServeHTTP(recorder, httpReq)
	return recorder.MustScan()
}

func (s *ModuleTestSuite) TestSubmit() {
	testCases := []struct {
		name string
		// before 返回请求
		before   func(t *testing.T) web.SubmitReq
		after    func(t *testing.T)
		wantCode int
		// wantResCode Result.Code，0 表示成功
		wantResCode int
	}{
		{
			name: "提交成功_答案和时间线一起落库",
			before: func(t *testing.T) web.SubmitReq {
				jobID, qids := s.createJob(t, job.StatusActive)
				return web.SubmitReq{
					JobID:       jobID,
					CoverLetter: "很想加入贵司",
					ResumeURL:   "https://oss.example.com/resume/2077.pdf",
					Answers: []web.Answer{
						{QuestionID: qids[0], AnswerText: "Yes"},
						{QuestionID: qids[1], AnswerText: "做过一个内存缓存"},
					},
				}
			},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				app, err := s.dao.FindByJobAndUid(ctx, 1, uid)
				require.NoError(t, err)
				assert.Equal(t, "applied", app.Status)
				assert.Equal(t, "很想加入贵司", app.CoverLetter)

				answers, err := s.dao.FindAnswers(ctx, app.ID)
				require.NoError(t, err)
				require.Len(t, answers, 2)
				// 是非题大小写不敏感，通过
				assert.True(t, answers[0].PassedAutoFilter.Valid)
				assert.True(t, answers[0].PassedAutoFilter.V)
				// 非筛选题不评估
				assert.False(t, answers[1].PassedAutoFilter.Valid)

				entries, err := s.dao.Timeline(ctx, app.ID)
				require.NoError(t, err)
				require.Len(t, entries, 1)
				assert.Equal(t, "applied", entries[0].Type)
				assert.Equal(t, int64(0), entries[0].Actor)
			},
			wantCode: 200,
		},
		{
			name: "必答题没答",
			before: func(t *testing.T) web.SubmitReq {
				jobID, qids := s.createJob(t, job.StatusActive)
				return web.SubmitReq{
					JobID: jobID,
					Answers: []web.Answer{
						{QuestionID: qids[1], AnswerText: "只答选答题"},
					},
				}
			},
			after: func(t *testing.T) {
				// 校验失败不写任何东西
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				cnt, err := s.dao.CountByUid(ctx, uid)
				require.NoError(t, err)
				assert.Equal(t, int64(0), cnt)
			},
			wantCode:    500,
			wantResCode: 512003,
		},
		{
			name: "答案引用了别的职位的问题",
			before: func(t *testing.T) web.SubmitReq {
				jobID, qids := s.createJob(t, job.StatusActive)
				return web.SubmitReq{
					JobID: jobID,
					Answers: []web.Answer{
						{QuestionID: qids[0], AnswerText: "yes"},
						{QuestionID: 9999, AnswerText: "不属于该职位"},
					},
				}
			},
			after:       func(t *testing.T) {},
			wantCode:    500,
			wantResCode: 512002,
		},
		{
			name: "职位已关闭",
			before: func(t *testing.T) web.SubmitReq {
				jobID, qids := s.createJob(t, job.StatusClosed)
				return web.SubmitReq{
					JobID: jobID,
					Answers: []web.Answer{
						{QuestionID: qids[0], AnswerText: "yes"},
					},
				}
			},
			after:       func(t *testing.T) {},
			wantCode:    500,
			wantResCode: 512004,
		},
		{
			name: "职位不存在",
			before: func(t *testing.T) web.SubmitReq {
				return web.SubmitReq{JobID: 8888}
			},
			after:       func(t *testing.T) {},
			wantCode:    500,
			wantResCode: 512004,
		},
		{
			name: "重复投递",
			before: func(t *testing.T) web.SubmitReq {
				jobID, qids := s.createJob(t, job.StatusActive)
				req := web.SubmitReq{
					JobID: jobID,
					Answers: []web.Answer{
						{QuestionID: qids[0], AnswerText: "yes"},
					},
				}
				res := s.submit(t, req)
				require.Equal(t, 0, res.Code)
				return req
			},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				cnt, err := s.dao.CountByUid(ctx, uid)
				require.NoError(t, err)
				assert.Equal(t, int64(1), cnt)
			},
			wantCode:    500,
			wantResCode: 512006,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req := tc.before(t)
			httpReq, err := http.NewRequest(http.MethodPost,
				"/applications/submit", iox.NewJSONReader(req))
			require.NoError(t, err)
			httpReq.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.SubmitResp]()
			s.server.ServeHTTP(recorder, httpReq)
			require.Equal(t, tc.wantCode, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantResCode, res.Code)
			if tc.wantResCode == 0 {
				assert.True(t, res.Data.ApplicationID > 0)
			}
			tc.after(t)
			s.TearDownTest()
		})
	}
}

func (s *ModuleTestSuite) TestUpdate() {
	t := s.T()
	jobID, qids := s.createJob(t, job.StatusActive)
	res := s.submit(t, web.SubmitReq{
		JobID:       jobID,
		CoverLetter: "第一版求职信",
		Answers: []web.Answer{
			{QuestionID: qids[0], AnswerText: "yes"},
		},
	})
	require.Equal(t, 0, res.Code)
	aid := res.Data.ApplicationID

	// 修改求职信，改掉第一题的答案
	httpReq, err := http.NewRequest(http.MethodPost,
		"/applications/update", iox.NewJSONReader(web.SubmitReq{
			JobID:       jobID,
			CoverLetter: "第二版求职信",
			Answers: []web.Answer{
				{QuestionID: qids[0], AnswerText: "no"},
			},
		}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 200, recorder.Code)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	app, err := s.dao.FindByID(ctx, aid)
	require.NoError(t, err)
	assert.Equal(t, "第二版求职信", app.CoverLetter)
	// 同一道题只保留最新答案，筛选结果重算
	answers, err := s.dao.FindAnswers(ctx, aid)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, "no", answers[0].AnswerText)
	assert.True(t, answers[0].PassedAutoFilter.Valid)
	assert.False(t, answers[0].PassedAutoFilter.V)
}

func (s *ModuleTestSuite) TestUpdate_NotFound() {
	t := s.T()
	jobID, qids := s.createJob(t, job.StatusActive)
	httpReq, err := http.NewRequest(http.MethodPost,
		"/applications/update", iox.NewJSONReader(web.SubmitReq{
			JobID: jobID,
			Answers: []web.Answer{
				{QuestionID: qids[0], AnswerText: "yes"},
			},
		}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 512005, recorder.MustScan().Code)
}

func (s *ModuleTestSuite) TestListAndDetail() {
	t := s.T()
	jobID, qids := s.createJob(t, job.StatusActive)
	res := s.submit(t, web.SubmitReq{
		JobID: jobID,
		Answers: []web.Answer{
			{QuestionID: qids[0], AnswerText: "yes"},
		},
	})
	require.Equal(t, 0, res.Code)

	httpReq, err := http.NewRequest(http.MethodPost,
		"/applications/list", iox.NewJSONReader(web.ListReq{Offset: 0, Limit: 10}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	listRecorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.server.ServeHTTP(listRecorder, httpReq)
	require.Equal(t, 200, listRecorder.Code)
	listRes := listRecorder.MustScan()
	assert.Equal(t, int64(1), listRes.Data.Total)
	require.Len(t, listRes.Data.Applications, 1)
	got := listRes.Data.Applications[0]
	assert.Equal(t, "applied", got.Status)
	// 列表带职位摘要
	assert.Equal(t, "Go 研发工程师", got.JobTitle)
	assert.Equal(t, "大明湖科技", got.CompanyName)
	assert.Equal(t, "北京", got.Location)
	// 列表不带答案
	assert.Empty(t, got.Answers)

	httpReq, err = http.NewRequest(http.MethodPost,
		"/applications/detail", iox.NewJSONReader(web.DetailReq{JobID: jobID}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	detailRecorder := test.NewJSONResponseRecorder[web.Application]()
	s.server.ServeHTTP(detailRecorder, httpReq)
	require.Equal(t, 200, detailRecorder.Code)
	detail := detailRecorder.MustScan().Data
	require.Len(t, detail.Answers, 1)
	assert.Equal(t, "yes", detail.Answers[0].AnswerText)
	require.NotNil(t, detail.Answers[0].Passed)
	assert.True(t, *detail.Answers[0].Passed)
}

func (s *ModuleTestSuite) TestReviewerFlow() {
	t := s.T()
	jobID, qids := s.createJob(t, job.StatusActive)
	res := s.submit(t, web.SubmitReq{
		JobID: jobID,
		Answers: []web.Answer{
			{QuestionID: qids[0], AnswerText: "yes"},
		},
	})
	require.Equal(t, 0, res.Code)
	aid := res.Data.ApplicationID

	// 打开详情把 applied 标成 viewed，再开不重复标
	for i := 0; i < 2; i++ {
		recorder := test.NewJSONResponseRecorder[web.Application]()
		s.server.ServeHTTP(recorder, s.newReq(t, "/applications/review/detail", web.IDReq{ID: aid}))
		require.Equal(t, 200, recorder.Code)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	app, err := s.dao.FindByID(ctx, aid)
	require.NoError(t, err)
	assert.Equal(t, "viewed", app.Status)

	// 安排面试
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, s.newReq(t, "/applications/review/schedule-interview", web.ScheduleInterviewReq{
		ID:   aid,
		Date: time.Now().Add(72 * time.Hour).UnixMilli(),
		Type: "video",
		Link: "https://meet.example.com/abc",
	}))
	require.Equal(t, 200, recorder.Code)

	// 接受
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, s.newReq(t, "/applications/review/accept", web.DecisionReq{
		ID:      aid,
		Message: "欢迎加入",
	}))
	require.Equal(t, 200, recorder.Code)

	// 终态之后不允许再流转
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, s.newReq(t, "/applications/review/reject", web.DecisionReq{ID: aid}))
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 512007, recorder.MustScan().Code)

	// 时间线按发生顺序返回，只追加
	tlRecorder := test.NewJSONResponseRecorder[web.TimelineResp]()
	s.server.ServeHTTP(tlRecorder, s.newReq(t, "/applications/review/timeline", web.IDReq{ID: aid}))
	require.Equal(t, 200, tlRecorder.Code)
	entries := tlRecorder.MustScan().Data.Entries
	require.Len(t, entries, 4)
	assert.Equal(t, "applied", entries[0].Type)
	assert.Equal(t, "viewed", entries[1].Type)
	assert.Equal(t, "interview_scheduled", entries[2].Type)
	require.NotNil(t, entries[2].Interview)
	assert.Equal(t, "video", entries[2].Interview.Type)
	assert.Equal(t, "accepted", entries[3].Type)
	assert.Equal(t, uid, entries[3].Actor)
	assert.Equal(t, "欢迎加入", entries[3].Message)

	app, err = s.dao.FindByID(ctx, aid)
	require.NoError(t, err)
	assert.Equal(t, string(application.StatusAccepted), app.Status)
}

func (s *ModuleTestSuite) newReq(t *testing.T, path string, body any) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	return req
}

func TestApplicationModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

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

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const expiration = 24 * time.Hour

var ErrCntNotFound = errors.New("投递人数缓存没找到")

// JobCache 缓存职位的投递人数，展示用，允许和实际行数有出入
type JobCache interface {
	SetApplicantCnt(ctx context.Context, jobID int64, cnt int64) error
	GetApplicantCnt(ctx context.Context, jobID int64) (int64, error)
}

type jobCache struct {
	ec ecache.Cache
}

func NewJobCache(ec ecache.Cache) JobCache {
	return &jobCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "jobs:",
		},
	}
}

func (c *jobCache) SetApplicantCnt(ctx context.Context, jobID int64, cnt int64) error {
	return errors.Wrap(c.ec.Set(ctx, c.applicantKey(jobID), cnt, expiration), "写入投递人数缓存失败")
}

func (c *jobCache) GetApplicantCnt(ctx context.Context, jobID int64) (int64, error) {
	val := c.ec.Get(ctx, c.applicantKey(jobID))
	if val.KeyNotFound() {
		return 0, ErrCntNotFound
	}
	if val.Err != nil {
		return 0, errors.Wrap(val.Err, "查询缓存出错")
	}
	return val.AsInt64()
}

func (c *jobCache) applicantKey(jobID int64) string {
	return fmt.Sprintf("applicant-cnt:%d", jobID)
}

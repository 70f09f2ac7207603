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

package domain

type JobStatus string

const (
	StatusActive JobStatus = "active"
	StatusPaused JobStatus = "paused"
	StatusClosed JobStatus = "closed"
	StatusDraft  JobStatus = "draft"
)

func (s JobStatus) String() string {
	return string(s)
}

// AcceptsApplications 只有 active 和 paused 的职位接受新投递
func (s JobStatus) AcceptsApplications() bool {
	return s == StatusActive || s == StatusPaused
}

type Job struct {
	ID          int64
	CompanyID   int64
	CompanyName string
	Title       string
	Location    string
	Status      JobStatus
	// ApplicantCnt 展示用的投递人数，advisory，允许丢失个别更新
	ApplicantCnt int64
	Ctime        int64
	Utime        int64
}

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

package web

type SaveJobReq struct {
	Job Job `json:"job"`
}

type Job struct {
	ID           int64  `json:"id"`
	CompanyID    int64  `json:"companyId"`
	CompanyName  string `json:"companyName"`
	Title        string `json:"title"`
	Location     string `json:"location"`
	Status       string `json:"status"`
	ApplicantCnt int64  `json:"applicantCnt"`
	Utime        int64  `json:"utime"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

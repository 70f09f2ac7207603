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

type SaveQuestionReq struct {
	Question Question `json:"question"`
}

type Question struct {
	ID             int64    `json:"id"`
	JobID          int64    `json:"jobId"`
	Prompt         string   `json:"prompt"`
	Type           string   `json:"type"`
	Options        []string `json:"options,omitempty"`
	Required       bool     `json:"required"`
	AutoFilter     bool     `json:"autoFilter"`
	ExpectedAnswer string   `json:"expectedAnswer"`
	DisplayOrder   int      `json:"displayOrder"`
}

type CatalogReq struct {
	JobID int64 `json:"jobId"`
}

type CatalogResp struct {
	Questions []Question `json:"questions"`
}

type DeleteQuestionReq struct {
	JobID int64 `json:"jobId"`
	ID    int64 `json:"id"`
}

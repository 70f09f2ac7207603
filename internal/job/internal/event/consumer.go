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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/jobhub/internal/job/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// ApplicantEventConsumer 消费投递事件，维护职位上的投递人数
// 计数是 advisory 的，消费失败只记日志
type ApplicantEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewApplicantEventConsumer(svc service.Service, q mq.MQ) (*ApplicantEventConsumer, error) {
	groupID := "job"
	consumer, err := q.Consumer(applicantEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &ApplicantEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *ApplicantEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费投递事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *ApplicantEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt ApplicantEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	err = c.svc.IncrApplicantCnt(ctx, evt.JobID)
	if err != nil {
		c.logger.Error("更新投递人数失败",
			elog.FieldErr(err),
			elog.Int64("jid", evt.JobID),
		)
	}
	return err
}

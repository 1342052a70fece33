// Copyright (C) 2020 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log_test

import (
	"context"
	"testing"

	"github.com/nipunG314/vulkan-test-applications/core/assert"
	"github.com/nipunG314/vulkan-test-applications/core/log"
)

type capture struct{ messages []*log.Message }

func (c *capture) context() context.Context {
	return log.PutHandler(context.Background(), log.NewHandler(func(m *log.Message) {
		c.messages = append(c.messages, m)
	}, nil))
}

func TestLogValues(t *testing.T) {
	assert := assert.To(t)
	c := &capture{}
	ctx := c.context()
	ctx = log.V{"trace": "vkTrimCommandPool_test"}.Bind(ctx)
	ctx = log.V{"test": "EmptyBitCommandPool"}.Bind(ctx)
	log.I(ctx, "running")
	if !assert.For("message count").ThatInteger(len(c.messages)).Equals(1) {
		return
	}
	m := c.messages[0]
	assert.For("severity").That(m.Severity).Equals(log.Info)
	if !assert.For("value count").ThatInteger(len(m.Values)).Equals(2) {
		return
	}
	// Values are sorted by name.
	assert.For("first value").ThatString(m.Values[0].Name).Equals("test")
	assert.For("second value").ThatString(m.Values[1].Name).Equals("trace")
}

func TestLogFilter(t *testing.T) {
	assert := assert.To(t)
	c := &capture{}
	ctx := log.PutFilter(c.context(), log.SeverityFilter(log.Warning))
	log.D(ctx, "hidden")
	log.I(ctx, "hidden")
	log.W(ctx, "shown")
	log.E(ctx, "shown")
	assert.For("shown messages").ThatInteger(len(c.messages)).Equals(2)
}

func TestErrf(t *testing.T) {
	assert := assert.To(t)
	c := &capture{}
	ctx := c.context()
	cause := context.Canceled
	err := log.Errf(ctx, cause, "loading trace %s", "x")
	if !assert.For("error").ThatError(err).Failed() {
		return
	}
	type causer interface{ Cause() error }
	assert.For("cause").ThatError(err.(causer).Cause()).Equals(cause)
}

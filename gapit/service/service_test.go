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

package service

import (
	"io"
	"testing"
	"time"

	"github.com/nipunG314/vulkan-test-applications/core/assert"
	"github.com/nipunG314/vulkan-test-applications/core/log"
	"github.com/nipunG314/vulkan-test-applications/gapit/api"
)

func TestCallRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	in := api.NewCall(7, "vkTrimCommandPool",
		api.Arg("device", api.Handle(0xd0)),
		api.Arg("commandPool", api.Handle(0xc0)),
		api.Arg("flags", api.Uint(0)),
		api.Arg("label", api.Str("pool")),
		api.Arg("scale", api.Float(0.5)),
		api.Arg("protected", api.Bool(true)),
		api.Arg("result", api.Result(-4)),
		api.Arg("offset", api.Int(-1)),
	)

	out, err := decodeCall(encodeCall(in))
	assert.For(ctx, "decode").ThatError(err).Succeeded()
	assert.For(ctx, "name").ThatString(out.Name()).Equals("vkTrimCommandPool")
	assert.For(ctx, "index").That(out.Index()).Equals(api.CallID(7))

	want := in.Args()
	got := out.Args()
	assert.For(ctx, "argument count").ThatInteger(len(got)).Equals(len(want))
	for i := range want {
		assert.For(ctx, "argument %s name", want[i].Name).ThatString(got[i].Name).Equals(want[i].Name)
		assert.For(ctx, "argument %s value", want[i].Name).ThatBoolean(got[i].Value.Equals(want[i].Value)).IsTrue()
	}
}

func TestDecodeUnknownKind(t *testing.T) {
	ctx := log.Testing(t)
	_, err := decodeCall(&Call{
		Name:      "vkTrimCommandPool",
		Arguments: []*Argument{{Name: "flags", Kind: Argument_Kind(99)}},
	})
	assert.For(ctx, "unknown kind").ThatError(err).Failed()
	assert.For(ctx, "message").ThatString(err.Error()).Contains("flags")
}

func TestLocalHarness(t *testing.T) {
	ctx := log.Testing(t)
	local := NewLocal()
	local.RegisterTrace(
		&TraceInfo{
			ID:      "vkTrimCommandPool_test",
			Name:    "trim command pool",
			Fixture: map[string]api.Handle{"device": 0xd0, "command_pool": 0xc0},
		},
		api.NewCall(0, "vkCreateCommandPool"),
		api.NewCall(1, "vkTrimCommandPool"),
	)

	infos, err := local.ListTraces(ctx)
	assert.For(ctx, "ListTraces").ThatError(err).Succeeded()
	assert.For(ctx, "trace count").ThatInteger(len(infos)).Equals(1)
	assert.For(ctx, "call count").That(infos[0].CallCount).Equals(uint32(2))

	info, err := local.GetTrace(ctx, "vkTrimCommandPool_test")
	assert.For(ctx, "GetTrace").ThatError(err).Succeeded()
	assert.For(ctx, "device fixture").That(info.Fixture["device"]).Equals(api.Handle(0xd0))

	_, err = local.GetTrace(ctx, "unknown")
	assert.For(ctx, "unknown trace").ThatError(err).Equals(ErrTraceNotFound)

	source, err := local.GetCalls(ctx, "vkTrimCommandPool_test")
	assert.For(ctx, "GetCalls").ThatError(err).Succeeded()
	first, err := source.Next(ctx)
	assert.For(ctx, "first call").ThatError(err).Succeeded()
	assert.For(ctx, "first name").ThatString(first.Name()).Equals("vkCreateCommandPool")
	second, err := source.Next(ctx)
	assert.For(ctx, "second call").ThatError(err).Succeeded()
	assert.For(ctx, "second name").ThatString(second.Name()).Equals("vkTrimCommandPool")
	_, err = source.Next(ctx)
	assert.For(ctx, "exhausted").ThatError(err).Equals(io.EOF)
}

func TestServerStreamsCalls(t *testing.T) {
	ctx := log.Testing(t)
	local := NewLocal()
	local.RegisterTrace(
		&TraceInfo{ID: "t"},
		api.NewCall(0, "vkCreateCommandPool", api.Arg("device", api.Handle(1))),
		api.NewCall(1, "vkTrimCommandPool", api.Arg("flags", api.Uint(0))),
	)

	sink := &sendRecorder{}
	err := NewServer(local).GetCalls(&GetCallsRequest{Id: "t"}, sink)
	assert.For(ctx, "GetCalls").ThatError(err).Succeeded()
	assert.For(ctx, "streamed").ThatInteger(len(sink.sent)).Equals(2)
	assert.For(ctx, "first").ThatString(sink.sent[0].GetCall().GetName()).Equals("vkCreateCommandPool")
	assert.For(ctx, "second index").That(sink.sent[1].GetCall().GetIndex()).Equals(uint64(1))
}

func TestConnectUnreachable(t *testing.T) {
	ctx := log.Testing(t)
	// Nothing listens on the discard port; the blocking dial must give up
	// within the configured timeout instead of hanging.
	_, err := Connect(ctx, Config{
		Address: "localhost:9",
		Timeout: 50 * time.Millisecond,
	})
	assert.For(ctx, "unreachable harness").ThatError(err).Failed()
}

type sendRecorder struct {
	Harness_GetCallsServer
	sent []*GetCallsResponse
}

func (r *sendRecorder) Send(m *GetCallsResponse) error {
	r.sent = append(r.sent, m)
	return nil
}

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

package stream_test

import (
	"io"
	"testing"

	"github.com/nipunG314/vulkan-test-applications/core/assert"
	"github.com/nipunG314/vulkan-test-applications/core/log"
	"github.com/nipunG314/vulkan-test-applications/gapit/api"
	"github.com/nipunG314/vulkan-test-applications/gapit/stream"
)

func commandPoolCalls() *stream.List {
	return stream.NewList(
		api.NewCall(0, "vkCreateCommandPool",
			api.Arg("device", api.Handle(0xd0)),
			api.Arg("pCommandPool", api.Handle(0xc0))),
		api.NewCall(1, "vkAllocateCommandBuffers",
			api.Arg("device", api.Handle(0xd0))),
		api.NewCall(2, "vkTrimCommandPool",
			api.Arg("device", api.Handle(0xd0)),
			api.Arg("commandPool", api.Handle(0xc0)),
			api.Arg("flags", api.Uint(0))),
		api.NewCall(3, "vkTrimCommandPool",
			api.Arg("device", api.Handle(0xd0)),
			api.Arg("commandPool", api.Handle(0xc1)),
			api.Arg("flags", api.Uint(0))),
	)
}

func TestNextOfReturnsFirstMatch(t *testing.T) {
	ctx := log.Testing(t)
	cur := stream.NewCursor(commandPoolCalls())
	call, err := cur.NextOf(ctx, "vkTrimCommandPool")
	assert.For(ctx, "NextOf").ThatError(err).Succeeded()
	assert.For(ctx, "index").That(call.Index()).Equals(api.CallID(2))
	assert.For(ctx, "position").That(cur.Position()).Equals(api.CallID(2))
}

func TestNextOfNeverRepeats(t *testing.T) {
	ctx := log.Testing(t)
	cur := stream.NewCursor(commandPoolCalls())
	first, err := cur.NextOf(ctx, "vkTrimCommandPool")
	assert.For(ctx, "first").ThatError(err).Succeeded()
	second, err := cur.NextOf(ctx, "vkTrimCommandPool")
	assert.For(ctx, "second").ThatError(err).Succeeded()
	assert.For(ctx, "distinct calls").That(first.Index()).NotEquals(second.Index())
	assert.For(ctx, "second index").That(second.Index()).Equals(api.CallID(3))

	// The sequence holds exactly two trims.
	_, err = cur.NextOf(ctx, "vkTrimCommandPool")
	assert.For(ctx, "third").ThatError(err).Failed()
}

func TestNextOfNotFound(t *testing.T) {
	ctx := log.Testing(t)
	cur := stream.NewCursor(commandPoolCalls())
	_, err := cur.NextOf(ctx, "vkResetCommandPool")
	notFound, ok := err.(*stream.NotFoundError)
	assert.For(ctx, "error type").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "name").ThatString(notFound.Name).Equals("vkResetCommandPool")
	assert.For(ctx, "message").ThatString(notFound.Error()).Contains("vkResetCommandPool")
}

func TestNextOfSearchesStrictlyAfterCursor(t *testing.T) {
	ctx := log.Testing(t)
	cur := stream.NewCursor(commandPoolCalls())
	// Consume up to and including the first trim.
	_, err := cur.NextOf(ctx, "vkTrimCommandPool")
	assert.For(ctx, "first trim").ThatError(err).Succeeded()
	// A search for the creation call must not rewind.
	_, err = cur.NextOf(ctx, "vkCreateCommandPool")
	assert.For(ctx, "create after trim").ThatError(err).Failed()
	notFound := err.(*stream.NotFoundError)
	assert.For(ctx, "search start").That(notFound.After).Equals(api.CallID(2))
}

func TestCursorNext(t *testing.T) {
	ctx := log.Testing(t)
	cur := stream.NewCursor(commandPoolCalls())
	names := []string{}
	for {
		call, err := cur.Next(ctx)
		if err == io.EOF {
			break
		}
		assert.For(ctx, "Next").ThatError(err).Succeeded()
		names = append(names, call.Name())
	}
	assert.For(ctx, "stream order").That(names).DeepEquals([]string{
		"vkCreateCommandPool",
		"vkAllocateCommandBuffers",
		"vkTrimCommandPool",
		"vkTrimCommandPool",
	})
}

func TestEmptySequence(t *testing.T) {
	ctx := log.Testing(t)
	cur := stream.NewCursor(stream.NewList())
	_, err := cur.NextOf(ctx, "vkTrimCommandPool")
	assert.For(ctx, "empty").ThatError(err).Failed()
	notFound := err.(*stream.NotFoundError)
	assert.For(ctx, "after on empty").That(notFound.After).Equals(api.NoID)
}

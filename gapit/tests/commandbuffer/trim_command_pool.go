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

// Package commandbuffer declares the validation tests for the command
// buffer and command pool traces.
package commandbuffer

import (
	"context"

	"github.com/nipunG314/vulkan-test-applications/gapit/expect"
	"github.com/nipunG314/vulkan-test-applications/gapit/framework"
	"github.com/nipunG314/vulkan-test-applications/gapit/stream"
)

func init() {
	framework.Register(framework.Test{
		Name:   "EmptyBitCommandPool",
		Trace:  "vkTrimCommandPool_test",
		Expect: expectTrimCommandPool,
	})
}

// expectTrimCommandPool expects a default command pool that is trimmed for
// redundant memory.
func expectTrimCommandPool(ctx context.Context, f *framework.Fixture, calls *stream.Cursor) error {
	device, err := f.Device()
	if err != nil {
		return err
	}
	pool, err := f.CommandPool()
	if err != nil {
		return err
	}

	trim, err := calls.NextOf(ctx, "vkTrimCommandPool")
	if err != nil {
		return err
	}
	if err := expect.ArgEqual(trim, "device", device); err != nil {
		return err
	}
	if err := expect.ArgEqual(trim, "commandPool", pool); err != nil {
		return err
	}
	return expect.ArgEqual(trim, "flags", 0)
}

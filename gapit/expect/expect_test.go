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

package expect_test

import (
	"testing"

	"github.com/nipunG314/vulkan-test-applications/core/assert"
	"github.com/nipunG314/vulkan-test-applications/core/log"
	"github.com/nipunG314/vulkan-test-applications/gapit/api"
	"github.com/nipunG314/vulkan-test-applications/gapit/expect"
)

func trimCall(flags uint64) *api.Call {
	return api.NewCall(1, "vkTrimCommandPool",
		api.Arg("device", api.Handle(0xd0)),
		api.Arg("commandPool", api.Handle(0xc0)),
		api.Arg("flags", api.Uint(flags)),
	)
}

func TestRequire(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "value").ThatError(expect.Require(trimCall(0))).Succeeded()
	assert.For(ctx, "nil").ThatError(expect.Require(nil)).Failed()
	var typedNil *api.Call
	assert.For(ctx, "typed nil").ThatError(expect.Require(typedNil)).Failed()
}

func TestEqualSymmetry(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name string
		a, b interface{}
		same bool
	}{
		{"equal uints", uint64(0), uint64(0), true},
		{"int vs uint", 7, uint64(7), true},
		{"unequal", 0, 1, false},
		{"handle identity", api.Handle(3), api.Handle(3), true},
		{"handle vs number", api.Handle(3), 3, false},
		{"strings", "a", "a", true},
	} {
		forward := expect.Equal(test.a, test.b)
		reverse := expect.Equal(test.b, test.a)
		assert.For(ctx, "%s", test.name).That(forward == nil).Equals(test.same)
		assert.For(ctx, "%s symmetric", test.name).That(reverse == nil).Equals(forward == nil)
	}
}

func TestEqualReportsBothValues(t *testing.T) {
	ctx := log.Testing(t)
	err := expect.Equal(0, 1)
	fail, ok := err.(*expect.AssertionError)
	assert.For(ctx, "error type").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "expected").That(fail.Expected).Equals(0)
	assert.For(ctx, "actual").That(fail.Actual).Equals(1)
	assert.For(ctx, "message").ThatString(fail.Error()).Contains("expected 0 == 1")
}

func TestNotEqual(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "different").ThatError(expect.NotEqual(0, 1)).Succeeded()
	assert.For(ctx, "same").ThatError(expect.NotEqual(1, 1)).Failed()
}

func TestArgEqual(t *testing.T) {
	ctx := log.Testing(t)
	call := trimCall(0)

	assert.For(ctx, "flags == 0").ThatError(expect.ArgEqual(call, "flags", 0)).Succeeded()
	assert.For(ctx, "device").ThatError(expect.ArgEqual(call, "device", api.Handle(0xd0))).Succeeded()

	err := expect.ArgEqual(trimCall(1), "flags", 0)
	fail, ok := err.(*expect.AssertionError)
	assert.For(ctx, "mismatch type").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "mismatch field").ThatString(fail.Field).Equals("flags")
	assert.For(ctx, "mismatch call").ThatString(fail.Call).Equals("vkTrimCommandPool")
	assert.For(ctx, "mismatch index").That(fail.Index).Equals(api.CallID(1))
	assert.For(ctx, "mismatch actual").That(fail.Actual).Equals(api.Uint(1))
}

func TestArgEqualMissingField(t *testing.T) {
	ctx := log.Testing(t)
	err := expect.ArgEqual(trimCall(0), "queueFamilyIndex", 0)
	missing, ok := err.(*api.MissingFieldError)
	assert.For(ctx, "error type").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "field").ThatString(missing.Field).Equals("queueFamilyIndex")
}

func TestArgEqualNilCall(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "nil call").ThatError(expect.ArgEqual(nil, "flags", 0)).Failed()
}

func TestExpectationCheck(t *testing.T) {
	ctx := log.Testing(t)
	call := trimCall(0)
	pass := []expect.Expectation{
		{Field: "flags", Value: api.Uint(0), Op: expect.Equals},
		{Field: "commandPool", Value: api.Handle(0), Op: expect.NotEquals},
	}
	assert.For(ctx, "all pass").ThatError(expect.CheckAll(call, pass)).Succeeded()

	fail := append(pass, expect.Expectation{Field: "flags", Value: api.Uint(1), Op: expect.Equals})
	assert.For(ctx, "one fails").ThatError(expect.CheckAll(call, fail)).Failed()
}

func TestParseOp(t *testing.T) {
	ctx := log.Testing(t)
	op, err := expect.ParseOp("equals")
	assert.For(ctx, "equals").ThatError(err).Succeeded()
	assert.For(ctx, "equals op").That(op).Equals(expect.Equals)

	op, err = expect.ParseOp("not-equals")
	assert.For(ctx, "not-equals").ThatError(err).Succeeded()
	assert.For(ctx, "not-equals op").That(op).Equals(expect.NotEquals)

	_, err = expect.ParseOp("approximately")
	assert.For(ctx, "unknown").ThatError(err).Failed()
}

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

package manifest_test

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/nipunG314/vulkan-test-applications/core/assert"
	"github.com/nipunG314/vulkan-test-applications/core/log"
	"github.com/nipunG314/vulkan-test-applications/gapit/api"
	"github.com/nipunG314/vulkan-test-applications/gapit/framework"
	"github.com/nipunG314/vulkan-test-applications/gapit/manifest"
	"github.com/nipunG314/vulkan-test-applications/gapit/service"
	"github.com/nipunG314/vulkan-test-applications/gapit/stream"
)

const trimSuite = `
harness: localhost:40000
filter: ^ManifestTrim
tests:
  - name: ManifestTrimCommandPool
    trace: vkTrimCommandPool_test
    checks:
      - call: vkTrimCommandPool
        expect:
          - field: device
            handle: device
          - field: commandPool
            handle: command_pool
          - field: flags
            value: 0
  - name: ManifestTrimTwice
    trace: vkTrimCommandPool_test
    checks:
      - call: vkTrimCommandPool
        expect:
          - field: flags
            value: 0
      - call: vkTrimCommandPool
        expect:
          - field: flags
            op: not-equals
            value: 0
`

func trimHarness() *service.Local {
	local := service.NewLocal()
	local.RegisterTrace(
		&service.TraceInfo{
			ID: "vkTrimCommandPool_test",
			Fixture: map[string]api.Handle{
				framework.DeviceHandle:      0xd0,
				framework.CommandPoolHandle: 0xc0,
			},
		},
		api.NewCall(0, "vkCreateCommandPool", api.Arg("device", api.Handle(0xd0))),
		api.NewCall(1, "vkTrimCommandPool",
			api.Arg("device", api.Handle(0xd0)),
			api.Arg("commandPool", api.Handle(0xc0)),
			api.Arg("flags", api.Uint(0))),
		api.NewCall(2, "vkTrimCommandPool",
			api.Arg("device", api.Handle(0xd0)),
			api.Arg("commandPool", api.Handle(0xc0)),
			api.Arg("flags", api.Uint(1))),
	)
	return local
}

func TestDecode(t *testing.T) {
	ctx := log.Testing(t)
	suite, err := manifest.Decode(strings.NewReader(trimSuite))
	assert.For(ctx, "Decode").ThatError(err).Succeeded()
	assert.For(ctx, "harness").ThatString(suite.Harness).Equals("localhost:40000")
	assert.For(ctx, "filter").ThatString(suite.Filter).Equals("^ManifestTrim")
	assert.For(ctx, "tests").ThatInteger(len(suite.Tests)).Equals(2)
	assert.For(ctx, "checks").ThatInteger(len(suite.Tests[0].Checks)).Equals(1)
	assert.For(ctx, "expect").ThatInteger(len(suite.Tests[0].Checks[0].Expect)).Equals(3)
}

func TestDecodeUnknownField(t *testing.T) {
	ctx := log.Testing(t)
	_, err := manifest.Decode(strings.NewReader("tests:\n  - name: x\n    trace: t\n    traces: oops\n"))
	assert.For(ctx, "unknown field").ThatError(err).Failed()
}

func TestDecodeRejectsBadSuites(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name  string
		suite string
	}{
		{"unnamed test", "tests:\n  - trace: t\n"},
		{"duplicate name", "tests:\n  - {name: x, trace: t}\n  - {name: x, trace: t}\n"},
		{"no trace", "tests:\n  - name: x\n"},
		{"no call", "tests:\n  - name: x\n    trace: t\n    checks:\n      - expect: []\n"},
		{"no field", "tests:\n  - name: x\n    trace: t\n    checks:\n      - call: c\n        expect:\n          - value: 0\n"},
		{"value and handle", "tests:\n  - name: x\n    trace: t\n    checks:\n      - call: c\n        expect:\n          - {field: f, value: 0, handle: device}\n"},
		{"neither value nor handle", "tests:\n  - name: x\n    trace: t\n    checks:\n      - call: c\n        expect:\n          - field: f\n"},
		{"bad op", "tests:\n  - name: x\n    trace: t\n    checks:\n      - call: c\n        expect:\n          - {field: f, op: above, value: 0}\n"},
	} {
		_, err := manifest.Decode(strings.NewReader(test.suite))
		assert.For(ctx, "%s", test.name).ThatError(err).Failed()
	}
}

func TestRegisterCollision(t *testing.T) {
	ctx := log.Testing(t)
	framework.Register(framework.Test{
		Name:  "ManifestTaken",
		Trace: "vkTrimCommandPool_test",
		Expect: func(ctx context.Context, f *framework.Fixture, calls *stream.Cursor) error {
			return nil
		},
	})
	suite, err := manifest.Decode(strings.NewReader(
		"tests:\n  - name: ManifestTaken\n    trace: vkTrimCommandPool_test\n"))
	assert.For(ctx, "Decode").ThatError(err).Succeeded()
	err = suite.Register()
	assert.For(ctx, "collision").ThatError(err).Failed()
	assert.For(ctx, "collision message").ThatString(err.Error()).Contains("ManifestTaken")
}

func TestSuiteRun(t *testing.T) {
	ctx := log.Testing(t)
	suite, err := manifest.Decode(strings.NewReader(trimSuite))
	assert.For(ctx, "Decode").ThatError(err).Succeeded()
	assert.For(ctx, "Register").ThatError(suite.Register()).Succeeded()

	runner := &framework.Runner{
		Harness: trimHarness(),
		Filter:  regexp.MustCompile(suite.Filter),
	}
	report, err := runner.Run(ctx)
	assert.For(ctx, "Run").ThatError(err).Succeeded()
	assert.For(ctx, "results").ThatInteger(len(report.Results)).Equals(2)
	assert.For(ctx, "failed").ThatInteger(report.Failed()).Equals(0)
	for _, result := range report.Results {
		assert.For(ctx, "%s", result.Test).That(result.Outcome).Equals(framework.Pass)
	}
}

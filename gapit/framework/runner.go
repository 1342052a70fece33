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

package framework

import (
	"context"
	"regexp"

	"github.com/google/uuid"
	"github.com/nipunG314/vulkan-test-applications/core/log"
	"github.com/nipunG314/vulkan-test-applications/gapit/api"
	"github.com/nipunG314/vulkan-test-applications/gapit/expect"
	"github.com/nipunG314/vulkan-test-applications/gapit/service"
	"github.com/nipunG314/vulkan-test-applications/gapit/stream"
	"github.com/pkg/errors"
)

// Runner evaluates registered tests against the traces served by a harness.
type Runner struct {
	// Harness serves trace metadata and call streams.
	Harness service.Service
	// Reporter receives each result as it is produced. Optional.
	Reporter Reporter
	// Filter limits the run to tests whose name matches. Optional.
	Filter *regexp.Regexp
}

// Run evaluates the selected tests sequentially and returns the report.
// A failing test never stops the run; only a nil harness is a hard error.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if r.Harness == nil {
		return nil, errors.New("runner has no harness")
	}
	report := &Report{ID: uuid.New().String()}
	ctx = log.V{"run": report.ID}.Bind(ctx)
	for _, test := range Tests() {
		if r.Filter != nil && !r.Filter.MatchString(test.Name) {
			continue
		}
		result := r.runTest(ctx, test)
		report.Results = append(report.Results, result)
		if r.Reporter != nil {
			r.Reporter.Result(ctx, result)
		}
	}
	return report, nil
}

// runTest evaluates one test. Each test owns a fresh fixture and cursor;
// nothing is shared between tests.
func (r *Runner) runTest(ctx context.Context, test Test) Result {
	ctx = log.V{"test": test.Name}.Bind(ctx)
	log.D(ctx, "running against trace %s", test.Trace)

	result := Result{Test: test.Name, Trace: test.Trace}
	info, err := r.Harness.GetTrace(ctx, test.Trace)
	if err != nil {
		result.Outcome, result.Cause = Erred, errors.Wrapf(err, "loading trace %s", test.Trace)
		return result
	}
	source, err := r.Harness.GetCalls(ctx, test.Trace)
	if err != nil {
		result.Outcome, result.Cause = Erred, errors.Wrapf(err, "opening call stream of %s", test.Trace)
		return result
	}

	err = test.Expect(ctx, NewFixture(info), stream.NewCursor(source))
	switch {
	case err == nil:
		result.Outcome = Pass
	case isExpectationFailure(err):
		result.Outcome, result.Cause = Fail, err
	default:
		result.Outcome, result.Cause = Erred, err
	}
	return result
}

// isExpectationFailure reports whether err is a violated expectation rather
// than an evaluation error.
func isExpectationFailure(err error) bool {
	switch errors.Cause(err).(type) {
	case *expect.AssertionError, *api.MissingFieldError, *stream.NotFoundError:
		return true
	default:
		return false
	}
}

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

	"github.com/nipunG314/vulkan-test-applications/core/log"
)

// Outcome classifies the result of one test.
type Outcome int

const (
	// Pass means every expectation held.
	Pass Outcome = iota
	// Fail means an expectation was violated: an assertion mismatch, a
	// missing argument, or a call that was not found.
	Fail
	// Erred means the test could not be evaluated, such as a harness
	// transport failure.
	Erred
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	case Erred:
		return "ERROR"
	default:
		return "?"
	}
}

// Result is the outcome of one test.
type Result struct {
	// Test is the name of the test.
	Test string
	// Trace is the trace the test ran against.
	Trace string
	// Outcome classifies the result.
	Outcome Outcome
	// Cause is the first violated expectation or the evaluation error.
	// It is nil for a passing test.
	Cause error
}

// Report is the outcome of one runner invocation.
type Report struct {
	// ID uniquely identifies the run.
	ID string
	// Results holds one entry per executed test, in execution order.
	Results []Result
}

// Failed returns the number of tests that did not pass.
func (r *Report) Failed() int {
	count := 0
	for _, res := range r.Results {
		if res.Outcome != Pass {
			count++
		}
	}
	return count
}

// Reporter consumes test results as they are produced.
type Reporter interface {
	Result(ctx context.Context, r Result)
}

// LogReporter logs each result through the context's log handler.
type LogReporter struct{}

// Result implements Reporter.
func (LogReporter) Result(ctx context.Context, r Result) {
	ctx = log.V{"trace": r.Trace}.Bind(ctx)
	switch r.Outcome {
	case Pass:
		log.I(ctx, "%v %s", r.Outcome, r.Test)
	case Fail:
		log.E(ctx, "%v %s: %v", r.Outcome, r.Test, r.Cause)
	default:
		log.E(ctx, "%v %s: %v", r.Outcome, r.Test, r.Cause)
	}
}

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

// Package framework registers and runs trace validation tests.
//
// A test declares expectations against the call stream of one captured
// trace. Tests register themselves at init time:
//
//	func init() {
//	  framework.Register(framework.Test{
//	    Name:  "EmptyBitCommandPool",
//	    Trace: "vkTrimCommandPool_test",
//	    Expect: func(ctx context.Context, f *framework.Fixture, calls *stream.Cursor) error {
//	      ...
//	    },
//	  })
//	}
package framework

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/nipunG314/vulkan-test-applications/gapit/stream"
)

// ExpectFunc is the body of a validation test. It receives the fixture
// recorded at trace setup and a cursor over the captured call stream, and
// returns the first violated expectation, or nil if all passed.
type ExpectFunc func(ctx context.Context, f *Fixture, calls *stream.Cursor) error

// Test is a single registered trace validation test.
type Test struct {
	// Name uniquely identifies the test.
	Name string
	// Trace is the identifier of the captured trace the test runs against.
	Trace string
	// Expect is the test body.
	Expect ExpectFunc
}

var (
	registryMutex sync.Mutex
	registry      = map[string]Test{}
)

// Register adds a test to the global registry.
// It panics if the test is incomplete or its name is already taken, so
// registration errors surface at init time.
func Register(t Test) {
	if err := TryRegister(t); err != nil {
		panic(err)
	}
}

// TryRegister adds a test to the global registry, reporting an incomplete
// test or a taken name as an error. Use it when the tests arrive at run
// time rather than at init.
func TryRegister(t Test) error {
	if t.Name == "" || t.Trace == "" || t.Expect == nil {
		return fmt.Errorf("incomplete test registration %+v", t)
	}
	registryMutex.Lock()
	defer registryMutex.Unlock()
	if _, dup := registry[t.Name]; dup {
		return fmt.Errorf("duplicate test name %s", t.Name)
	}
	registry[t.Name] = t
	return nil
}

// Tests returns the registered tests sorted by name.
func Tests() []Test {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	out := make([]Test, 0, len(registry))
	for _, t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

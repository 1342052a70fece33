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

// Package manifest loads declarative test suites from YAML files and turns
// them into registered tests. A manifest names a trace per test and, for
// each interesting call, the argument values the capture must contain.
package manifest

import (
	"context"
	"io"
	"os"

	"github.com/nipunG314/vulkan-test-applications/gapit/api"
	"github.com/nipunG314/vulkan-test-applications/gapit/expect"
	"github.com/nipunG314/vulkan-test-applications/gapit/framework"
	"github.com/nipunG314/vulkan-test-applications/gapit/stream"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Suite is the root document of a manifest file.
type Suite struct {
	// Harness is the address of the harness serving the traces. Optional,
	// the command line takes precedence.
	Harness string `yaml:"harness,omitempty"`
	// Filter is a regexp limiting the run to matching test names. Optional.
	Filter string `yaml:"filter,omitempty"`
	// Tests are the declarative tests of the suite.
	Tests []TestSpec `yaml:"tests"`
}

// TestSpec declares one test: a trace and the checks to apply to its calls.
type TestSpec struct {
	Name   string      `yaml:"name"`
	Trace  string      `yaml:"trace"`
	Checks []CheckSpec `yaml:"checks"`
}

// CheckSpec declares the expectations over the next occurrence of a call.
// Checks of a test share one cursor, so consecutive checks of the same call
// address consecutive occurrences.
type CheckSpec struct {
	Call   string       `yaml:"call"`
	Expect []ExpectSpec `yaml:"expect"`
}

// ExpectSpec declares a single argument comparison. Exactly one of Value
// and Handle must be set: Value is a literal scalar, Handle names a fixture
// handle bound at trace setup.
type ExpectSpec struct {
	Field  string      `yaml:"field"`
	Op     string      `yaml:"op,omitempty"`
	Value  interface{} `yaml:"value,omitempty"`
	Handle string      `yaml:"handle,omitempty"`
}

// Decode reads a suite from r. Unknown fields are an error.
func Decode(r io.Reader) (*Suite, error) {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	suite := &Suite{}
	if err := d.Decode(suite); err != nil {
		return nil, errors.Wrap(err, "decoding manifest")
	}
	if err := suite.validate(); err != nil {
		return nil, err
	}
	return suite, nil
}

// Load reads a suite from the file at path.
func Load(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening manifest %s", path)
	}
	defer f.Close()
	suite, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest %s", path)
	}
	return suite, nil
}

func (s *Suite) validate() error {
	seen := map[string]bool{}
	for i, test := range s.Tests {
		if test.Name == "" {
			return errors.Errorf("test %d has no name", i)
		}
		if seen[test.Name] {
			return errors.Errorf("duplicate test name '%s'", test.Name)
		}
		seen[test.Name] = true
		if test.Trace == "" {
			return errors.Errorf("test '%s' names no trace", test.Name)
		}
		for _, check := range test.Checks {
			if check.Call == "" {
				return errors.Errorf("test '%s' has a check without a call name", test.Name)
			}
			for _, e := range check.Expect {
				if e.Field == "" {
					return errors.Errorf("test '%s', call %s: expectation without a field", test.Name, check.Call)
				}
				if (e.Value == nil) == (e.Handle == "") {
					return errors.Errorf("test '%s', call %s, field %s: exactly one of value and handle must be set",
						test.Name, check.Call, e.Field)
				}
				if _, err := expect.ParseOp(e.Op); err != nil {
					return errors.Wrapf(err, "test '%s', call %s, field %s", test.Name, check.Call, e.Field)
				}
			}
		}
	}
	return nil
}

// Register adds every test of the suite to the test registry.
func (s *Suite) Register() error {
	if err := s.validate(); err != nil {
		return err
	}
	for _, spec := range s.Tests {
		spec := spec
		err := framework.TryRegister(framework.Test{
			Name:  spec.Name,
			Trace: spec.Trace,
			Expect: func(ctx context.Context, f *framework.Fixture, calls *stream.Cursor) error {
				return runChecks(ctx, spec, f, calls)
			},
		})
		if err != nil {
			return errors.Wrapf(err, "registering test '%s'", spec.Name)
		}
	}
	return nil
}

func runChecks(ctx context.Context, spec TestSpec, f *framework.Fixture, calls *stream.Cursor) error {
	for _, check := range spec.Checks {
		call, err := calls.NextOf(ctx, check.Call)
		if err != nil {
			return err
		}
		expectations, err := resolve(check, f)
		if err != nil {
			return err
		}
		if err := expect.CheckAll(call, expectations); err != nil {
			return err
		}
	}
	return nil
}

// resolve turns the declared comparisons into expectations, looking fixture
// handles up on the way.
func resolve(check CheckSpec, f *framework.Fixture) ([]expect.Expectation, error) {
	expectations := make([]expect.Expectation, 0, len(check.Expect))
	for _, e := range check.Expect {
		op, err := expect.ParseOp(e.Op)
		if err != nil {
			return nil, err
		}
		var value api.Value
		if e.Handle != "" {
			var h api.Handle
			h, err = f.Handle(e.Handle)
			value = h
		} else {
			value, err = api.ValueOf(e.Value)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "call %s, field %s", check.Call, e.Field)
		}
		expectations = append(expectations, expect.Expectation{
			Field: e.Field,
			Value: value,
			Op:    op,
		})
	}
	return expectations, nil
}

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

// Package expect provides the assertion helpers used inside trace
// validation tests.
//
// All helpers return ordinary errors. The first failing expectation should
// abort the test body by returning its error; the framework classifies and
// reports it.
package expect

import (
	"fmt"
	"reflect"

	"github.com/nipunG314/vulkan-test-applications/gapit/api"
)

// AssertionError is returned when an expected and actual value disagree.
// It carries both values for diagnosis.
type AssertionError struct {
	// Op is the comparison that failed, "==" or "!=".
	Op string
	// Expected is the value the test declared.
	Expected interface{}
	// Actual is the value that was recorded.
	Actual interface{}
	// Field and Call identify the argument when the comparison was made
	// against a call argument. Both are empty for plain value checks.
	Field string
	Call  string
	// Index is the stream position of the call, or api.NoID.
	Index api.CallID
}

func (e *AssertionError) Error() string {
	where := ""
	if e.Field != "" {
		where = fmt.Sprintf(" for %s of %s at %v", e.Field, e.Call, e.Index)
	}
	return fmt.Sprintf("expected %v %s %v%s", e.Expected, e.Op, e.Actual, where)
}

// Require fails with an AssertionError if v is absent. It is used to guard
// that a prerequisite, such as a found call, was present before asserting
// on it. Typed nils count as absent.
func Require(v interface{}) error {
	if isNil(v) {
		return &AssertionError{Op: "!=", Expected: "a value", Actual: nil, Index: api.NoID}
	}
	return nil
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	r := reflect.ValueOf(v)
	switch r.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Ptr, reflect.Interface, reflect.Slice:
		return r.IsNil()
	default:
		return false
	}
}

// Equal fails with an AssertionError carrying both values if expected and
// actual disagree under semantic value equality. The outcome is symmetric
// in its arguments.
func Equal(expected, actual interface{}) error {
	eq, err := equals(expected, actual)
	if err != nil {
		return err
	}
	if !eq {
		return &AssertionError{Op: "==", Expected: expected, Actual: actual, Index: api.NoID}
	}
	return nil
}

// NotEqual is the dual of Equal: it fails if the values ARE equal.
func NotEqual(expected, actual interface{}) error {
	eq, err := equals(expected, actual)
	if err != nil {
		return err
	}
	if eq {
		return &AssertionError{Op: "!=", Expected: expected, Actual: actual, Index: api.NoID}
	}
	return nil
}

func equals(a, b interface{}) (bool, error) {
	va, err := api.ValueOf(a)
	if err != nil {
		return false, err
	}
	vb, err := api.ValueOf(b)
	if err != nil {
		return false, err
	}
	return va.Equals(vb), nil
}

// ArgEqual looks up the named argument on call and fails unless its
// recorded value equals expected. A missing argument surfaces as a
// *api.MissingFieldError naming the field.
func ArgEqual(call *api.Call, field string, expected interface{}) error {
	return argCompare(call, field, expected, "==", true)
}

// ArgNotEqual is the dual of ArgEqual.
func ArgNotEqual(call *api.Call, field string, expected interface{}) error {
	return argCompare(call, field, expected, "!=", false)
}

func argCompare(call *api.Call, field string, expected interface{}, op string, want bool) error {
	if err := Require(call); err != nil {
		return err
	}
	actual, err := call.Arg(field)
	if err != nil {
		return err
	}
	eq, err := equals(expected, actual)
	if err != nil {
		return err
	}
	if eq != want {
		return &AssertionError{
			Op:       op,
			Expected: expected,
			Actual:   actual,
			Field:    field,
			Call:     call.Name(),
			Index:    call.Index(),
		}
	}
	return nil
}

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

package expect

import (
	"fmt"

	"github.com/nipunG314/vulkan-test-applications/gapit/api"
)

// Op is the comparison kind of a declarative expectation.
type Op int

const (
	// Equals requires the argument to equal the declared value.
	Equals Op = iota
	// NotEquals requires the argument to differ from the declared value.
	NotEquals
)

func (op Op) String() string {
	switch op {
	case Equals:
		return "=="
	case NotEquals:
		return "!="
	default:
		return "?"
	}
}

// ParseOp converts the manifest spelling of a comparison kind to an Op.
func ParseOp(s string) (Op, error) {
	switch s {
	case "equals", "==", "":
		return Equals, nil
	case "not-equals", "!=":
		return NotEquals, nil
	default:
		return Equals, fmt.Errorf("unknown comparison kind '%s'", s)
	}
}

// Expectation is a single declarative assertion over one argument of a
// recorded call.
type Expectation struct {
	// Field is the argument name.
	Field string
	// Value is the declared value.
	Value api.Value
	// Op is the comparison kind.
	Op Op
}

// Check applies the expectation to the given call.
func (e Expectation) Check(call *api.Call) error {
	switch e.Op {
	case Equals:
		return ArgEqual(call, e.Field, e.Value)
	case NotEquals:
		return ArgNotEqual(call, e.Field, e.Value)
	default:
		return fmt.Errorf("unknown comparison kind %d", e.Op)
	}
}

// CheckAll applies the expectations to the call in order, returning the
// first failure.
func CheckAll(call *api.Call, expectations []Expectation) error {
	for _, e := range expectations {
		if err := e.Check(call); err != nil {
			return err
		}
	}
	return nil
}

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

// Package api defines the model of recorded API calls that validation tests
// are written against.
package api

import (
	"bytes"
	"fmt"
)

// CallID is the index of a call in a captured call stream.
// Indices increase monotonically in capture order.
type CallID uint64

// NoID is used when you have to pass a CallID, but don't have one to use.
const NoID = CallID(1<<63 - 1)

func (id CallID) String() string {
	if id == NoID {
		return "(NoID)"
	}
	return fmt.Sprintf("%d", uint64(id))
}

// Argument is a single named argument of a recorded call.
type Argument struct {
	// Name is the parameter name from the API declaration.
	Name string
	// Value is the recorded value.
	Value Value
}

// Arg is a convenience constructor for an Argument.
func Arg(name string, value Value) Argument {
	return Argument{Name: name, Value: value}
}

// Call is a single intercepted API invocation captured during tracing.
// Arguments keep their declaration order. A Call is immutable once
// constructed.
type Call struct {
	name  string
	index CallID
	args  []Argument
}

// NewCall builds a Call with the given stream index, name and arguments.
func NewCall(index CallID, name string, args ...Argument) *Call {
	c := &Call{name: name, index: index}
	c.args = append(c.args, args...)
	return c
}

// Name returns the name of the recorded call.
func (c *Call) Name() string { return c.name }

// Index returns the position of the call in the captured stream.
func (c *Call) Index() CallID { return c.index }

// Args returns the ordered arguments of the call.
// The returned slice is a copy.
func (c *Call) Args() []Argument {
	out := make([]Argument, len(c.args))
	copy(out, c.args)
	return out
}

// Arg returns the value of the named argument.
// If the call has no argument with that name, a *MissingFieldError is
// returned.
func (c *Call) Arg(name string) (Value, error) {
	for _, a := range c.args {
		if a.Name == name {
			return a.Value, nil
		}
	}
	return nil, &MissingFieldError{Call: c.name, Index: c.index, Field: name}
}

func (c *Call) String() string {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "%v: %s(", c.index, c.name)
	for i, a := range c.args {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%s: %v", a.Name, a.Value)
	}
	buf.WriteString(")")
	return buf.String()
}

// MissingFieldError is returned when an expectation references an argument
// that does not exist on the matched call.
type MissingFieldError struct {
	// Call is the name of the matched call.
	Call string
	// Index is the position of the call in the stream.
	Index CallID
	// Field is the argument name that was not found.
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("call %s at %v has no argument '%s'", e.Call, e.Index, e.Field)
}

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

package api

import (
	"fmt"

	"github.com/nipunG314/vulkan-test-applications/core/fault"
)

// ErrUnsupportedValue is returned by ValueOf for types that have no semantic
// value representation.
const ErrUnsupportedValue = fault.Const("Unsupported argument value type")

// Value is one recorded argument value.
//
// The set of implementations is closed: a value is a handle, a signed or
// unsigned integer, a float, a string, a bool or an API result code. Equals
// defines semantic equality: numeric kinds compare by value across
// signedness where exactly representable, handles compare only to handles.
type Value interface {
	fmt.Stringer

	// Equals returns true if the value is semantically equal to other.
	Equals(other Value) bool
}

// Handle is an opaque API object handle. Handles have identity equality:
// they only ever equal another Handle with the same bits.
type Handle uint64

// Int is a signed integer argument value.
type Int int64

// Uint is an unsigned integer argument value.
type Uint uint64

// Float is a floating point argument value.
type Float float64

// Str is a string argument value.
type Str string

// Bool is a boolean argument value.
type Bool bool

// Result is an API result code argument value (VkResult shaped).
type Result int32

// IsNull returns true if the handle is the null handle.
func (v Handle) IsNull() bool { return v == 0 }

func (v Handle) String() string { return fmt.Sprintf("0x%x", uint64(v)) }
func (v Int) String() string    { return fmt.Sprintf("%d", int64(v)) }
func (v Uint) String() string   { return fmt.Sprintf("%d", uint64(v)) }
func (v Float) String() string  { return fmt.Sprintf("%g", float64(v)) }
func (v Str) String() string    { return string(v) }
func (v Bool) String() string   { return fmt.Sprintf("%v", bool(v)) }
func (v Result) String() string { return fmt.Sprintf("%d", int32(v)) }

// Equals returns true if other is a Handle with the same bits.
func (v Handle) Equals(other Value) bool {
	o, ok := other.(Handle)
	return ok && v == o
}

// Equals returns true if other holds the same numeric value.
func (v Int) Equals(other Value) bool {
	switch o := other.(type) {
	case Int:
		return v == o
	case Uint:
		return v >= 0 && uint64(v) == uint64(o)
	case Float:
		return float64(v) == float64(o) && Int(float64(v)) == v
	case Result:
		return int64(v) == int64(o)
	default:
		return false
	}
}

// Equals returns true if other holds the same numeric value.
func (v Uint) Equals(other Value) bool {
	switch o := other.(type) {
	case Uint:
		return v == o
	case Int:
		return o >= 0 && uint64(o) == uint64(v)
	case Float:
		return float64(v) == float64(o) && Uint(float64(v)) == v
	case Result:
		return o >= 0 && uint64(o) == uint64(v)
	default:
		return false
	}
}

// Equals returns true if other holds the same numeric value.
func (v Float) Equals(other Value) bool {
	switch o := other.(type) {
	case Float:
		return v == o
	case Int:
		return o.Equals(v)
	case Uint:
		return o.Equals(v)
	default:
		return false
	}
}

// Equals returns true if other is an equal string.
func (v Str) Equals(other Value) bool {
	o, ok := other.(Str)
	return ok && v == o
}

// Equals returns true if other is an equal bool.
func (v Bool) Equals(other Value) bool {
	o, ok := other.(Bool)
	return ok && v == o
}

// Equals returns true if other holds the same result code.
// Integer values compare by value, so a Result can be checked against a
// plain integer expectation.
func (v Result) Equals(other Value) bool {
	switch o := other.(type) {
	case Result:
		return v == o
	case Int:
		return int64(v) == int64(o)
	case Uint:
		return v >= 0 && uint64(v) == uint64(o)
	default:
		return false
	}
}

// ValueOf boxes a native Go value as a Value. Handles, integers, floats,
// strings and bools are supported; anything else returns
// ErrUnsupportedValue.
func ValueOf(v interface{}) (Value, error) {
	switch v := v.(type) {
	case Value:
		return v, nil
	case int:
		return Int(v), nil
	case int8:
		return Int(v), nil
	case int16:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint:
		return Uint(v), nil
	case uint8:
		return Uint(v), nil
	case uint16:
		return Uint(v), nil
	case uint32:
		return Uint(v), nil
	case uint64:
		return Uint(v), nil
	case float32:
		return Float(v), nil
	case float64:
		return Float(v), nil
	case string:
		return Str(v), nil
	case bool:
		return Bool(v), nil
	default:
		return nil, ErrUnsupportedValue
	}
}

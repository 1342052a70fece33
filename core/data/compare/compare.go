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

// Package compare provides deep value equality and difference reporting.
package compare

import (
	"fmt"
	"reflect"
)

// Path describes the location and values of a single difference found while
// comparing two objects.
type Path struct {
	// Where is the dotted path from the roots to the differing values.
	Where string
	// Reference is the value found at the path in the reference object.
	Reference interface{}
	// Value is the value found at the path in the compared object.
	Value interface{}
}

func (p Path) String() string {
	return fmt.Sprintf("%s: %v != %v", p.Where, p.Reference, p.Value)
}

// DeepEqual compares reference to value and returns true if they are
// identical under deep comparison.
func DeepEqual(reference, value interface{}) bool {
	return len(Diff(reference, value, 1)) == 0
}

// Diff returns the differences between reference and value, stopping after
// limit differences have been found.
func Diff(reference, value interface{}, limit int) []Path {
	c := &comparator{limit: limit, seen: map[seenKey]struct{}{}}
	c.compare("", reference, value)
	return c.diffs
}

type seenKey struct {
	typ          reflect.Type
	addr1, addr2 uintptr
}

type comparator struct {
	diffs []Path
	limit int
	seen  map[seenKey]struct{}
}

func (c *comparator) done() bool { return len(c.diffs) >= c.limit }

func (c *comparator) add(where string, reference, value interface{}) {
	if !c.done() {
		c.diffs = append(c.diffs, Path{Where: where, Reference: reference, Value: value})
	}
}

func (c *comparator) compare(where string, reference, value interface{}) {
	switch {
	case c.done():
		return
	case reference == nil && value == nil:
		return
	case reference == nil || value == nil:
		c.add(where, reference, value)
		return
	}
	c.compareValues(where, reflect.ValueOf(reference), reflect.ValueOf(value))
}

func (c *comparator) compareValues(where string, v1, v2 reflect.Value) {
	if c.done() {
		return
	}
	if v1.Type() != v2.Type() {
		c.add(where+".(type)", v1.Type(), v2.Type())
		return
	}

	switch v1.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Ptr, reflect.Interface, reflect.Slice:
		switch {
		case v1.IsNil() && v2.IsNil():
			return
		case v1.IsNil() || v2.IsNil():
			c.add(where, valueOf(v1), valueOf(v2))
			return
		}
	}

	// Guard against cycles through addressable composites.
	switch v1.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		key := seenKey{v1.Type(), v1.Pointer(), v2.Pointer()}
		if key.addr1 > key.addr2 {
			key.addr1, key.addr2 = key.addr2, key.addr1
		}
		if _, seen := c.seen[key]; seen {
			return
		}
		c.seen[key] = struct{}{}
	}

	switch v1.Kind() {
	case reflect.Ptr, reflect.Interface:
		c.compareValues(where, v1.Elem(), v2.Elem())
	case reflect.Struct:
		for i := 0; i < v1.NumField(); i++ {
			if v1.Type().Field(i).PkgPath != "" {
				// Unexported fields fall back to reflect.DeepEqual.
				if !reflect.DeepEqual(valueOf(v1), valueOf(v2)) {
					c.add(where, valueOf(v1), valueOf(v2))
				}
				return
			}
			c.compareValues(where+"."+v1.Type().Field(i).Name, v1.Field(i), v2.Field(i))
		}
	case reflect.Slice, reflect.Array:
		if v1.Len() != v2.Len() {
			c.add(where+".(len)", v1.Len(), v2.Len())
			return
		}
		for i := 0; i < v1.Len(); i++ {
			c.compareValues(fmt.Sprintf("%s[%d]", where, i), v1.Index(i), v2.Index(i))
		}
	case reflect.Map:
		if v1.Len() != v2.Len() {
			c.add(where+".(len)", v1.Len(), v2.Len())
			return
		}
		for _, k := range v1.MapKeys() {
			e1, e2 := v1.MapIndex(k), v2.MapIndex(k)
			entry := fmt.Sprintf("%s[%v]", where, k)
			if !e2.IsValid() {
				c.add(entry, e1.Interface(), nil)
				continue
			}
			c.compareValues(entry, e1, e2)
		}
	case reflect.Func, reflect.Chan:
		if v1.Pointer() != v2.Pointer() {
			c.add(where, valueOf(v1), valueOf(v2))
		}
	default:
		if valueOf(v1) != valueOf(v2) {
			c.add(where, valueOf(v1), valueOf(v2))
		}
	}
}

func valueOf(v reflect.Value) interface{} {
	if !v.IsValid() {
		return nil
	}
	if !v.CanInterface() {
		return fmt.Sprint(v)
	}
	return v.Interface()
}

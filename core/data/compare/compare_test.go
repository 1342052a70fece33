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

package compare_test

import (
	"testing"

	"github.com/nipunG314/vulkan-test-applications/core/assert"
	"github.com/nipunG314/vulkan-test-applications/core/data/compare"
)

type leaf struct {
	Name  string
	Value uint64
}

type node struct {
	Leaves []leaf
	Lookup map[string]int
	Next   *node
}

func TestDeepEqual(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		name  string
		a, b  interface{}
		equal bool
	}{
		{"nils", nil, nil, true},
		{"nil vs value", nil, 1, false},
		{"ints", 42, 42, true},
		{"int mismatch", 42, 43, false},
		{"type mismatch", int32(42), int64(42), false},
		{"strings", "pool", "pool", true},
		{"structs", leaf{"flags", 0}, leaf{"flags", 0}, true},
		{"struct mismatch", leaf{"flags", 0}, leaf{"flags", 1}, false},
		{"slices", []int{1, 2}, []int{1, 2}, true},
		{"slice length", []int{1, 2}, []int{1}, false},
		{"maps", map[string]int{"a": 1}, map[string]int{"a": 1}, true},
		{"map value", map[string]int{"a": 1}, map[string]int{"a": 2}, false},
		{"nested",
			node{Leaves: []leaf{{"a", 1}}, Lookup: map[string]int{"a": 0}},
			node{Leaves: []leaf{{"a", 1}}, Lookup: map[string]int{"a": 0}},
			true},
	} {
		got := compare.DeepEqual(test.a, test.b)
		assert.For(test.name).That(got).Equals(test.equal)
	}
}

func TestDiffPath(t *testing.T) {
	assert := assert.To(t)
	a := node{Leaves: []leaf{{"device", 1}, {"flags", 0}}}
	b := node{Leaves: []leaf{{"device", 1}, {"flags", 2}}}
	diffs := compare.Diff(a, b, 10)
	if !assert.For("diff count").ThatInteger(len(diffs)).Equals(1) {
		return
	}
	assert.For("diff path").ThatString(diffs[0].Where).Equals(".Leaves[1].Value")
}

func TestDiffLimit(t *testing.T) {
	assert := assert.To(t)
	a := []int{1, 2, 3, 4}
	b := []int{5, 6, 7, 8}
	assert.For("diff limit").ThatInteger(len(compare.Diff(a, b, 2))).Equals(2)
}

func TestDiffCycle(t *testing.T) {
	assert := assert.To(t)
	a := &node{}
	a.Next = a
	b := &node{}
	b.Next = b
	assert.For("cyclic values").ThatBoolean(compare.DeepEqual(a, b)).IsTrue()
}

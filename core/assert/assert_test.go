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

package assert_test

import (
	"fmt"
	"os"

	"github.com/nipunG314/vulkan-test-applications/core/assert"
)

// An example that shows the simplest of value equality tests with a message.
func Example_assertMessage() {
	assert := assert.To(nil)
	assert.For("A message").That(false).Equals(true)
	fmt.Fprintf(os.Stdout, "Test complete")
	// Output:
	// Error:A message
	//     Got       false
	//     Expect == true
	// Test complete
}

// An example that shows a critical error.
func Example_assertCritical() {
	defer func() { recover() }() // Consume the critical level panic
	assert := assert.To(nil)
	assert.For("A message").Critical().That(false).Equals(true)
	fmt.Fprintf(os.Stdout, "Test complete")
	// Output:
	// Critical:A message
	//     Got       false
	//     Expect == true
}

// An example of testing untyped nil values.
func Example_nil() {
	assert := assert.To(nil)
	assert.For("nil equals nil").That(nil).Equals(nil)
	assert.For("nil does not equal nil").That(nil).NotEquals(nil)
	assert.For("nil is nil").That(nil).IsNil()
	assert.For("nil is not nil").That(nil).IsNotNil()
	// Output:
	// Error:nil does not equal nil
	//     Got       <nil>
	//     Expect != <nil>
	// Error:nil is not nil
	//     Got       <nil>
	//     Expect != `nil`
}

// An example of testing typed nil values.
func Example_typedNil() {
	var typedNil *int
	assert := assert.To(nil)
	assert.For("typed nil is nil").That(typedNil).IsNil()
	assert.For("typed nil is not nil").That(typedNil).IsNotNil()
	// Output:
	// Error:typed nil is not nil
	//     Got       <nil>
	//     Expect != `nil`
}

// An example of string assertions.
func Example_strings() {
	assert := assert.To(nil)
	assert.For("equal strings").ThatString("vkTrimCommandPool").Equals("vkTrimCommandPool")
	assert.For("contains").ThatString("vkTrimCommandPool").Contains("Trim")
	assert.For("prefix").ThatString("vkTrimCommandPool").HasPrefix("gl")
	// Output:
	// Error:prefix
	//     Got                `vkTrimCommandPool`
	//     Expect starts with `gl`
}

// An example of integer range assertions.
func Example_integers() {
	assert := assert.To(nil)
	assert.For("in range").ThatInteger(3).IsBetween(1, 5)
	assert.For("out of range").ThatInteger(8).IsAtMost(5)
	// Output:
	// Error:out of range
	//     Got       8
	//     Expect <= 5
}

// An example of boolean assertions.
func Example_booleans() {
	assert := assert.To(nil)
	assert.For("is true").ThatBoolean(true).IsTrue()
	assert.For("is false").ThatBoolean(true).IsFalse()
	// Output:
	// Error:is false
	//     Got       true
	//     Expect == false
}

// An example of error assertions.
func Example_errors() {
	err := fmt.Errorf("the pool was not trimmed")
	assert := assert.To(nil)
	assert.For("failed").ThatError(err).Failed()
	assert.For("succeeded").ThatError(err).Succeeded()
	// Output:
	// Error:succeeded
	//     Got     `the pool was not trimmed`
	//     Expect  success
}

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

package stream

import (
	"context"
	"fmt"
	"io"

	"github.com/nipunG314/vulkan-test-applications/gapit/api"
	"github.com/pkg/errors"
)

// NotFoundError is returned when the remaining call sequence holds no call
// with the requested name.
type NotFoundError struct {
	// Name is the call name that was searched for.
	Name string
	// After is the index of the last consumed call, or api.NoID if the
	// search started at the beginning of the sequence.
	After api.CallID
}

func (e *NotFoundError) Error() string {
	if e.After == api.NoID {
		return fmt.Sprintf("no call of %s in the sequence", e.Name)
	}
	return fmt.Sprintf("no call of %s after index %v", e.Name, e.After)
}

// Cursor is a forward-only position into a call sequence.
//
// A cursor is owned by a single test and must not be shared between
// goroutines. Once a call has been consumed the cursor never returns it
// again; searches resume strictly after the last consumed call.
type Cursor struct {
	source   Source
	consumed api.CallID
	started  bool
}

// NewCursor returns a cursor at the start of the given source.
func NewCursor(source Source) *Cursor {
	return &Cursor{source: source, consumed: api.NoID}
}

// Position returns the index of the last consumed call, or api.NoID if
// nothing has been consumed yet.
func (c *Cursor) Position() api.CallID { return c.consumed }

// Next consumes and returns the next call in the sequence regardless of its
// name. It returns io.EOF when the sequence is exhausted.
func (c *Cursor) Next(ctx context.Context) (*api.Call, error) {
	call, err := c.source.Next(ctx)
	if err != nil {
		return nil, err
	}
	c.consumed = call.Index()
	c.started = true
	return call, nil
}

// NextOf consumes calls until it finds the first one named name, strictly
// after the cursor position, and returns it. If the sequence is exhausted
// without a match a *NotFoundError is returned. The scan is linear and
// never backtracks.
func (c *Cursor) NextOf(ctx context.Context, name string) (*api.Call, error) {
	after := api.NoID
	if c.started {
		after = c.consumed
	}
	for {
		call, err := c.source.Next(ctx)
		if errors.Cause(err) == io.EOF {
			return nil, &NotFoundError{Name: name, After: after}
		}
		if err != nil {
			return nil, err
		}
		c.consumed = call.Index()
		c.started = true
		if call.Name() == name {
			return call, nil
		}
	}
}

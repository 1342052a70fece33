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

// Package stream provides lazily-produced sequences of recorded calls and
// the forward-only cursor used to search them.
package stream

import (
	"context"
	"io"

	"github.com/nipunG314/vulkan-test-applications/gapit/api"
)

// Source is a lazily-produced sequence of recorded calls.
// Next returns the calls in capture order, and io.EOF once the sequence is
// exhausted.
type Source interface {
	Next(ctx context.Context) (*api.Call, error)
}

// List is an in-memory Source over a slice of calls.
type List struct {
	calls []*api.Call
	next  int
}

// NewList returns a List source over the given calls.
func NewList(calls ...*api.Call) *List {
	return &List{calls: calls}
}

// Add appends calls to the end of the list.
func (l *List) Add(calls ...*api.Call) {
	l.calls = append(l.calls, calls...)
}

// Len returns the total number of calls in the list.
func (l *List) Len() int { return len(l.calls) }

// Next returns the next call in the list, or io.EOF when exhausted.
func (l *List) Next(ctx context.Context) (*api.Call, error) {
	if l.next >= len(l.calls) {
		return nil, io.EOF
	}
	c := l.calls[l.next]
	l.next++
	return c, nil
}

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

package log

import "context"

type handlerKeyTy struct{}
type filterKeyTy struct{}
type tagKeyTy struct{}
type valuesKeyTy struct{}

var (
	handlerKey handlerKeyTy
	filterKey  filterKeyTy
	tagKey     tagKeyTy
	valuesKey  valuesKeyTy
)

// Filter is the interface implemented by types that filter log messages by
// severity.
type Filter interface {
	ShowSeverity(Severity) bool
}

// SeverityFilter implements Filter, showing only messages at or above the
// given severity.
type SeverityFilter Severity

// ShowSeverity returns true if s is at or above the filter's severity.
func (f SeverityFilter) ShowSeverity(s Severity) bool { return s >= Severity(f) }

// PutHandler returns a new context with the given Handler assigned to it.
func PutHandler(ctx context.Context, h Handler) context.Context {
	return context.WithValue(ctx, handlerKey, h)
}

// GetHandler returns the Handler assigned to the context, or nil.
func GetHandler(ctx context.Context) Handler {
	h, _ := ctx.Value(handlerKey).(Handler)
	return h
}

// PutFilter returns a new context with the given Filter assigned to it.
func PutFilter(ctx context.Context, f Filter) context.Context {
	return context.WithValue(ctx, filterKey, f)
}

// GetFilter returns the Filter assigned to the context, or nil.
func GetFilter(ctx context.Context) Filter {
	f, _ := ctx.Value(filterKey).(Filter)
	return f
}

// PutTag returns a new context with the given tag assigned to it.
func PutTag(ctx context.Context, tag string) context.Context {
	return context.WithValue(ctx, tagKey, tag)
}

// GetTag returns the tag assigned to the context, or an empty string.
func GetTag(ctx context.Context) string {
	t, _ := ctx.Value(tagKey).(string)
	return t
}

// values is a linked list of bound key-value maps, cheap to extend.
type values struct {
	parent *values
	v      V
}

func getValues(ctx context.Context) *values {
	v, _ := ctx.Value(valuesKey).(*values)
	return v
}

// V is a map of value names to values, for binding extra data to a logging
// context. Example:
//
//	ctx = log.V{"trace": trace}.Bind(ctx)
type V map[string]interface{}

// Bind returns a new context with the values in v bound to it.
func (v V) Bind(ctx context.Context) context.Context {
	return context.WithValue(ctx, valuesKey, &values{getValues(ctx), v})
}

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

// Package service exposes captured traces to validation tests.
//
// The Harness service is the boundary to the trace capture side: tests only
// ever consume trace metadata and call streams through it, either from a
// remote harness over gRPC or from an in-process Local harness.
package service

import (
	"context"
	"fmt"
	"math"

	"github.com/nipunG314/vulkan-test-applications/gapit/api"
	"github.com/nipunG314/vulkan-test-applications/gapit/stream"
)

// TraceInfo is the metadata recorded for one captured trace.
type TraceInfo struct {
	// ID is the trace identifier tests register against.
	ID string
	// Name is the human readable trace name.
	Name string
	// CallCount is the number of recorded calls.
	CallCount uint32
	// Architecture describes the capture device.
	Architecture Architecture
	// Fixture holds the handles bound during trace setup, keyed by name.
	Fixture map[string]api.Handle
}

// Service is the interface used to consume traces from a harness.
type Service interface {
	// Ping verifies the connection to the harness.
	Ping(ctx context.Context) error
	// ListTraces returns the metadata of all captured traces.
	ListTraces(ctx context.Context) ([]*TraceInfo, error)
	// GetTrace returns the metadata of the identified trace.
	GetTrace(ctx context.Context, id string) (*TraceInfo, error)
	// GetCalls opens the call stream of the identified trace.
	GetCalls(ctx context.Context, id string) (stream.Source, error)
}

// Closer is implemented by Service values that hold a connection.
type Closer interface {
	Close() error
}

func traceInfo(t *Trace, arch *Architecture, fixture []*FixtureValue) *TraceInfo {
	info := &TraceInfo{
		ID:        t.GetId(),
		Name:      t.GetName(),
		CallCount: t.GetCallCount(),
		Fixture:   map[string]api.Handle{},
	}
	if arch != nil {
		info.Architecture = *arch
	}
	for _, f := range fixture {
		info.Fixture[f.GetName()] = api.Handle(f.GetHandle())
	}
	return info
}

// decodeCall converts a wire call into its model form, validating argument
// kinds.
func decodeCall(c *Call) (*api.Call, error) {
	if c == nil {
		return nil, fmt.Errorf("empty call message")
	}
	args := make([]api.Argument, 0, len(c.GetArguments()))
	for _, a := range c.GetArguments() {
		v, err := decodeValue(a)
		if err != nil {
			return nil, fmt.Errorf("call %s at %d: %v", c.GetName(), c.GetIndex(), err)
		}
		args = append(args, api.Arg(a.GetName(), v))
	}
	return api.NewCall(api.CallID(c.GetIndex()), c.GetName(), args...), nil
}

func decodeValue(a *Argument) (api.Value, error) {
	switch a.GetKind() {
	case Argument_HANDLE:
		return api.Handle(a.GetBits()), nil
	case Argument_INT:
		return api.Int(int64(a.GetBits())), nil
	case Argument_UINT:
		return api.Uint(a.GetBits()), nil
	case Argument_FLOAT:
		return api.Float(math.Float64frombits(a.GetBits())), nil
	case Argument_STRING:
		return api.Str(a.GetStr()), nil
	case Argument_BOOL:
		return api.Bool(a.GetBits() != 0), nil
	case Argument_RESULT:
		return api.Result(int32(a.GetBits())), nil
	default:
		return nil, fmt.Errorf("argument '%s' has unknown kind %v", a.GetName(), a.GetKind())
	}
}

// encodeCall converts a model call to its wire form.
func encodeCall(c *api.Call) *Call {
	out := &Call{Name: c.Name(), Index: uint64(c.Index())}
	for _, a := range c.Args() {
		out.Arguments = append(out.Arguments, encodeValue(a.Name, a.Value))
	}
	return out
}

func encodeValue(name string, v api.Value) *Argument {
	a := &Argument{Name: name}
	switch v := v.(type) {
	case api.Handle:
		a.Kind, a.Bits = Argument_HANDLE, uint64(v)
	case api.Int:
		a.Kind, a.Bits = Argument_INT, uint64(int64(v))
	case api.Uint:
		a.Kind, a.Bits = Argument_UINT, uint64(v)
	case api.Float:
		a.Kind, a.Bits = Argument_FLOAT, math.Float64bits(float64(v))
	case api.Str:
		a.Kind, a.Str = Argument_STRING, string(v)
	case api.Bool:
		a.Kind = Argument_BOOL
		if v {
			a.Bits = 1
		}
	case api.Result:
		a.Kind, a.Bits = Argument_RESULT, uint64(uint32(int32(v)))
	}
	return a
}

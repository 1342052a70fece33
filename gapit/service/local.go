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

package service

import (
	"context"
	"net"
	"sync"

	"github.com/nipunG314/vulkan-test-applications/core/fault"
	"github.com/nipunG314/vulkan-test-applications/core/log"
	"github.com/nipunG314/vulkan-test-applications/gapit/api"
	"github.com/nipunG314/vulkan-test-applications/gapit/stream"
	"google.golang.org/grpc"
)

// ErrTraceNotFound is returned when a requested trace is not registered.
const ErrTraceNotFound = fault.Const("Trace not found")

// Local is an in-process harness holding registered traces.
// It implements Service for direct use, and HarnessServer so it can also be
// hosted behind Serve.
type Local struct {
	mutex  sync.RWMutex
	order  []string
	traces map[string]*localTrace
}

type localTrace struct {
	info  *TraceInfo
	calls []*api.Call
}

// NewLocal returns an empty in-process harness.
func NewLocal() *Local {
	return &Local{traces: map[string]*localTrace{}}
}

// RegisterTrace adds a trace with its recorded calls to the harness.
// Call indices are assigned in capture order.
func (l *Local) RegisterTrace(info *TraceInfo, calls ...*api.Call) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	info.CallCount = uint32(len(calls))
	if _, exists := l.traces[info.ID]; !exists {
		l.order = append(l.order, info.ID)
	}
	l.traces[info.ID] = &localTrace{info: info, calls: calls}
}

func (l *Local) get(id string) (*localTrace, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	t, ok := l.traces[id]
	if !ok {
		return nil, ErrTraceNotFound
	}
	return t, nil
}

// Ping implements Service.
func (l *Local) Ping(ctx context.Context) error { return nil }

// ListTraces implements Service.
func (l *Local) ListTraces(ctx context.Context) ([]*TraceInfo, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	out := make([]*TraceInfo, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.traces[id].info)
	}
	return out, nil
}

// GetTrace implements Service.
func (l *Local) GetTrace(ctx context.Context, id string) (*TraceInfo, error) {
	t, err := l.get(id)
	if err != nil {
		return nil, err
	}
	return t.info, nil
}

// GetCalls implements Service.
func (l *Local) GetCalls(ctx context.Context, id string) (stream.Source, error) {
	t, err := l.get(id)
	if err != nil {
		return nil, err
	}
	return stream.NewList(t.calls...), nil
}

// Server adapts the Local harness to the wire protocol.
type Server struct {
	local *Local
}

// NewServer returns a HarnessServer serving the given local harness.
func NewServer(local *Local) *Server {
	return &Server{local: local}
}

// Ping implements HarnessServer.
func (s *Server) Ping(ctx context.Context, req *PingRequest) (*PingResponse, error) {
	return &PingResponse{}, nil
}

// ListTraces implements HarnessServer.
func (s *Server) ListTraces(ctx context.Context, req *ListTracesRequest) (*ListTracesResponse, error) {
	infos, err := s.local.ListTraces(ctx)
	if err != nil {
		return nil, err
	}
	res := &ListTracesResponse{}
	for _, info := range infos {
		res.Traces = append(res.Traces, encodeTrace(info))
	}
	return res, nil
}

// GetTrace implements HarnessServer.
func (s *Server) GetTrace(ctx context.Context, req *GetTraceRequest) (*GetTraceResponse, error) {
	info, err := s.local.GetTrace(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	arch := info.Architecture
	res := &GetTraceResponse{
		Trace:        encodeTrace(info),
		Architecture: &arch,
	}
	for name, handle := range info.Fixture {
		res.Fixture = append(res.Fixture, &FixtureValue{Name: name, Handle: uint64(handle)})
	}
	return res, nil
}

// GetCalls implements HarnessServer.
func (s *Server) GetCalls(req *GetCallsRequest, out Harness_GetCallsServer) error {
	t, err := s.local.get(req.GetId())
	if err != nil {
		return err
	}
	for _, call := range t.calls {
		if err := out.Send(&GetCallsResponse{Call: encodeCall(call)}); err != nil {
			return err
		}
	}
	return nil
}

func encodeTrace(info *TraceInfo) *Trace {
	return &Trace{Id: info.ID, Name: info.Name, CallCount: info.CallCount}
}

// Serve hosts the local harness on the given listener until the context is
// cancelled or the server fails.
func Serve(ctx context.Context, listener net.Listener, local *Local) error {
	server := grpc.NewServer()
	RegisterHarnessServer(server, NewServer(local))
	go func() {
		<-ctx.Done()
		server.GracefulStop()
	}()
	log.I(ctx, "Harness listening on %v", listener.Addr())
	return server.Serve(listener)
}

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

// Hand-maintained message and stub definitions for service.proto.
// Keep in sync with the .proto file.

package service

import (
	"context"
	"fmt"

	"github.com/golang/protobuf/proto"
	"google.golang.org/grpc"
)

// Argument_Kind is the wire encoding kind of an argument value.
type Argument_Kind int32

const (
	Argument_HANDLE Argument_Kind = 0
	Argument_INT    Argument_Kind = 1
	Argument_UINT   Argument_Kind = 2
	Argument_FLOAT  Argument_Kind = 3
	Argument_STRING Argument_Kind = 4
	Argument_BOOL   Argument_Kind = 5
	Argument_RESULT Argument_Kind = 6
)

var argumentKindName = map[Argument_Kind]string{
	Argument_HANDLE: "HANDLE",
	Argument_INT:    "INT",
	Argument_UINT:   "UINT",
	Argument_FLOAT:  "FLOAT",
	Argument_STRING: "STRING",
	Argument_BOOL:   "BOOL",
	Argument_RESULT: "RESULT",
}

func (k Argument_Kind) String() string {
	if name, ok := argumentKindName[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

type PingRequest struct{}

func (m *PingRequest) Reset()         { *m = PingRequest{} }
func (m *PingRequest) String() string { return proto.CompactTextString(m) }
func (*PingRequest) ProtoMessage()    {}

type PingResponse struct{}

func (m *PingResponse) Reset()         { *m = PingResponse{} }
func (m *PingResponse) String() string { return proto.CompactTextString(m) }
func (*PingResponse) ProtoMessage()    {}

// Trace identifies one captured call stream.
type Trace struct {
	Id        string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name      string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	CallCount uint32 `protobuf:"varint,3,opt,name=call_count,json=callCount,proto3" json:"call_count,omitempty"`
}

func (m *Trace) Reset()         { *m = Trace{} }
func (m *Trace) String() string { return proto.CompactTextString(m) }
func (*Trace) ProtoMessage()    {}

func (m *Trace) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *Trace) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Trace) GetCallCount() uint32 {
	if m != nil {
		return m.CallCount
	}
	return 0
}

// Architecture describes the device the trace was captured on.
type Architecture struct {
	PointerSize  uint32 `protobuf:"varint,1,opt,name=pointer_size,json=pointerSize,proto3" json:"pointer_size,omitempty"`
	IntSize      uint32 `protobuf:"varint,2,opt,name=int_size,json=intSize,proto3" json:"int_size,omitempty"`
	LittleEndian bool   `protobuf:"varint,3,opt,name=little_endian,json=littleEndian,proto3" json:"little_endian,omitempty"`
}

func (m *Architecture) Reset()         { *m = Architecture{} }
func (m *Architecture) String() string { return proto.CompactTextString(m) }
func (*Architecture) ProtoMessage()    {}

func (m *Architecture) GetPointerSize() uint32 {
	if m != nil {
		return m.PointerSize
	}
	return 0
}

func (m *Architecture) GetIntSize() uint32 {
	if m != nil {
		return m.IntSize
	}
	return 0
}

func (m *Architecture) GetLittleEndian() bool {
	if m != nil {
		return m.LittleEndian
	}
	return false
}

// FixtureValue is one named handle bound during the trace setup phase.
type FixtureValue struct {
	Name   string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Handle uint64 `protobuf:"varint,2,opt,name=handle,proto3" json:"handle,omitempty"`
}

func (m *FixtureValue) Reset()         { *m = FixtureValue{} }
func (m *FixtureValue) String() string { return proto.CompactTextString(m) }
func (*FixtureValue) ProtoMessage()    {}

func (m *FixtureValue) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *FixtureValue) GetHandle() uint64 {
	if m != nil {
		return m.Handle
	}
	return 0
}

// Argument is one recorded call argument.
type Argument struct {
	Name string        `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Kind Argument_Kind `protobuf:"varint,2,opt,name=kind,proto3,enum=gapit.Argument_Kind" json:"kind,omitempty"`
	Bits uint64        `protobuf:"varint,3,opt,name=bits,proto3" json:"bits,omitempty"`
	Str  string        `protobuf:"bytes,4,opt,name=str,proto3" json:"str,omitempty"`
}

func (m *Argument) Reset()         { *m = Argument{} }
func (m *Argument) String() string { return proto.CompactTextString(m) }
func (*Argument) ProtoMessage()    {}

func (m *Argument) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Argument) GetKind() Argument_Kind {
	if m != nil {
		return m.Kind
	}
	return Argument_HANDLE
}

func (m *Argument) GetBits() uint64 {
	if m != nil {
		return m.Bits
	}
	return 0
}

func (m *Argument) GetStr() string {
	if m != nil {
		return m.Str
	}
	return ""
}

// Call is one recorded API invocation.
type Call struct {
	Name      string      `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Index     uint64      `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
	Arguments []*Argument `protobuf:"bytes,3,rep,name=arguments,proto3" json:"arguments,omitempty"`
}

func (m *Call) Reset()         { *m = Call{} }
func (m *Call) String() string { return proto.CompactTextString(m) }
func (*Call) ProtoMessage()    {}

func (m *Call) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Call) GetIndex() uint64 {
	if m != nil {
		return m.Index
	}
	return 0
}

func (m *Call) GetArguments() []*Argument {
	if m != nil {
		return m.Arguments
	}
	return nil
}

type ListTracesRequest struct{}

func (m *ListTracesRequest) Reset()         { *m = ListTracesRequest{} }
func (m *ListTracesRequest) String() string { return proto.CompactTextString(m) }
func (*ListTracesRequest) ProtoMessage()    {}

type ListTracesResponse struct {
	Traces []*Trace `protobuf:"bytes,1,rep,name=traces,proto3" json:"traces,omitempty"`
}

func (m *ListTracesResponse) Reset()         { *m = ListTracesResponse{} }
func (m *ListTracesResponse) String() string { return proto.CompactTextString(m) }
func (*ListTracesResponse) ProtoMessage()    {}

func (m *ListTracesResponse) GetTraces() []*Trace {
	if m != nil {
		return m.Traces
	}
	return nil
}

type GetTraceRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetTraceRequest) Reset()         { *m = GetTraceRequest{} }
func (m *GetTraceRequest) String() string { return proto.CompactTextString(m) }
func (*GetTraceRequest) ProtoMessage()    {}

func (m *GetTraceRequest) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

type GetTraceResponse struct {
	Trace        *Trace          `protobuf:"bytes,1,opt,name=trace,proto3" json:"trace,omitempty"`
	Architecture *Architecture   `protobuf:"bytes,2,opt,name=architecture,proto3" json:"architecture,omitempty"`
	Fixture      []*FixtureValue `protobuf:"bytes,3,rep,name=fixture,proto3" json:"fixture,omitempty"`
}

func (m *GetTraceResponse) Reset()         { *m = GetTraceResponse{} }
func (m *GetTraceResponse) String() string { return proto.CompactTextString(m) }
func (*GetTraceResponse) ProtoMessage()    {}

func (m *GetTraceResponse) GetTrace() *Trace {
	if m != nil {
		return m.Trace
	}
	return nil
}

func (m *GetTraceResponse) GetArchitecture() *Architecture {
	if m != nil {
		return m.Architecture
	}
	return nil
}

func (m *GetTraceResponse) GetFixture() []*FixtureValue {
	if m != nil {
		return m.Fixture
	}
	return nil
}

type GetCallsRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetCallsRequest) Reset()         { *m = GetCallsRequest{} }
func (m *GetCallsRequest) String() string { return proto.CompactTextString(m) }
func (*GetCallsRequest) ProtoMessage()    {}

func (m *GetCallsRequest) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

type GetCallsResponse struct {
	Call *Call `protobuf:"bytes,1,opt,name=call,proto3" json:"call,omitempty"`
}

func (m *GetCallsResponse) Reset()         { *m = GetCallsResponse{} }
func (m *GetCallsResponse) String() string { return proto.CompactTextString(m) }
func (*GetCallsResponse) ProtoMessage()    {}

func (m *GetCallsResponse) GetCall() *Call {
	if m != nil {
		return m.Call
	}
	return nil
}

// HarnessClient is the client API for the Harness service.
type HarnessClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	ListTraces(ctx context.Context, in *ListTracesRequest, opts ...grpc.CallOption) (*ListTracesResponse, error)
	GetTrace(ctx context.Context, in *GetTraceRequest, opts ...grpc.CallOption) (*GetTraceResponse, error)
	GetCalls(ctx context.Context, in *GetCallsRequest, opts ...grpc.CallOption) (Harness_GetCallsClient, error)
}

type harnessClient struct {
	cc *grpc.ClientConn
}

// NewHarnessClient creates a HarnessClient over the given connection.
func NewHarnessClient(cc *grpc.ClientConn) HarnessClient {
	return &harnessClient{cc}
}

func (c *harnessClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(PingResponse)
	if err := c.cc.Invoke(ctx, "/gapit.Harness/Ping", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *harnessClient) ListTraces(ctx context.Context, in *ListTracesRequest, opts ...grpc.CallOption) (*ListTracesResponse, error) {
	out := new(ListTracesResponse)
	if err := c.cc.Invoke(ctx, "/gapit.Harness/ListTraces", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *harnessClient) GetTrace(ctx context.Context, in *GetTraceRequest, opts ...grpc.CallOption) (*GetTraceResponse, error) {
	out := new(GetTraceResponse)
	if err := c.cc.Invoke(ctx, "/gapit.Harness/GetTrace", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *harnessClient) GetCalls(ctx context.Context, in *GetCallsRequest, opts ...grpc.CallOption) (Harness_GetCallsClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Harness_serviceDesc.Streams[0], "/gapit.Harness/GetCalls", opts...)
	if err != nil {
		return nil, err
	}
	x := &harnessGetCallsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// Harness_GetCallsClient is the client side of the GetCalls stream.
type Harness_GetCallsClient interface {
	Recv() (*GetCallsResponse, error)
	grpc.ClientStream
}

type harnessGetCallsClient struct {
	grpc.ClientStream
}

func (x *harnessGetCallsClient) Recv() (*GetCallsResponse, error) {
	m := new(GetCallsResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// HarnessServer is the server API for the Harness service.
type HarnessServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	ListTraces(context.Context, *ListTracesRequest) (*ListTracesResponse, error)
	GetTrace(context.Context, *GetTraceRequest) (*GetTraceResponse, error)
	GetCalls(*GetCallsRequest, Harness_GetCallsServer) error
}

// Harness_GetCallsServer is the server side of the GetCalls stream.
type Harness_GetCallsServer interface {
	Send(*GetCallsResponse) error
	grpc.ServerStream
}

type harnessGetCallsServer struct {
	grpc.ServerStream
}

func (x *harnessGetCallsServer) Send(m *GetCallsResponse) error {
	return x.ServerStream.SendMsg(m)
}

// RegisterHarnessServer registers srv on s.
func RegisterHarnessServer(s *grpc.Server, srv HarnessServer) {
	s.RegisterService(&_Harness_serviceDesc, srv)
}

func _Harness_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HarnessServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/gapit.Harness/Ping",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HarnessServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Harness_ListTraces_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTracesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HarnessServer).ListTraces(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/gapit.Harness/ListTraces",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HarnessServer).ListTraces(ctx, req.(*ListTracesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Harness_GetTrace_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTraceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HarnessServer).GetTrace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/gapit.Harness/GetTrace",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HarnessServer).GetTrace(ctx, req.(*GetTraceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Harness_GetCalls_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(GetCallsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(HarnessServer).GetCalls(m, &harnessGetCallsServer{stream})
}

var _Harness_serviceDesc = grpc.ServiceDesc{
	ServiceName: "gapit.Harness",
	HandlerType: (*HarnessServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Ping",
			Handler:    _Harness_Ping_Handler,
		},
		{
			MethodName: "ListTraces",
			Handler:    _Harness_ListTraces_Handler,
		},
		{
			MethodName: "GetTrace",
			Handler:    _Harness_GetTrace_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "GetCalls",
			Handler:       _Harness_GetCalls_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "gapit/service/service.proto",
}

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
	"io"
	"time"

	"github.com/nipunG314/vulkan-test-applications/core/log"
	"github.com/nipunG314/vulkan-test-applications/gapit/api"
	"github.com/nipunG314/vulkan-test-applications/gapit/stream"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
)

// DefaultDialTimeout bounds a connection attempt when the Config does not.
const DefaultDialTimeout = 15 * time.Second

// Config holds the connection settings for a remote harness.
type Config struct {
	// Address is the host:port of the harness gRPC endpoint.
	Address string
	// Timeout bounds the connection attempt. Zero means DefaultDialTimeout.
	Timeout time.Duration
}

// Connect dials the harness at the configured address and returns a Service
// bound to it. The returned Service implements Closer.
// An unreachable harness fails within the configured timeout.
func Connect(ctx context.Context, cfg Config) (Service, error) {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultDialTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	conn, err := grpc.DialContext(ctx, cfg.Address, grpc.WithInsecure(), grpc.WithBlock())
	if err != nil {
		return nil, log.Errf(ctx, err, "Failed to connect to the harness at %s", cfg.Address)
	}
	return Bind(conn), nil
}

// Bind returns a Service that uses conn for communication.
// Closing the Service closes the connection.
func Bind(conn *grpc.ClientConn) Service {
	return &client{NewHarnessClient(conn), conn.Close}
}

type client struct {
	client HarnessClient
	close  func() error
}

func (c *client) Close() error { return c.close() }

func (c *client) Ping(ctx context.Context) error {
	_, err := c.client.Ping(ctx, &PingRequest{})
	return err
}

func (c *client) ListTraces(ctx context.Context) ([]*TraceInfo, error) {
	res, err := c.client.ListTraces(ctx, &ListTracesRequest{})
	if err != nil {
		return nil, errors.Wrap(err, "listing traces")
	}
	out := make([]*TraceInfo, 0, len(res.GetTraces()))
	for _, t := range res.GetTraces() {
		out = append(out, traceInfo(t, nil, nil))
	}
	return out, nil
}

func (c *client) GetTrace(ctx context.Context, id string) (*TraceInfo, error) {
	res, err := c.client.GetTrace(ctx, &GetTraceRequest{Id: id})
	if err != nil {
		return nil, errors.Wrapf(err, "getting trace %s", id)
	}
	return traceInfo(res.GetTrace(), res.GetArchitecture(), res.GetFixture()), nil
}

func (c *client) GetCalls(ctx context.Context, id string) (stream.Source, error) {
	calls, err := c.client.GetCalls(ctx, &GetCallsRequest{Id: id})
	if err != nil {
		return nil, errors.Wrapf(err, "opening call stream of trace %s", id)
	}
	return &callStream{calls: calls}, nil
}

// callStream adapts the server-side stream of calls into a stream.Source,
// so the cursor pulls calls off the wire lazily.
type callStream struct {
	calls Harness_GetCallsClient
}

func (s *callStream) Next(ctx context.Context) (*api.Call, error) {
	res, err := s.calls.Recv()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, errors.Wrap(err, "receiving call")
	}
	return decodeCall(res.GetCall())
}

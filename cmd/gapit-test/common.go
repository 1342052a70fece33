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

package main

import (
	"context"

	"github.com/nipunG314/vulkan-test-applications/core/log"
	"github.com/nipunG314/vulkan-test-applications/gapit/service"
	"github.com/pkg/errors"
)

// getHarness connects to the harness at address. The returned function
// releases the connection.
func getHarness(ctx context.Context, address string) (service.Service, func(), error) {
	if address == "" {
		return nil, nil, errors.New("no harness address given")
	}
	log.D(ctx, "connecting to harness at %s", address)
	harness, err := service.Connect(ctx, service.Config{Address: address})
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		if closer, ok := harness.(service.Closer); ok {
			closer.Close()
		}
	}
	if err := harness.Ping(ctx); err != nil {
		release()
		return nil, nil, errors.Wrapf(err, "pinging harness at %s", address)
	}
	return harness, release, nil
}

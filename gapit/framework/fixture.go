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

package framework

import (
	"fmt"

	"github.com/nipunG314/vulkan-test-applications/gapit/api"
	"github.com/nipunG314/vulkan-test-applications/gapit/service"
)

// Well known fixture handle names bound by the trace setup phase.
const (
	// DeviceHandle names the device the trace was captured against.
	DeviceHandle = "device"
	// CommandPoolHandle names the command pool created during setup.
	CommandPoolHandle = "command_pool"
)

// Fixture is the explicit per-test context recorded when the trace was set
// up. It replaces any ambient state: everything a test may assert against
// is looked up here.
type Fixture struct {
	trace        string
	architecture service.Architecture
	handles      map[string]api.Handle
}

// NewFixture builds a fixture from the trace metadata.
func NewFixture(info *service.TraceInfo) *Fixture {
	handles := make(map[string]api.Handle, len(info.Fixture))
	for name, handle := range info.Fixture {
		handles[name] = handle
	}
	return &Fixture{
		trace:        info.ID,
		architecture: info.Architecture,
		handles:      handles,
	}
}

// Trace returns the identifier of the trace the fixture belongs to.
func (f *Fixture) Trace() string { return f.trace }

// Architecture returns the description of the capture device.
func (f *Fixture) Architecture() service.Architecture { return f.architecture }

// Handle returns the named handle bound at trace setup.
// An unbound name is an explicit error, never a zero handle.
func (f *Fixture) Handle(name string) (api.Handle, error) {
	h, ok := f.handles[name]
	if !ok {
		return 0, fmt.Errorf("fixture of trace %s has no handle '%s'", f.trace, name)
	}
	return h, nil
}

// Device returns the device handle bound at trace setup.
func (f *Fixture) Device() (api.Handle, error) {
	return f.Handle(DeviceHandle)
}

// CommandPool returns the command pool handle bound at trace setup.
func (f *Fixture) CommandPool() (api.Handle, error) {
	return f.Handle(CommandPoolHandle)
}

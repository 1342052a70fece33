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

// The gapit-test command validates captured traces against registered
// expectations.
package main

import (
	"github.com/nipunG314/vulkan-test-applications/core/app"

	// Register the built in tests.
	_ "github.com/nipunG314/vulkan-test-applications/gapit/tests/commandbuffer"
)

func main() {
	app.ShortHelp = "gapit-test validates captured traces against expected call streams"
	app.ShortUsage = "<verb> [flags]"
	app.Run(app.VerbMain)
}

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
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nipunG314/vulkan-test-applications/core/app"
	"github.com/nipunG314/vulkan-test-applications/gapit/framework"
	"github.com/nipunG314/vulkan-test-applications/gapit/manifest"
)

var listVerb = &app.Verb{
	Name:       "list",
	ShortHelp:  "Lists the registered tests",
	ShortUsage: "[flags]",
}

var listManifest = listVerb.Flags.String("manifest", "", "path of a YAML suite to load")

func init() {
	listVerb.Run = doList
	app.AddVerb(listVerb)
}

func doList(ctx context.Context, args []string) error {
	if *listManifest != "" {
		suite, err := manifest.Load(*listManifest)
		if err != nil {
			return err
		}
		if err := suite.Register(); err != nil {
			return err
		}
	}
	w := tabwriter.NewWriter(os.Stdout, 1, 4, 2, ' ', 0)
	defer w.Flush()
	for _, test := range framework.Tests() {
		fmt.Fprintf(w, "%s\t%s\n", test.Name, test.Trace)
	}
	return nil
}

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
)

var tracesVerb = &app.Verb{
	Name:       "traces",
	ShortHelp:  "Lists the traces held by a harness",
	ShortUsage: "[flags]",
}

var tracesHarness = tracesVerb.Flags.String("harness", "", "address of the trace harness")

func init() {
	tracesVerb.Run = doTraces
	app.AddVerb(tracesVerb)
}

func doTraces(ctx context.Context, args []string) error {
	harness, release, err := getHarness(ctx, *tracesHarness)
	if err != nil {
		return err
	}
	defer release()

	traces, err := harness.ListTraces(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 1, 4, 2, ' ', 0)
	defer w.Flush()
	for _, t := range traces {
		fmt.Fprintf(w, "%s\t%s\t%d calls\n", t.ID, t.Name, t.CallCount)
	}
	return nil
}

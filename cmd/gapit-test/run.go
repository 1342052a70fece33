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
	"regexp"

	"github.com/nipunG314/vulkan-test-applications/core/app"
	"github.com/nipunG314/vulkan-test-applications/core/log"
	"github.com/nipunG314/vulkan-test-applications/gapit/framework"
	"github.com/nipunG314/vulkan-test-applications/gapit/manifest"
	"github.com/pkg/errors"
)

var runVerb = &app.Verb{
	Name:       "run",
	ShortHelp:  "Runs the registered tests against a harness",
	ShortUsage: "[flags]",
}

var (
	runHarness  = runVerb.Flags.String("harness", "", "address of the trace harness")
	runManifest = runVerb.Flags.String("manifest", "", "path of a YAML suite to load")
	runFilter   = runVerb.Flags.String("filter", "", "only run tests matching this regexp")
)

func init() {
	runVerb.Run = doRun
	app.AddVerb(runVerb)
}

func doRun(ctx context.Context, args []string) error {
	address, filter := *runHarness, *runFilter
	if *runManifest != "" {
		suite, err := manifest.Load(*runManifest)
		if err != nil {
			return err
		}
		if err := suite.Register(); err != nil {
			return err
		}
		if address == "" {
			address = suite.Harness
		}
		if filter == "" {
			filter = suite.Filter
		}
	}

	runner := &framework.Runner{Reporter: framework.LogReporter{}}
	if filter != "" {
		re, err := regexp.Compile(filter)
		if err != nil {
			return errors.Wrapf(err, "bad filter '%s'", filter)
		}
		runner.Filter = re
	}

	harness, release, err := getHarness(ctx, address)
	if err != nil {
		return err
	}
	defer release()
	runner.Harness = harness

	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	if len(report.Results) == 0 {
		return errors.New("no tests selected")
	}
	if failed := report.Failed(); failed > 0 {
		return errors.Errorf("%d of %d tests did not pass", failed, len(report.Results))
	}
	log.I(ctx, "%d tests passed", len(report.Results))
	return nil
}

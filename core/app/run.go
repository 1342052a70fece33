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

// Package app provides the scaffolding for command line applications built
// from verbs.
package app

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nipunG314/vulkan-test-applications/core/log"
)

var (
	// Name is the full name of the application.
	Name string
	// ShortHelp should be set to add a help message to the usage text.
	ShortHelp = ""
	// ShortUsage is usage text for the additional non-flag arguments.
	ShortUsage = ""
	// ExitFuncForTesting can be set to change the behaviour on exit.
	// It defaults to os.Exit.
	ExitFuncForTesting = os.Exit

	flagVerbose = flag.Bool("verbose", false, "enable verbose logging")
)

// ExitCode is the type for named return values from the application main
// entry point.
type ExitCode int

const (
	// SuccessExit is the exit code for success.
	SuccessExit ExitCode = iota
	// FatalExit is the exit code for a fatal error.
	FatalExit
	// UsageExit is the exit code for a usage error.
	UsageExit
)

func init() {
	Name = filepath.Base(os.Args[0])
}

// Run performs all the work needed to start up an application.
// It parses the main command line arguments, builds the primary logging
// context, runs the provided main task, and exits with an appropriate code.
func Run(main func(ctx context.Context) error) {
	flag.Usage = func() { Usage(context.Background(), "") }
	flag.Parse()

	handler := log.Std()
	defer handler.Close()
	ctx := log.PutHandler(context.Background(), handler)
	ctx = log.PutTag(ctx, Name)
	if !*flagVerbose {
		ctx = log.PutFilter(ctx, log.SeverityFilter(log.Info))
	}

	if err := main(ctx); err != nil {
		log.E(ctx, "%v", err)
		ExitFuncForTesting(int(FatalExit))
		return
	}
	ExitFuncForTesting(int(SuccessExit))
}

// Usage prints the usage message, preceded by the printf-style message if
// one is given, and exits with a usage failure code.
func Usage(ctx context.Context, message string, args ...interface{}) {
	w := os.Stderr
	if message != "" {
		fmt.Fprintf(w, message, args...)
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Usage: %s %s\n", Name, ShortUsage)
	if ShortHelp != "" {
		fmt.Fprintln(w, ShortHelp)
	}
	if verbs := FilterVerbs(""); len(verbs) > 0 {
		fmt.Fprintln(w, "Verbs:")
		for _, v := range verbs {
			fmt.Fprintf(w, "    %-10s %s\n", v.Name, v.ShortHelp)
		}
	}
	fmt.Fprintln(w, "Flags:")
	flag.PrintDefaults()
	ExitFuncForTesting(int(UsageExit))
}

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

package app

import (
	"context"
	"flag"
	"fmt"
	"strings"
)

// Verb holds information about a runnable command.
type Verb struct {
	// Name of the command.
	Name string
	// ShortHelp explains the purpose of the command.
	ShortHelp string
	// ShortUsage describes how to use the command.
	ShortUsage string
	// Flags is the set of command line flags the verb accepts.
	Flags flag.FlagSet
	// Run is the action for the command.
	Run func(ctx context.Context, args []string) error
}

var globalVerbs []*Verb

// AddVerb adds a new verb to the supported set, it will panic if a duplicate
// name is encountered.
func AddVerb(v *Verb) {
	if len(FilterVerbs(v.Name)) != 0 {
		panic(fmt.Errorf("Duplicate verb name %s", v.Name))
	}
	globalVerbs = append(globalVerbs, v)
}

// FilterVerbs returns the list of verbs whose names start with the specified
// prefix.
func FilterVerbs(prefix string) (result []*Verb) {
	for _, v := range globalVerbs {
		if strings.HasPrefix(v.Name, prefix) {
			result = append(result, v)
		}
	}
	return result
}

// VerbMain is a task that can be handed to Run to invoke the verb handling
// system on the remaining command line arguments.
func VerbMain(ctx context.Context) error {
	args := flag.Args()
	if len(args) < 1 {
		Usage(ctx, "Must supply a verb to %s", Name)
		return nil
	}
	matches := FilterVerbs(args[0])
	switch len(matches) {
	case 1:
		verb := matches[0]
		if err := verb.Flags.Parse(args[1:]); err != nil {
			return err
		}
		return verb.Run(ctx, verb.Flags.Args())
	case 0:
		Usage(ctx, "Verb '%s' is unknown", args[0])
	default:
		Usage(ctx, "Verb '%s' is ambiguous", args[0])
	}
	return nil
}

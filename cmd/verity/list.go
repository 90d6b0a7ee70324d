// Copyright 2024 The LUCI Authors.
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
	"fmt"
	"strings"

	"github.com/maruel/subcommands"

	"github.com/verity-go/verity/common/cli"
	"github.com/verity-go/verity/common/flag"
	"github.com/verity-go/verity/common/logging"
	"github.com/verity-go/verity/common/testing/fixture"
)

func cmdList(reg *fixture.Registry) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "list [-fixture name]...",
		ShortDesc: "lists fixtures and their tests",
		LongDesc: `Lists registered fixtures, their tests and the tests' annotations.

By default all fixtures are listed.`,
		CommandRun: func() subcommands.CommandRun {
			r := &listRun{reg: reg}
			r.Flags.Var(flag.StringSlice(&r.fixtures), "fixture", "Fixture to list. May be repeated or comma-separated.")
			return r
		},
	}
}

type listRun struct {
	subcommands.CommandRunBase

	reg      *fixture.Registry
	fixtures []string
}

func (r *listRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if len(args) != 0 {
		fmt.Fprintf(a.GetErr(), "%s: unexpected arguments %q\n", a.GetName(), args)
		return exitUsage
	}

	fixtures, err := r.reg.Select(r.fixtures)
	if err != nil {
		logging.Errorf(ctx, "%s", err)
		return exitFail
	}

	out := a.GetOut()
	for _, f := range fixtures {
		fmt.Fprintln(out, f.Name)
		for _, t := range f.Tests {
			fmt.Fprintf(out, "  %s%s\n", t.Name, describe(t))
		}
	}
	return exitOK
}

// describe renders the annotations of `t`, e.g.
// " [ignored: ignored test] [panics]".
func describe(t *fixture.Test) string {
	var b strings.Builder
	if err := t.Runnable(); err != nil {
		fmt.Fprintf(&b, " [not runnable: %s]", err)
	}
	if t.Ignored {
		fmt.Fprintf(&b, " [ignored: %s]", t.IgnoreReason)
	}
	if t.ExpectedPanic != nil {
		fmt.Fprintf(&b, " [expects panic: %s]", t.ExpectedPanic)
	}
	for _, c := range t.Categories {
		fmt.Fprintf(&b, " [%s]", c)
	}
	if t.Description != "" {
		fmt.Fprintf(&b, " - %s", t.Description)
	}
	return b.String()
}

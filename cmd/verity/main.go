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

// Command verity lists and runs the registered sample fixtures.
//
//	verity list
//	verity run -fixture SampleFixture -v
//	verity run -config run.yaml -json-out report.json
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/maruel/subcommands"

	"github.com/verity-go/verity/common/cli"
	"github.com/verity-go/verity/common/logging/gologger"
	"github.com/verity-go/verity/common/testing/fixture"

	// Registers SampleFixture and SyntaxFixture.
	_ "github.com/verity-go/verity/examples/samples"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// application creates the application and configures its subcommands.
func application(reg *fixture.Registry, out, errOut io.Writer) *cli.Application {
	logCfg := gologger.LoggerConfig{Out: errOut}
	return &cli.Application{
		Name:  "verity",
		Title: "Lists and runs assertion sample fixtures.",
		Context: func(ctx context.Context) context.Context {
			return logCfg.Use(ctx)
		},
		Commands: []*subcommands.Command{
			cmdList(reg),
			cmdRun(reg),

			{}, // a separator
			subcommands.CmdHelp,
		},
		Out: out,
		Err: errOut,
	}
}

func main() {
	app := application(fixture.Default, os.Stdout, os.Stderr)
	app.Context = withInterrupt(app.Context)
	os.Exit(subcommands.Run(app, nil))
}

// withInterrupt wraps a context modifier so that the context is canceled on
// Ctrl-C. The handler stays installed until the process exits.
func withInterrupt(next func(context.Context) context.Context) func(context.Context) context.Context {
	return func(ctx context.Context) context.Context {
		ctx, _ = signal.NotifyContext(next(ctx), os.Interrupt)
		return ctx
	}
}

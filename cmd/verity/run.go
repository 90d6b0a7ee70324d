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
	stdflag "flag"
	"fmt"
	"io"
	"os"

	"github.com/maruel/subcommands"
	"golang.org/x/term"

	"github.com/verity-go/verity/common/cli"
	"github.com/verity-go/verity/common/errors"
	"github.com/verity-go/verity/common/flag"
	"github.com/verity-go/verity/common/logging"
	"github.com/verity-go/verity/common/testing/fixture"
	"github.com/verity-go/verity/common/testing/truth"
)

func cmdRun(reg *fixture.Registry) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "run [-config file.yaml] [-fixture name]... [-category name]... [-v] [-color auto|always|never] [-json-out path] [-metrics-out path]",
		ShortDesc: "runs fixtures",
		LongDesc: `Runs the tests of registered fixtures and prints a report.

Flags override the values of the -config file. Exits with 1 if any test
failed or errored.`,
		CommandRun: func() subcommands.CommandRun {
			r := &runRun{reg: reg, flagCfg: defaultConfig()}
			r.Flags.StringVar(&r.configPath, "config", "", "Path to a YAML run config.")
			r.Flags.Var(flag.StringSlice(&r.flagCfg.Fixtures), "fixture", "Fixture to run. May be repeated or comma-separated.")
			r.Flags.Var(flag.StringSlice(&r.flagCfg.Categories), "category", "Only run tests in this category. May be repeated or comma-separated.")
			r.Flags.BoolVar(&r.flagCfg.Verbose, "v", false, "Report passing tests, panic stacks and debug logs.")
			r.Flags.Var(flag.Choice(&r.flagCfg.Color, colorModes...), "color", "Colorize output: auto, always or never.")
			r.Flags.StringVar(&r.flagCfg.JSONOut, "json-out", "", "Write the JSON report to this path.")
			r.Flags.StringVar(&r.flagCfg.MetricsOut, "metrics-out", "", "Write Prometheus textfile metrics to this path.")
			r.logLevel = logging.Info
			r.Flags.Var(&r.logLevel, "log-level", "Logging level: debug, info, warning or error. -v implies debug.")
			return r
		},
	}
}

type runRun struct {
	subcommands.CommandRunBase

	reg        *fixture.Registry
	configPath string
	flagCfg    runConfig
	logLevel   logging.Level
}

// config merges the config file with the flags which were set explicitly.
//
// The result is not validated.
func (r *runRun) config() (runConfig, error) {
	if r.configPath == "" {
		return r.flagCfg, nil
	}
	cfg, err := loadConfig(r.configPath)
	if err != nil {
		return cfg, err
	}
	r.Flags.Visit(func(f *stdflag.Flag) {
		switch f.Name {
		case "fixture":
			cfg.Fixtures = r.flagCfg.Fixtures
		case "category":
			cfg.Categories = r.flagCfg.Categories
		case "v":
			cfg.Verbose = r.flagCfg.Verbose
		case "color":
			cfg.Color = r.flagCfg.Color
		case "json-out":
			cfg.JSONOut = r.flagCfg.JSONOut
		case "metrics-out":
			cfg.MetricsOut = r.flagCfg.MetricsOut
		}
	})
	return cfg, nil
}

func colorize(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (r *runRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if len(args) != 0 {
		fmt.Fprintf(a.GetErr(), "%s: unexpected arguments %q\n", a.GetName(), args)
		return exitUsage
	}

	cfg, err := r.config()
	if err != nil {
		errors.Log(ctx, err)
		return exitFail
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(a.GetErr(), "%s: %s\n", a.GetName(), err)
		return exitUsage
	}
	level := r.logLevel
	if cfg.Verbose {
		level = logging.Debug
	}
	ctx = logging.SetLevel(ctx, level)

	fixtures, err := r.reg.Select(cfg.Fixtures)
	if err != nil {
		logging.Errorf(ctx, "%s", err)
		return exitFail
	}

	out := a.GetOut()
	color := colorize(cfg.Color, out)
	truth.Colorize = color
	truth.Verbose = cfg.Verbose

	runner := fixture.Runner{Filter: fixture.Filter{Categories: cfg.Categories}}
	report := runner.Run(ctx, fixtures...)

	var merr errors.MultiError
	merr.MaybeAdd(report.WriteText(out, fixture.TextOptions{Colorize: color, Verbose: cfg.Verbose}))
	if cfg.JSONOut != "" {
		merr.MaybeAdd(writeJSON(cfg.JSONOut, report))
	}
	if cfg.MetricsOut != "" {
		m := fixture.NewMetrics()
		m.Observe(report)
		merr.MaybeAdd(m.WriteToTextfile(cfg.MetricsOut))
	}
	if err := merr.AsError(); err != nil {
		errors.Log(ctx, err)
		return exitFail
	}

	if !report.OK() {
		return exitFail
	}
	return exitOK
}

func writeJSON(path string, report *fixture.Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Annotate(err, "creating JSON report").Err()
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Annotate(cerr, "closing JSON report").Err()
		}
	}()
	if err := report.WriteJSON(f); err != nil {
		return errors.Annotate(err, "writing JSON report to %q", path).Err()
	}
	return nil
}

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

// Package cli is a helper package for "github.com/maruel/subcommands".
//
// It adds a context.Context which subcommands retrieve with GetContext, so
// that the application can install a logger (or anything else) once for all
// its subcommands.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/maruel/subcommands"
)

// ContextModificator takes a context, adds something, and returns a new one.
//
// It is implemented by Application and can optionally be implemented by
// subcommands.CommandRun instances, so they can add their own data to the
// context.
type ContextModificator interface {
	ModifyContext(context.Context) context.Context
}

// Application is like subcommands.DefaultApplication, except it also
// implements ContextModificator.
type Application struct {
	Name     string
	Title    string
	Context  func(context.Context) context.Context
	Commands []*subcommands.Command
	EnvVars  map[string]subcommands.EnvVarDefinition

	// Out and Err default to os.Stdout and os.Stderr.
	Out io.Writer
	Err io.Writer
}

var _ interface {
	subcommands.Application
	ContextModificator
} = (*Application)(nil)

// GetName implements subcommands.Application.
func (a *Application) GetName() string {
	return a.Name
}

// GetTitle implements subcommands.Application.
func (a *Application) GetTitle() string {
	return a.Title
}

// GetCommands implements subcommands.Application.
func (a *Application) GetCommands() []*subcommands.Command {
	return a.Commands
}

// GetOut implements subcommands.Application.
func (a *Application) GetOut() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stdout
}

// GetErr implements subcommands.Application.
func (a *Application) GetErr() io.Writer {
	if a.Err != nil {
		return a.Err
	}
	return os.Stderr
}

// GetEnvVars implements subcommands.Application.
func (a *Application) GetEnvVars() map[string]subcommands.EnvVarDefinition {
	return a.EnvVars
}

// ModifyContext implements ContextModificator.
func (a *Application) ModifyContext(ctx context.Context) context.Context {
	if a.Context != nil {
		return a.Context(ctx)
	}
	return ctx
}

// GetContext returns a context derived from context.Background, modified by
// the application and then by the subcommand, if they implement
// ContextModificator.
func GetContext(app subcommands.Application, cmd subcommands.CommandRun, env subcommands.Env) context.Context {
	ctx := context.Background()
	if m, ok := app.(ContextModificator); ok {
		ctx = m.ModifyContext(ctx)
	}
	if m, ok := cmd.(ContextModificator); ok {
		ctx = m.ModifyContext(ctx)
	}
	return ctx
}

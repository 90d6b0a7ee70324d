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

// Package gologger is a logging.Logger backend built on
// github.com/op/go-logging.
package gologger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	gol "github.com/op/go-logging"

	"github.com/verity-go/verity/common/logging"
)

// StdFormat is the default log line format: level initial, timestamp, pid,
// source file and message.
const StdFormat = `[%{level:.1s}%{time:2006-01-02T15:04:05.000000Z07:00} ` +
	`%{pid} 0 %{shortfile}] %{message}`

// StdFormatWithColor is StdFormat with the level prefix colored.
const StdFormatWithColor = `%{color}[%{level:.1s}%{time:2006-01-02T15:04:05.000000Z07:00} ` +
	`%{pid} 0 %{shortfile}]%{color:reset} %{message}`

// StdConfig writes StdFormat lines to stderr.
var StdConfig = LoggerConfig{Out: os.Stderr}

// LoggerConfig describes a go-logging backed Logger.
type LoggerConfig struct {
	// Format is a go-logging format string. Defaults to StdFormat.
	Format string
	// Out is where log lines are written. Defaults to stderr.
	Out io.Writer
	// Level is a go-logging level filter applied on top of the context's
	// logging level. Its zero value, gol.CRITICAL, is treated as gol.DEBUG.
	Level gol.Level

	once sync.Once
	w    *goLoggerWrapper
}

// goLoggerWrapper serializes access to a go-logging Logger, whose
// ExtraCalldepth is set per call.
type goLoggerWrapper struct {
	sync.Mutex
	l *gol.Logger
}

func (lc *LoggerConfig) wrapper() *goLoggerWrapper {
	lc.once.Do(func() {
		lc.w = &goLoggerWrapper{l: lc.newGoLogger()}
	})
	return lc.w
}

func (lc *LoggerConfig) newGoLogger() *gol.Logger {
	format := lc.Format
	if format == "" {
		format = StdFormat
	}
	out := lc.Out
	if out == nil {
		out = os.Stderr
	}
	level := lc.Level
	if level == gol.CRITICAL {
		level = gol.DEBUG
	}

	backend := gol.AddModuleLevel(
		gol.NewBackendFormatter(
			gol.NewLogBackend(out, "", 0),
			gol.MustStringFormatter(format)))
	backend.SetLevel(level, "")

	logger := gol.MustGetLogger("")
	logger.SetBackend(backend)
	return logger
}

// NewLogger returns a Logger writing per this config, which honors the level
// and fields of `ctx`.
func (lc *LoggerConfig) NewLogger(ctx context.Context) logging.Logger {
	if ctx == nil {
		ctx = context.Background()
	}
	return &loggerImpl{lc.wrapper(), ctx}
}

// Use installs this config as the logging factory of the context.
func (lc *LoggerConfig) Use(ctx context.Context) context.Context {
	return logging.SetFactory(ctx, lc.NewLogger)
}

// New returns a Logger writing messages of `level` or above to `w`.
func New(w io.Writer, level logging.Level) logging.Logger {
	lc := &LoggerConfig{Out: w}
	return lc.NewLogger(logging.SetLevel(context.Background(), level))
}

// Use installs StdConfig as the logging factory of the context.
func Use(ctx context.Context) context.Context {
	return StdConfig.Use(ctx)
}

type loggerImpl struct {
	*goLoggerWrapper
	ctx context.Context
}

func (li *loggerImpl) Debugf(format string, args ...any) {
	li.LogCall(logging.Debug, 1, format, args)
}

func (li *loggerImpl) Infof(format string, args ...any) {
	li.LogCall(logging.Info, 1, format, args)
}

func (li *loggerImpl) Warningf(format string, args ...any) {
	li.LogCall(logging.Warning, 1, format, args)
}

func (li *loggerImpl) Errorf(format string, args ...any) {
	li.LogCall(logging.Error, 1, format, args)
}

func (li *loggerImpl) LogCall(l logging.Level, calldepth int, format string, args []any) {
	if !logging.IsLogging(li.ctx, l) {
		return
	}

	text := fmt.Sprintf(format, args...)
	if fields := logging.GetFields(li.ctx); len(fields) > 0 {
		text = fmt.Sprintf("%-43s %s", text, fields)
	}

	li.Lock()
	defer li.Unlock()

	// One frame for LogCall itself.
	li.l.ExtraCalldepth = calldepth + 1
	switch l {
	case logging.Debug:
		li.l.Debug(text)
	case logging.Info:
		li.l.Info(text)
	case logging.Warning:
		li.l.Warning(text)
	case logging.Error:
		li.l.Error(text)
	}
}

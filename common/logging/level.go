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

package logging

import (
	"context"
	"flag"
	"fmt"
)

// Level is a logging level.
type Level int

// Levels, in order of increasing severity.
const (
	Debug Level = iota
	Info
	Warning
	Error
)

// DefaultLevel is the level used when none is set in the context.
const DefaultLevel = Info

var _ flag.Value = (*Level)(nil)

// String implements fmt.Stringer and flag.Value.
func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Set implements flag.Value.
func (l *Level) Set(v string) error {
	switch v {
	case "debug":
		*l = Debug
	case "info":
		*l = Info
	case "warning":
		*l = Warning
	case "error":
		*l = Error
	default:
		return fmt.Errorf("unknown logging level %q", v)
	}
	return nil
}

type levelKeyType struct{}

var levelKey levelKeyType

// SetLevel returns a context which logs at level `l` or above.
func SetLevel(ctx context.Context, l Level) context.Context {
	return context.WithValue(ctx, levelKey, l)
}

// GetLevel returns the minimum level of the context, or DefaultLevel.
func GetLevel(ctx context.Context) Level {
	if l, ok := ctx.Value(levelKey).(Level); ok {
		return l
	}
	return DefaultLevel
}

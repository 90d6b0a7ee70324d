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

package errors

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/verity-go/verity/common/logging"
	"github.com/verity-go/verity/common/testing/truth/assert"
	"github.com/verity-go/verity/common/testing/truth/should"
)

func TestAnnotate(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		assert.That(t, Annotate(nil, "nothing").InternalReason("x").Err(), should.ErrLike(nil))
	})

	t.Run("Error", func(t *testing.T) {
		err := Annotate(io.EOF, "reading %q", "config.yaml").Err()
		assert.That(t, err, should.ErrLikeString(`reading "config.yaml": EOF`))
		assert.That(t, err, should.ErrLikeError(io.EOF))
		assert.That(t, Unwrap(err), should.Equal(io.EOF))
	})

	t.Run("Reason", func(t *testing.T) {
		err := Reason("unknown fixture %q", "Nope").Err()
		assert.That(t, err.Error(), should.Equal(`unknown fixture "Nope"`))
		assert.That(t, Unwrap(err), should.ErrLike(nil))
	})

	t.Run("nested", func(t *testing.T) {
		err := Annotate(Annotate(io.EOF, "inner").Err(), "outer").Err()
		assert.That(t, err.Error(), should.Equal("outer: inner: EOF"))
		assert.That(t, Is(err, io.EOF), should.BeTrue)
	})
}

func TestRenderStack(t *testing.T) {
	t.Parallel()

	err := Annotate(
		fmt.Errorf("wrapping: %w", io.EOF),
		"loading").InternalReason("attempt %d", 3).Err()
	err = MultiError{err, Reason("second").Err()}

	lines := RenderStack(err)
	assert.Loosely(t, lines, should.HaveLength(4))
	assert.That(t, lines[0], should.Equal("2 errors:"))
	assert.That(t, lines[1], should.MatchRegexp(`^loading \[attempt 3\] \(at annotate_test\.go:\d+\)$`))
	assert.That(t, lines[2], should.Equal("EOF"))
	assert.That(t, lines[3], should.HavePrefix("second (at annotate_test.go:"))

	var logged []string
	ctx := logging.SetFactory(context.Background(), func(context.Context) logging.Logger {
		return lineLogger{&logged}
	})
	Log(ctx, err)
	assert.That(t, strings.Join(logged, "\n"), should.ContainSubstring("loading [attempt 3]"))
}

type lineLogger struct {
	lines *[]string
}

func (l lineLogger) Debugf(format string, args ...any)   { l.LogCall(logging.Debug, 1, format, args) }
func (l lineLogger) Infof(format string, args ...any)    { l.LogCall(logging.Info, 1, format, args) }
func (l lineLogger) Warningf(format string, args ...any) { l.LogCall(logging.Warning, 1, format, args) }
func (l lineLogger) Errorf(format string, args ...any)   { l.LogCall(logging.Error, 1, format, args) }
func (l lineLogger) LogCall(_ logging.Level, _ int, format string, args []any) {
	*l.lines = append(*l.lines, fmt.Sprintf(format, args...))
}

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

// Package failure holds the data model for a failed comparison.
//
// A nil *Summary means the comparison passed. All getters are nil-safe.
package failure

// FindingLevel controls how a Finding is rendered.
//
// Findings above LevelError are only rendered in full when the test is run in
// verbose mode.
type FindingLevel int32

const (
	LevelError FindingLevel = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l FindingLevel) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	}
	return "unknown"
}

// FindingTypeHint tells renderers how a Finding's Value was produced.
type FindingTypeHint int32

const (
	HintText FindingTypeHint = iota
	HintCmpDiff
	HintUnifiedDiff
	HintCharDiff
)

// Comparison identifies the comparison which produced a Summary.
type Comparison struct {
	// Name is the fully qualified name of the comparison, e.g. "should.Equal".
	Name string `json:"name"`

	// TypeArguments are the rendered type arguments, e.g. ["int"].
	TypeArguments []string `json:"type_arguments,omitempty"`

	// Arguments are the rendered non-actual arguments, e.g. ["10"].
	Arguments []string `json:"arguments,omitempty"`
}

// GetName returns the Name, or "" if c is nil.
func (c *Comparison) GetName() string {
	if c == nil {
		return ""
	}
	return c.Name
}

// GetTypeArguments returns the TypeArguments, or nil if c is nil.
func (c *Comparison) GetTypeArguments() []string {
	if c == nil {
		return nil
	}
	return c.TypeArguments
}

// GetArguments returns the Arguments, or nil if c is nil.
func (c *Comparison) GetArguments() []string {
	if c == nil {
		return nil
	}
	return c.Arguments
}

// Finding is a single named piece of evidence about a failure.
type Finding struct {
	Name  string          `json:"name"`
	Value []string        `json:"value,omitempty"`
	Level FindingLevel    `json:"level,omitempty"`
	Type  FindingTypeHint `json:"type,omitempty"`
}

// StackFrame is a single source location.
type StackFrame struct {
	Filename string `json:"filename"`
	Lineno   int64  `json:"lineno"`
}

// Stack is a named list of frames, e.g. "at" for the assertion site.
type Stack struct {
	Name   string        `json:"name"`
	Frames []*StackFrame `json:"frames,omitempty"`
}

// Summary describes a failed comparison.
type Summary struct {
	Comparison    *Comparison `json:"comparison,omitempty"`
	Findings      []*Finding  `json:"findings,omitempty"`
	SourceContext []*Stack    `json:"source_context,omitempty"`
}

// GetComparison returns the Comparison, or nil if s is nil.
func (s *Summary) GetComparison() *Comparison {
	if s == nil {
		return nil
	}
	return s.Comparison
}

// GetFindings returns the Findings, or nil if s is nil.
func (s *Summary) GetFindings() []*Finding {
	if s == nil {
		return nil
	}
	return s.Findings
}

// GetSourceContext returns the SourceContext, or nil if s is nil.
func (s *Summary) GetSourceContext() []*Stack {
	if s == nil {
		return nil
	}
	return s.SourceContext
}

// FindingByName returns the first Finding with the given name, or nil.
func (s *Summary) FindingByName(name string) *Finding {
	for _, f := range s.GetFindings() {
		if f.Name == name {
			return f
		}
	}
	return nil
}

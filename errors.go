// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"errors"
	"strings"

	"github.com/gogpu/shader/driver"
)

// Common shader errors.
var (
	// ErrNoSources is returned when a SourceSet has no stage sources.
	ErrNoSources = errors.New("shader: no stage sources")

	// ErrUniformInvalid is returned when acting on a null uniform handle.
	ErrUniformInvalid = errors.New("shader: uniform handle is invalid")

	// ErrNotBound is returned when a uniform's owning shader is not the
	// currently bound program.
	ErrNotBound = errors.New("shader: shader must be bound")

	// ErrUniformType is returned when a uniform is not of the expected type.
	ErrUniformType = errors.New("shader: uniform not of correct type")
)

// CompileError reports a stage compilation failure. Log carries the
// compiler-reported text verbatim; Source is the offending stage source.
type CompileError struct {
	Stage  driver.StageKind
	Source string
	Log    string
}

func (e *CompileError) Error() string {
	var b strings.Builder
	b.WriteString("shader: ")
	b.WriteString(e.Stage.String())
	b.WriteString(" stage compile error:\n")
	b.WriteString(e.Log)
	if e.Source != "" {
		b.WriteString("\n    -- shader source --\n")
		b.WriteString(e.Source)
	}
	return b.String()
}

// LinkError reports a program link failure. Log carries the
// linker-reported text verbatim.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "shader: link error:\n" + e.Log
}

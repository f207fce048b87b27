// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

// Context is the set of graphics-context primitives the shader package
// builds on. The split between do-then-query (CompileStage followed by
// CompileStatus and CompileLog) mirrors how contemporary graphics APIs
// report compile and link outcomes: the log is always retrievable
// verbatim, whether or not the operation succeeded.
//
// Resource lifecycle:
//   - Objects are created via Create* methods and must be explicitly
//     destroyed via the matching Delete* methods.
//   - IDs become invalid after destruction and must not be reused.
//   - Deleting a program that is currently in use is driver-defined.
type Context interface {
	// CreateProgram allocates a new, empty program object.
	CreateProgram() (Program, error)

	// DeleteProgram releases a program object.
	DeleteProgram(p Program)

	// CreateStage allocates a stage object of the given kind.
	CreateStage(kind StageKind) (Stage, error)

	// DeleteStage releases a stage object.
	DeleteStage(s Stage)

	// CompileStage compiles source text into the stage object.
	// The outcome is reported by CompileStatus and CompileLog.
	CompileStage(s Stage, source string)

	// CompileStatus reports whether the last CompileStage succeeded.
	CompileStatus(s Stage) bool

	// CompileLog returns the compiler-reported log, verbatim.
	// May be non-empty even on success (warnings).
	CompileLog(s Stage) string

	// AttachStage attaches a compiled stage to a program.
	AttachStage(p Program, s Stage)

	// DetachStage detaches a stage from a program.
	DetachStage(p Program, s Stage)

	// LinkProgram links all attached stages.
	// The outcome is reported by LinkStatus and LinkLog.
	LinkProgram(p Program)

	// LinkStatus reports whether the last LinkProgram succeeded.
	LinkStatus(p Program) bool

	// LinkLog returns the linker-reported log, verbatim.
	LinkLog(p Program) string

	// ActiveUniformCount returns the number of uniforms the linker
	// retained as active in a successfully linked program.
	ActiveUniformCount(p Program) int

	// ActiveUniform returns metadata for the active uniform at index,
	// which must be in [0, ActiveUniformCount).
	ActiveUniform(p Program, index int) ActiveUniform

	// UniformLocation resolves an active uniform's location.
	// Returns -1 for names the program does not know.
	UniformLocation(p Program, name string) int32

	// UseProgram makes the program current for subsequent draws.
	// Program 0 (InvalidID) unbinds.
	UseProgram(p Program)
}

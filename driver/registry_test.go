// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

import (
	"errors"
	"testing"
)

// stubContext is the minimal Context for registry tests.
type stubContext struct{}

func (stubContext) CreateProgram() (Program, error)          { return 1, nil }
func (stubContext) DeleteProgram(Program)                    {}
func (stubContext) CreateStage(StageKind) (Stage, error)     { return 1, nil }
func (stubContext) DeleteStage(Stage)                        {}
func (stubContext) CompileStage(Stage, string)               {}
func (stubContext) CompileStatus(Stage) bool                 { return true }
func (stubContext) CompileLog(Stage) string                  { return "" }
func (stubContext) AttachStage(Program, Stage)               {}
func (stubContext) DetachStage(Program, Stage)               {}
func (stubContext) LinkProgram(Program)                      {}
func (stubContext) LinkStatus(Program) bool                  { return true }
func (stubContext) LinkLog(Program) string                   { return "" }
func (stubContext) ActiveUniformCount(Program) int           { return 0 }
func (stubContext) ActiveUniform(Program, int) ActiveUniform { return ActiveUniform{} }
func (stubContext) UniformLocation(Program, string) int32    { return -1 }
func (stubContext) UseProgram(Program)                       {}

func TestRegisterAndOpen(t *testing.T) {
	Register("stub", func() (Context, error) {
		return stubContext{}, nil
	})
	defer Unregister("stub")

	if !IsRegistered("stub") {
		t.Fatal("IsRegistered(stub) = false after Register")
	}

	ctx, err := Open("stub")
	if err != nil {
		t.Fatalf("Open(stub) error = %v", err)
	}
	if ctx == nil {
		t.Fatal("Open(stub) returned nil Context")
	}
}

func TestOpenUnknown(t *testing.T) {
	_, err := Open("no-such-driver")
	if !errors.Is(err, ErrUnknownDriver) {
		t.Errorf("Open(unknown) error = %v, want ErrUnknownDriver", err)
	}
}

func TestAvailable(t *testing.T) {
	Register("stub-a", func() (Context, error) { return stubContext{}, nil })
	Register("stub-b", func() (Context, error) { return stubContext{}, nil })
	defer Unregister("stub-a")
	defer Unregister("stub-b")

	names := Available()
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["stub-a"] || !found["stub-b"] {
		t.Errorf("Available() = %v, want stub-a and stub-b present", names)
	}
}

func TestUnregister(t *testing.T) {
	Register("stub", func() (Context, error) { return stubContext{}, nil })
	Unregister("stub")
	if IsRegistered("stub") {
		t.Error("IsRegistered(stub) = true after Unregister")
	}
}

func TestRegisterReplaces(t *testing.T) {
	first := 0
	Register("stub", func() (Context, error) { first++; return stubContext{}, nil })
	Register("stub", func() (Context, error) { return stubContext{}, nil })
	defer Unregister("stub")

	if _, err := Open("stub"); err != nil {
		t.Fatalf("Open(stub) error = %v", err)
	}
	if first != 0 {
		t.Error("replaced factory was invoked")
	}
}

func TestStageKindString(t *testing.T) {
	tests := []struct {
		kind StageKind
		want string
	}{
		{StageVertex, "vertex"},
		{StageTessControl, "tessellation-control"},
		{StageTessEval, "tessellation-evaluation"},
		{StageGeometry, "geometry"},
		{StageFragment, "fragment"},
		{StageCount, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("StageKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestUniformTypeString(t *testing.T) {
	if got := UniformVec3.String(); got != "vec3" {
		t.Errorf("UniformVec3.String() = %q, want vec3", got)
	}
	if got := UniformUnknown.String(); got != "unknown" {
		t.Errorf("UniformUnknown.String() = %q, want unknown", got)
	}
}

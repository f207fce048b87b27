// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package nagadriver_test

import (
	"errors"
	"testing"

	"github.com/gogpu/shader"
	"github.com/gogpu/shader/driver"
	"github.com/gogpu/shader/driver/nagadriver"
)

const vertWGSL = `
@vertex
fn vs_main() -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}
`

const fragWGSL = `
@group(0) @binding(0) var<uniform> u_color: vec4<f32>;

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return u_color;
}
`

// Exercises the whole stack headlessly: shader package on top of the
// naga driver, from source set to validated uniform handle.
func TestShaderOverNagaDriver(t *testing.T) {
	dev := shader.Open(nagadriver.New())

	s, err := dev.NewShader(shader.SourceSet{Vertex: vertWGSL, Fragment: fragWGSL})
	if err != nil {
		t.Fatalf("NewShader() error = %v", err)
	}
	defer s.Release()

	if s.Program() == driver.InvalidID {
		t.Error("Program() = InvalidID, want nonzero identity")
	}

	u := s.Uniform("u_color")
	if !u.Valid() {
		t.Fatal("Uniform(u_color) is null")
	}
	if u.Type() != driver.UniformVec4 {
		t.Errorf("Type() = %v, want vec4", u.Type())
	}

	if err := u.Validate(driver.UniformVec4); !errors.Is(err, shader.ErrNotBound) {
		t.Errorf("unbound Validate() = %v, want ErrNotBound", err)
	}
	s.Bind()
	if !s.IsBound() {
		t.Error("IsBound() = false after Bind")
	}
	if err := u.Validate(driver.UniformVec4); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	if got := s.Uniform("undeclared_name"); got.Valid() {
		t.Error("Uniform(undeclared_name) is non-null")
	}
}

func TestShaderCompileErrorOverNagaDriver(t *testing.T) {
	dev := shader.Open(nagadriver.New())

	_, err := dev.NewShader(shader.SourceSet{
		Vertex:   vertWGSL,
		Fragment: "definitely not wgsl (",
	})

	var ce *shader.CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("NewShader() error = %v, want *CompileError", err)
	}
	if ce.Stage != driver.StageFragment {
		t.Errorf("Stage = %v, want fragment", ce.Stage)
	}
	if ce.Log == "" {
		t.Error("Log is empty")
	}
	if ce.Source == "" {
		t.Error("Source is empty, want offending source carried in the error")
	}
}

func TestDriverRegistered(t *testing.T) {
	if !driver.IsRegistered("naga") {
		t.Fatal("naga driver not registered")
	}
	ctx, err := driver.Open("naga")
	if err != nil {
		t.Fatalf("driver.Open(naga) error = %v", err)
	}
	if ctx == nil {
		t.Fatal("driver.Open(naga) returned nil")
	}
}

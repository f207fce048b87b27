// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"sync/atomic"

	"github.com/gogpu/shader/driver"
)

// program is the shared state behind every copy of a Shader: one GPU
// program object and its immutable active-uniform table. It is never
// partially constructed; NewShader either returns a fully built
// program or none.
type program struct {
	dev      Device
	id       driver.Program
	uniforms map[string]*UniformDesc

	// refs counts explicit owners (initial construction plus Clones).
	// Atomic because owners may release from different goroutines.
	refs atomic.Int32
}

// Shader is a value handle to a linked program. All copies of a Shader
// are interchangeable and share one underlying program; none is
// privileged. The zero Shader is invalid and all its methods are
// no-ops or return null results.
type Shader struct {
	p *program
}

// Valid reports whether the handle refers to a program.
func (s Shader) Valid() bool {
	return s.p != nil
}

// Program returns the underlying program identity, or driver.InvalidID
// for an invalid or disabled-policy shader.
func (s Shader) Program() driver.Program {
	if s.p == nil {
		return driver.InvalidID
	}
	return s.p.id
}

// Clone adds an owner and returns a handle sharing the same program.
// Every Clone must be matched by a Release.
func (s Shader) Clone() Shader {
	if s.p != nil {
		s.p.refs.Add(1)
	}
	return s
}

// Release drops one owner. When the last owner releases, the GPU
// program is deleted. Using any copy of the Shader after the last
// Release is invalid.
func (s Shader) Release() {
	if s.p == nil {
		return
	}
	if s.p.refs.Add(-1) == 0 {
		s.p.dev.destroy(s.p)
	}
}

// Bind makes this program current on the owning device's graphics
// context. If the device's bind tracker already names this program the
// call returns without touching the context.
func (s Shader) Bind() {
	if s.p == nil {
		return
	}
	s.p.dev.bind(s.p)
}

// IsBound reports whether this program is the one the owning device
// last activated. Pure read, no context calls.
func (s Shader) IsBound() bool {
	if s.p == nil {
		return false
	}
	return s.p.dev.isBound(s.p)
}

// Uniform looks up an active uniform by name. A name the linker did
// not retain yields a null handle, not an error; the error surfaces
// only when the handle is used (see Uniform.Validate).
func (s Shader) Uniform(name string) Uniform {
	if s.p == nil {
		return Uniform{}
	}
	return Uniform{prog: s.p, desc: s.p.uniforms[name]}
}

// Uniforms returns the names of all active uniforms.
func (s Shader) Uniforms() []string {
	if s.p == nil {
		return nil
	}
	names := make([]string, 0, len(s.p.uniforms))
	for name := range s.p.uniforms {
		names = append(names, name)
	}
	return names
}

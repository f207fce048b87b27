// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import "github.com/gogpu/shader/driver"

// UniformDesc describes one active uniform of a linked program:
// reported name, array size, value type, and resolved location.
// Built once at construction, never mutated.
type UniformDesc struct {
	driver.ActiveUniform

	// Location addresses the uniform in the linked program.
	Location int32
}

// Uniform is a non-owning handle to an active uniform. A null handle
// (missing name, or any lookup on a disabled-policy shader) is a valid
// value; it fails only when acted upon. A Uniform must not outlive the
// owning Shader's last Release.
type Uniform struct {
	prog *program
	desc *UniformDesc
}

// Valid reports whether the handle refers to an active uniform.
func (u Uniform) Valid() bool {
	return u.desc != nil
}

// Name returns the uniform's reported name, or "" for a null handle.
func (u Uniform) Name() string {
	if u.desc == nil {
		return ""
	}
	return u.desc.Name
}

// Type returns the uniform's value type, or UniformUnknown for a null
// handle.
func (u Uniform) Type() driver.UniformType {
	if u.desc == nil {
		return driver.UniformUnknown
	}
	return u.desc.Type
}

// Size returns the array length (1 for scalars), or 0 for a null handle.
func (u Uniform) Size() int {
	if u.desc == nil {
		return 0
	}
	return u.desc.Size
}

// Location returns the uniform's location, or -1 for a null handle.
func (u Uniform) Location() int32 {
	if u.desc == nil {
		return -1
	}
	return u.desc.Location
}

// Validate checks that the handle can be used to assign a value of the
// given type: the handle must be non-null (ErrUniformInvalid), the
// owning program must be currently bound (ErrNotBound), and the active
// uniform's type must match want (ErrUniformType).
//
// Value assignment itself is the caller's concern; consumers feed
// Location, Type, and Size to their graphics API once Validate passes.
func (u Uniform) Validate(want driver.UniformType) error {
	if u.desc == nil {
		return ErrUniformInvalid
	}
	if !u.prog.dev.isBound(u.prog) {
		return ErrNotBound
	}
	if u.desc.Type != want {
		return ErrUniformType
	}
	return nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"testing"

	"github.com/gogpu/shader/driver"
)

func TestDisabledDevice(t *testing.T) {
	dev := Disabled()
	if dev.Enabled() {
		t.Error("Enabled() = true, want false")
	}

	// Construction always succeeds, with an empty registry, without a
	// graphics context.
	s, err := dev.NewShader(SourceSet{Vertex: vertSrc, Fragment: fragSrc})
	if err != nil {
		t.Fatalf("NewShader() error = %v", err)
	}
	defer s.Release()

	if !s.Valid() {
		t.Error("Valid() = false, want true")
	}
	if s.Program() != driver.InvalidID {
		t.Errorf("Program() = %d, want InvalidID", s.Program())
	}

	s.Bind()
	if s.IsBound() {
		t.Error("IsBound() = true, want always false under the disabled policy")
	}

	if u := s.Uniform("u_anything"); u.Valid() {
		t.Error("Uniform() returned a non-null handle under the disabled policy")
	}
	if err := s.Uniform("u_anything").Validate(driver.UniformFloat); err == nil {
		t.Error("Validate() on a disabled-policy handle = nil, want ErrUniformInvalid")
	}
}

func TestDisabledDeviceEmptySourceSet(t *testing.T) {
	// The disabled policy does not validate sources; it succeeds even
	// for an empty set.
	s, err := Disabled().NewShader(SourceSet{})
	if err != nil {
		t.Fatalf("NewShader(empty) error = %v", err)
	}
	s.Release()
}

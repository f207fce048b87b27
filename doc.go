// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shader turns textual shader-stage sources into linked,
// GPU-resident program objects with a cached active-uniform table and
// redundant-bind elision.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/shader"
//		"github.com/gogpu/shader/driver"
//		_ "github.com/gogpu/shader/driver/gldriver"
//	)
//
//	ctx, err := driver.Open("gl") // needs a current GL context
//	if err != nil {
//		log.Fatal(err)
//	}
//	dev := shader.Open(ctx)
//
//	s, err := dev.NewShader(shader.SourceSet{
//		Vertex:   vertSrc,
//		Fragment: fragSrc,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer s.Release()
//
//	s.Bind()
//	u := s.Uniform("u_color")
//
// # Ownership
//
// A Shader is a lightweight value sharing one underlying program.
// Ownership is reference-counted: Clone adds an owner, Release drops
// one, and the GPU program is deleted exactly once, when the last
// owner releases. Plain struct copies alias the same owner; only Clone
// creates a new one.
//
// # Thread Affinity
//
// Compilation, linking, introspection, and binding are synchronous
// calls against a graphics context, and graphics contexts are owned by
// a single OS thread. A Device and its bind tracking are therefore
// confined to the goroutine holding that thread. The reference count
// itself is atomic, so Shader copies may be cloned and released from
// any goroutine.
//
// # Disabled Policy
//
// Disabled returns an inert Device for configurations without shader
// support: construction always succeeds with an empty uniform table,
// Bind is a no-op, IsBound is always false, and lookups return null
// handles. Building with the noshaders tag makes OpenDefault select
// this policy.
package shader

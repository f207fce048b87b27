// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package driver defines the graphics-context contract consumed by the
// shader package.
//
// A driver.Context supplies the raw primitives for one graphics context:
// creating and destroying program and stage objects, compiling stage
// source text, linking, querying compile/link status and logs, and
// querying active-uniform metadata and locations. The shader package
// calls these primitives but does not implement them.
//
// # Driver Registration
//
// Drivers are registered via init() functions and selected by name:
//
//	import _ "github.com/gogpu/shader/driver/gldriver"
//
//	ctx, err := driver.Open("gl")
//
// # Thread Affinity
//
// Graphics contexts are conventionally owned by a single OS thread. All
// Context methods must be called from the goroutine that holds that
// thread (see runtime.LockOSThread); implementations are not required
// to be safe for concurrent use.
//
// # Available Drivers
//
//   - "gl": OpenGL 4.1 core via go-gl (requires a current GL context)
//   - "naga": pure Go WGSL compile/link via gogpu/naga (headless)
package driver

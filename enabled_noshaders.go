// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build noshaders

package shader

// Enabled reports whether the binary was built with shader support.
// This build carries the noshaders tag; OpenDefault returns the inert
// Device.
const Enabled = false

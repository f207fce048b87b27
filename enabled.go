// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !noshaders

package shader

// Enabled reports whether the binary was built with shader support.
// Building with the noshaders tag turns it off, making OpenDefault
// return the inert Device.
const Enabled = true

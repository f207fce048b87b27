// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo

// Package gldriver implements the shader driver contract over OpenGL
// 4.1 core via go-gl.
//
// The driver requires a current GL context on the calling thread; New
// (and therefore driver.Open("gl")) fails when the GL function pointers
// cannot be loaded. Window and context creation belong to the host
// application, typically via glfw:
//
//	runtime.LockOSThread()
//	window.MakeContextCurrent()
//	ctx, err := driver.Open("gl")
package gldriver

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/shader/driver"
)

func init() {
	driver.Register("gl", func() (driver.Context, error) {
		return New()
	})
}

// Context implements driver.Context over the current GL context.
// All state lives in the GL context itself; Context is stateless.
type Context struct{}

// New loads the GL function pointers and returns a Context.
// A GL context must be current on the calling thread.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gldriver: init: %w", err)
	}
	return &Context{}, nil
}

func (*Context) CreateProgram() (driver.Program, error) {
	id := gl.CreateProgram()
	if id == 0 {
		return driver.InvalidID, errors.New("gldriver: glCreateProgram failed")
	}
	return driver.Program(id), nil
}

func (*Context) DeleteProgram(p driver.Program) {
	gl.DeleteProgram(uint32(p))
}

func (*Context) CreateStage(kind driver.StageKind) (driver.Stage, error) {
	id := gl.CreateShader(glStage(kind))
	if id == 0 {
		return driver.InvalidID, fmt.Errorf("gldriver: glCreateShader(%s) failed", kind)
	}
	return driver.Stage(id), nil
}

func (*Context) DeleteStage(s driver.Stage) {
	gl.DeleteShader(uint32(s))
}

func (*Context) CompileStage(s driver.Stage, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(s), 1, csources, nil)
	free()
	gl.CompileShader(uint32(s))
}

func (*Context) CompileStatus(s driver.Stage) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (*Context) CompileLog(s driver.Stage) string {
	var n int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &n)
	if n <= 1 {
		// Length includes the terminating NUL; 1 means an empty log.
		return ""
	}
	log := make([]byte, n)
	gl.GetShaderInfoLog(uint32(s), n, nil, &log[0])
	return string(log[:n-1])
}

func (*Context) AttachStage(p driver.Program, s driver.Stage) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (*Context) DetachStage(p driver.Program, s driver.Stage) {
	gl.DetachShader(uint32(p), uint32(s))
}

func (*Context) LinkProgram(p driver.Program) {
	gl.LinkProgram(uint32(p))
}

func (*Context) LinkStatus(p driver.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (*Context) LinkLog(p driver.Program) string {
	var n int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &n)
	if n <= 1 {
		return ""
	}
	log := make([]byte, n)
	gl.GetProgramInfoLog(uint32(p), n, nil, &log[0])
	return string(log[:n-1])
}

func (*Context) ActiveUniformCount(p driver.Program) int {
	var n int32
	gl.GetProgramiv(uint32(p), gl.ACTIVE_UNIFORMS, &n)
	return int(n)
}

func (*Context) ActiveUniform(p driver.Program, index int) driver.ActiveUniform {
	var bufSize int32
	gl.GetProgramiv(uint32(p), gl.ACTIVE_UNIFORM_MAX_LENGTH, &bufSize)
	if bufSize < 1 {
		bufSize = 1
	}
	buf := make([]byte, bufSize)

	var (
		length, size int32
		xtype        uint32
	)
	gl.GetActiveUniform(uint32(p), uint32(index), bufSize, &length, &size, &xtype, &buf[0])
	return driver.ActiveUniform{
		Name: string(buf[:length]),
		Size: int(size),
		Type: uniformType(xtype),
	}
}

func (*Context) UniformLocation(p driver.Program, name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}

func (*Context) UseProgram(p driver.Program) {
	gl.UseProgram(uint32(p))
}

// glStage maps a StageKind to its GL shader type enum.
func glStage(kind driver.StageKind) uint32 {
	switch kind {
	case driver.StageVertex:
		return gl.VERTEX_SHADER
	case driver.StageTessControl:
		return gl.TESS_CONTROL_SHADER
	case driver.StageTessEval:
		return gl.TESS_EVALUATION_SHADER
	case driver.StageGeometry:
		return gl.GEOMETRY_SHADER
	case driver.StageFragment:
		return gl.FRAGMENT_SHADER
	}
	return 0
}

// uniformType maps a GL active-uniform type enum to the driver
// classification. Types outside the table report UniformUnknown; the
// descriptor still carries the name, size, and location.
func uniformType(xtype uint32) driver.UniformType {
	switch xtype {
	case gl.FLOAT:
		return driver.UniformFloat
	case gl.FLOAT_VEC2:
		return driver.UniformVec2
	case gl.FLOAT_VEC3:
		return driver.UniformVec3
	case gl.FLOAT_VEC4:
		return driver.UniformVec4
	case gl.INT:
		return driver.UniformInt
	case gl.INT_VEC2:
		return driver.UniformIVec2
	case gl.INT_VEC3:
		return driver.UniformIVec3
	case gl.INT_VEC4:
		return driver.UniformIVec4
	case gl.UNSIGNED_INT:
		return driver.UniformUint
	case gl.UNSIGNED_INT_VEC2:
		return driver.UniformUVec2
	case gl.UNSIGNED_INT_VEC3:
		return driver.UniformUVec3
	case gl.UNSIGNED_INT_VEC4:
		return driver.UniformUVec4
	case gl.BOOL:
		return driver.UniformBool
	case gl.FLOAT_MAT2:
		return driver.UniformMat2
	case gl.FLOAT_MAT3:
		return driver.UniformMat3
	case gl.FLOAT_MAT4:
		return driver.UniformMat4
	case gl.SAMPLER_2D:
		return driver.UniformSampler2D
	case gl.SAMPLER_3D:
		return driver.UniformSampler3D
	case gl.SAMPLER_CUBE:
		return driver.UniformSamplerCube
	}
	return driver.UniformUnknown
}

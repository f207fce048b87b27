// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

// Resource IDs
//
// These opaque IDs represent GPU resources owned by a Context. Each
// driver maintains the mapping between IDs and its backend handles.
// IDs are uint64 to accommodate various backend handle sizes.

// Program is an opaque handle to a program object.
type Program uint64

// Stage is an opaque handle to a compiled-stage object.
type Stage uint64

// InvalidID is the zero value, representing an invalid/null resource.
const InvalidID = 0

// StageKind identifies one phase of the graphics pipeline.
type StageKind uint32

// Pipeline stages, in pipeline order.
const (
	StageVertex StageKind = iota
	StageTessControl
	StageTessEval
	StageGeometry
	StageFragment

	// StageCount is the number of pipeline stages.
	StageCount
)

// String returns the stage name as it appears in diagnostics.
func (k StageKind) String() string {
	switch k {
	case StageVertex:
		return "vertex"
	case StageTessControl:
		return "tessellation-control"
	case StageTessEval:
		return "tessellation-evaluation"
	case StageGeometry:
		return "geometry"
	case StageFragment:
		return "fragment"
	}
	return "unknown"
}

// UniformType classifies an active uniform's value type.
type UniformType uint32

// Uniform value types.
const (
	// UniformUnknown is reported for types the driver cannot classify.
	UniformUnknown UniformType = iota

	UniformFloat
	UniformVec2
	UniformVec3
	UniformVec4

	UniformInt
	UniformIVec2
	UniformIVec3
	UniformIVec4

	UniformUint
	UniformUVec2
	UniformUVec3
	UniformUVec4

	UniformBool

	UniformMat2
	UniformMat3
	UniformMat4

	UniformSampler2D
	UniformSampler3D
	UniformSamplerCube
)

// String returns the GLSL-style spelling of the type.
func (t UniformType) String() string {
	switch t {
	case UniformFloat:
		return "float"
	case UniformVec2:
		return "vec2"
	case UniformVec3:
		return "vec3"
	case UniformVec4:
		return "vec4"
	case UniformInt:
		return "int"
	case UniformIVec2:
		return "ivec2"
	case UniformIVec3:
		return "ivec3"
	case UniformIVec4:
		return "ivec4"
	case UniformUint:
		return "uint"
	case UniformUVec2:
		return "uvec2"
	case UniformUVec3:
		return "uvec3"
	case UniformUVec4:
		return "uvec4"
	case UniformBool:
		return "bool"
	case UniformMat2:
		return "mat2"
	case UniformMat3:
		return "mat3"
	case UniformMat4:
		return "mat4"
	case UniformSampler2D:
		return "sampler2D"
	case UniformSampler3D:
		return "sampler3D"
	case UniformSamplerCube:
		return "samplerCube"
	}
	return "unknown"
}

// ActiveUniform describes one uniform the linker retained as active.
// Size is the array length; scalars report 1.
type ActiveUniform struct {
	Name string
	Size int
	Type UniformType
}

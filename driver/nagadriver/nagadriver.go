// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package nagadriver implements the shader driver contract in pure Go
// over gogpu/naga, with WGSL stage sources.
//
// The driver needs no GPU and no window system, which makes it usable
// for headless validation and CI. Stage sources are parsed and lowered
// to IR with naga, then fully translated to surface the same errors a
// GPU driver would report; the compiler/translator error text is the
// compile log.
//
// Two deviations from a GL-style context, both inherent to WGSL:
//
//   - Only vertex and fragment stages exist. Compiling a tessellation
//     or geometry stage fails with an explanatory log.
//   - Uniform activeness is declaration-based. WGSL resource bindings
//     are not pruned by a GL-style linker, so every uniform-space
//     global of a linked module is reported active.
package nagadriver

import (
	"fmt"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/wgsl"

	"github.com/gogpu/shader/driver"
)

func init() {
	driver.Register("naga", func() (driver.Context, error) {
		return New(), nil
	})
}

// Context implements driver.Context with in-memory object tables.
// Like any driver context it is not safe for concurrent use.
type Context struct {
	nextID   uint64
	stages   map[driver.Stage]*stageObject
	programs map[driver.Program]*programObject
	current  driver.Program
}

type stageObject struct {
	kind   driver.StageKind
	module *ir.Module
	ok     bool
	log    string
}

type programObject struct {
	attached  []driver.Stage
	linked    bool
	log       string
	uniforms  []driver.ActiveUniform
	locations map[string]int32
}

// New returns an empty Context.
func New() *Context {
	return &Context{
		nextID:   1,
		stages:   make(map[driver.Stage]*stageObject),
		programs: make(map[driver.Program]*programObject),
	}
}

func (c *Context) CreateProgram() (driver.Program, error) {
	id := driver.Program(c.nextID)
	c.nextID++
	c.programs[id] = &programObject{}
	return id, nil
}

func (c *Context) DeleteProgram(p driver.Program) {
	delete(c.programs, p)
	if c.current == p {
		c.current = driver.InvalidID
	}
}

func (c *Context) CreateStage(kind driver.StageKind) (driver.Stage, error) {
	id := driver.Stage(c.nextID)
	c.nextID++
	c.stages[id] = &stageObject{kind: kind}
	return id, nil
}

func (c *Context) DeleteStage(s driver.Stage) {
	delete(c.stages, s)
}

func (c *Context) CompileStage(s driver.Stage, source string) {
	st := c.stages[s]
	if st == nil {
		return
	}
	st.module, st.ok, st.log = nil, false, ""

	if st.kind != driver.StageVertex && st.kind != driver.StageFragment {
		st.log = fmt.Sprintf("nagadriver: %s stages are not expressible in WGSL", st.kind)
		return
	}

	ast, err := naga.Parse(source)
	if err != nil {
		st.log = err.Error()
		return
	}
	module, err := wgsl.Lower(ast)
	if err != nil {
		st.log = err.Error()
		return
	}
	// Run the full translation too; it catches validation errors the
	// parser alone does not.
	if _, err := naga.Compile(source); err != nil {
		st.log = err.Error()
		return
	}
	st.module = module
	st.ok = true
}

func (c *Context) CompileStatus(s driver.Stage) bool {
	st := c.stages[s]
	return st != nil && st.ok
}

func (c *Context) CompileLog(s driver.Stage) string {
	st := c.stages[s]
	if st == nil {
		return ""
	}
	return st.log
}

func (c *Context) AttachStage(p driver.Program, s driver.Stage) {
	if po := c.programs[p]; po != nil {
		po.attached = append(po.attached, s)
	}
}

func (c *Context) DetachStage(p driver.Program, s driver.Stage) {
	po := c.programs[p]
	if po == nil {
		return
	}
	for i, id := range po.attached {
		if id == s {
			po.attached = append(po.attached[:i], po.attached[i+1:]...)
			return
		}
	}
}

// LinkProgram checks that every attached stage compiled and declares
// an entry point of its stage kind, then merges the stages'
// uniform-space globals into the program's active-uniform table with
// sequential locations. Same-named globals must agree across stages.
func (c *Context) LinkProgram(p driver.Program) {
	po := c.programs[p]
	if po == nil {
		return
	}
	po.linked, po.log, po.uniforms, po.locations = false, "", nil, nil

	var problems []string
	seen := make(map[string]driver.ActiveUniform)
	var order []string

	for _, sid := range po.attached {
		st := c.stages[sid]
		if st == nil || !st.ok {
			problems = append(problems, "attached stage is not a compiled stage object")
			continue
		}
		if !hasEntryPoint(st.module, st.kind) {
			problems = append(problems,
				fmt.Sprintf("%s stage declares no @%s entry point", st.kind, wgslStageAttr(st.kind)))
		}
		for _, au := range moduleUniforms(st.module) {
			prev, ok := seen[au.Name]
			if !ok {
				seen[au.Name] = au
				order = append(order, au.Name)
				continue
			}
			if prev.Type != au.Type || prev.Size != au.Size {
				problems = append(problems,
					fmt.Sprintf("global %q is declared with mismatched types across stages", au.Name))
			}
		}
	}

	if len(problems) > 0 {
		po.log = strings.Join(problems, "\n")
		return
	}

	po.locations = make(map[string]int32, len(order))
	for i, name := range order {
		po.uniforms = append(po.uniforms, seen[name])
		po.locations[name] = int32(i)
	}
	po.linked = true
}

func (c *Context) LinkStatus(p driver.Program) bool {
	po := c.programs[p]
	return po != nil && po.linked
}

func (c *Context) LinkLog(p driver.Program) string {
	po := c.programs[p]
	if po == nil {
		return ""
	}
	return po.log
}

func (c *Context) ActiveUniformCount(p driver.Program) int {
	po := c.programs[p]
	if po == nil || !po.linked {
		return 0
	}
	return len(po.uniforms)
}

func (c *Context) ActiveUniform(p driver.Program, index int) driver.ActiveUniform {
	po := c.programs[p]
	if po == nil || index < 0 || index >= len(po.uniforms) {
		return driver.ActiveUniform{}
	}
	return po.uniforms[index]
}

func (c *Context) UniformLocation(p driver.Program, name string) int32 {
	po := c.programs[p]
	if po == nil {
		return -1
	}
	loc, ok := po.locations[name]
	if !ok {
		return -1
	}
	return loc
}

func (c *Context) UseProgram(p driver.Program) {
	c.current = p
}

// Current returns the program last passed to UseProgram.
// Useful for tests and diagnostics.
func (c *Context) Current() driver.Program {
	return c.current
}

func hasEntryPoint(m *ir.Module, kind driver.StageKind) bool {
	want := ir.StageVertex
	if kind == driver.StageFragment {
		want = ir.StageFragment
	}
	for _, ep := range m.EntryPoints {
		if ep.Stage == want {
			return true
		}
	}
	return false
}

func wgslStageAttr(kind driver.StageKind) string {
	if kind == driver.StageFragment {
		return "fragment"
	}
	return "vertex"
}

// moduleUniforms extracts the module's uniform-space globals as active
// uniforms. Struct-typed uniform blocks are expanded into one entry
// per member, reported as "block.member" the way a GL linker reports
// block members.
func moduleUniforms(m *ir.Module) []driver.ActiveUniform {
	var out []driver.ActiveUniform
	for _, gv := range m.GlobalVariables {
		if gv.Space != ir.SpaceUniform && gv.Space != ir.SpaceHandle {
			continue
		}
		inner := typeInner(m, gv.Type)
		if st, ok := inner.(ir.StructType); ok {
			for _, member := range st.Members {
				out = append(out, driver.ActiveUniform{
					Name: gv.Name + "." + member.Name,
					Size: 1,
					Type: classify(typeInner(m, member.Type)),
				})
			}
			continue
		}
		out = append(out, driver.ActiveUniform{
			Name: gv.Name,
			Size: 1,
			Type: classify(inner),
		})
	}
	return out
}

func typeInner(m *ir.Module, h ir.TypeHandle) any {
	if int(h) < 0 || int(h) >= len(m.Types) {
		return nil
	}
	return m.Types[int(h)].Inner
}

// classify maps a naga IR type to the driver's uniform classification.
// Types with no GL-style analogue report UniformUnknown; the entry
// still carries its name and location.
func classify(inner any) driver.UniformType {
	switch t := inner.(type) {
	case ir.ScalarType:
		switch t.Kind {
		case ir.ScalarFloat:
			return driver.UniformFloat
		case ir.ScalarSint:
			return driver.UniformInt
		case ir.ScalarUint:
			return driver.UniformUint
		}
	case ir.VectorType:
		return vectorType(t)
	case ir.MatrixType:
		if t.Columns == t.Rows {
			switch t.Columns {
			case 2:
				return driver.UniformMat2
			case 3:
				return driver.UniformMat3
			case 4:
				return driver.UniformMat4
			}
		}
	case ir.ImageType:
		if t.Dim == ir.Dim2D {
			return driver.UniformSampler2D
		}
	}
	return driver.UniformUnknown
}

func vectorType(t ir.VectorType) driver.UniformType {
	switch t.Scalar.Kind {
	case ir.ScalarFloat:
		switch t.Size {
		case ir.Vec2:
			return driver.UniformVec2
		case ir.Vec3:
			return driver.UniformVec3
		case ir.Vec4:
			return driver.UniformVec4
		}
	case ir.ScalarSint:
		switch t.Size {
		case ir.Vec2:
			return driver.UniformIVec2
		case ir.Vec3:
			return driver.UniformIVec3
		case ir.Vec4:
			return driver.UniformIVec4
		}
	case ir.ScalarUint:
		switch t.Size {
		case ir.Vec2:
			return driver.UniformUVec2
		case ir.Vec3:
			return driver.UniformUVec3
		case ir.Vec4:
			return driver.UniformUVec4
		}
	}
	return driver.UniformUnknown
}

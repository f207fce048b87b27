// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"github.com/gogpu/shader/driver"
)

// Device compiles stage sources into programs for one graphics context
// and tracks that context's currently bound program so redundant
// activations are elided.
//
// Two policies satisfy Device, selected once at configuration time:
// Open wraps a real driver.Context, Disabled is fully inert. The
// interface is sealed; host code picks a policy, it does not implement
// one.
//
// A Device must be used from the goroutine that holds its context's
// OS thread.
type Device interface {
	// NewShader compiles every present stage in src, links them into a
	// program, and builds the active-uniform table. On any failure no
	// Shader is produced and every intermediate GPU object is released.
	// Fails with ErrNoSources, *CompileError, or *LinkError.
	NewShader(src SourceSet) (Shader, error)

	// Enabled reports whether this device performs real GPU work.
	Enabled() bool

	bind(p *program)
	isBound(p *program) bool
	destroy(p *program)
}

// Open returns a Device backed by ctx.
func Open(ctx driver.Context) Device {
	return &gpuDevice{ctx: ctx}
}

// Disabled returns the inert Device: construction always succeeds with
// an empty uniform table and never touches a graphics context, Bind is
// a no-op, IsBound is always false, and every lookup is null.
func Disabled() Device {
	return nullDevice{}
}

// OpenDefault opens the named registered driver and wraps it in the
// configured policy. Under the noshaders build tag the driver is not
// consulted and the inert Device is returned.
func OpenDefault(name string) (Device, error) {
	if !Enabled {
		return Disabled(), nil
	}
	ctx, err := driver.Open(name)
	if err != nil {
		return nil, err
	}
	return Open(ctx), nil
}

// gpuDevice is the real policy. bound is context state: it records the
// program last activated on this device's graphics context.
type gpuDevice struct {
	ctx   driver.Context
	bound driver.Program
}

func (d *gpuDevice) Enabled() bool { return true }

func (d *gpuDevice) NewShader(src SourceSet) (Shader, error) {
	if src.Empty() {
		return Shader{}, ErrNoSources
	}

	prog, err := d.ctx.CreateProgram()
	if err != nil {
		return Shader{}, err
	}

	var (
		ok       bool
		stages   []driver.Stage
		attached []driver.Stage
	)
	// Stage objects are transient: whether construction succeeds or
	// fails, every created stage is detached and deleted, and on
	// failure the program goes with them.
	defer func() {
		for _, s := range attached {
			d.ctx.DetachStage(prog, s)
		}
		for _, s := range stages {
			d.ctx.DeleteStage(s)
		}
		if !ok {
			d.ctx.DeleteProgram(prog)
		}
	}()

	for _, st := range src.stages() {
		id, err := d.ctx.CreateStage(st.kind)
		if err != nil {
			return Shader{}, err
		}
		stages = append(stages, id)

		d.ctx.CompileStage(id, st.source)
		if !d.ctx.CompileStatus(id) {
			return Shader{}, &CompileError{
				Stage:  st.kind,
				Source: st.source,
				Log:    d.ctx.CompileLog(id),
			}
		}
	}

	for _, s := range stages {
		d.ctx.AttachStage(prog, s)
		attached = append(attached, s)
	}
	d.ctx.LinkProgram(prog)
	if !d.ctx.LinkStatus(prog) {
		return Shader{}, &LinkError{Log: d.ctx.LinkLog(prog)}
	}

	// Stage cleanup precedes introspection so the program is complete
	// before it is considered usable.
	for _, s := range attached {
		d.ctx.DetachStage(prog, s)
	}
	for _, s := range stages {
		d.ctx.DeleteStage(s)
	}
	attached, stages = nil, nil

	p := &program{
		dev:      d,
		id:       prog,
		uniforms: d.introspect(prog),
	}
	p.refs.Store(1)
	ok = true
	return Shader{p: p}, nil
}

// introspect builds the active-uniform table. Runs exactly once per
// successful link; the table is immutable afterwards.
func (d *gpuDevice) introspect(prog driver.Program) map[string]*UniformDesc {
	n := d.ctx.ActiveUniformCount(prog)
	uniforms := make(map[string]*UniformDesc, n)
	for i := 0; i < n; i++ {
		au := d.ctx.ActiveUniform(prog, i)
		uniforms[au.Name] = &UniformDesc{
			ActiveUniform: au,
			Location:      d.ctx.UniformLocation(prog, au.Name),
		}
	}
	return uniforms
}

func (d *gpuDevice) bind(p *program) {
	if d.bound == p.id {
		return
	}
	d.ctx.UseProgram(p.id)
	d.bound = p.id
}

func (d *gpuDevice) isBound(p *program) bool {
	return d.bound == p.id
}

func (d *gpuDevice) destroy(p *program) {
	// Clear the tracker if it names the dying program, so a recycled
	// ID cannot have its first bind elided.
	if d.bound == p.id {
		d.bound = driver.InvalidID
	}
	d.ctx.DeleteProgram(p.id)
}

// nullDevice is the disabled policy.
type nullDevice struct{}

func (nullDevice) Enabled() bool { return false }

func (nullDevice) NewShader(SourceSet) (Shader, error) {
	p := &program{dev: nullDevice{}}
	p.refs.Store(1)
	return Shader{p: p}, nil
}

func (nullDevice) bind(*program)         {}
func (nullDevice) isBound(*program) bool { return false }
func (nullDevice) destroy(*program)      {}

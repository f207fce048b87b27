// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import "github.com/gogpu/shader/driver"

// SourceSet holds the source text for up to five pipeline stages.
// An empty string means the stage is absent. At least one stage must
// be present for NewShader to accept the set.
type SourceSet struct {
	Vertex      string
	TessControl string
	TessEval    string
	Geometry    string
	Fragment    string
}

// Empty reports whether no stage source is present.
func (s SourceSet) Empty() bool {
	return s.Count() == 0
}

// Count returns the number of present stages.
func (s SourceSet) Count() int {
	return len(s.stages())
}

type stageSource struct {
	kind   driver.StageKind
	source string
}

// stages returns the present stages in pipeline order.
func (s SourceSet) stages() []stageSource {
	all := [driver.StageCount]string{
		driver.StageVertex:      s.Vertex,
		driver.StageTessControl: s.TessControl,
		driver.StageTessEval:    s.TessEval,
		driver.StageGeometry:    s.Geometry,
		driver.StageFragment:    s.Fragment,
	}

	var out []stageSource
	for kind, src := range all {
		if src != "" {
			out = append(out, stageSource{kind: driver.StageKind(kind), source: src})
		}
	}
	return out
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"testing"

	"github.com/gogpu/shader/driver"
)

func TestSourceSetStages(t *testing.T) {
	tests := []struct {
		name string
		set  SourceSet
		want []driver.StageKind
	}{
		{
			name: "empty",
			set:  SourceSet{},
			want: nil,
		},
		{
			name: "vertex and fragment",
			set:  SourceSet{Vertex: "v", Fragment: "f"},
			want: []driver.StageKind{driver.StageVertex, driver.StageFragment},
		},
		{
			name: "all five in pipeline order",
			set:  SourceSet{Vertex: "v", TessControl: "tc", TessEval: "te", Geometry: "g", Fragment: "f"},
			want: []driver.StageKind{
				driver.StageVertex, driver.StageTessControl, driver.StageTessEval,
				driver.StageGeometry, driver.StageFragment,
			},
		},
		{
			name: "fragment only",
			set:  SourceSet{Fragment: "f"},
			want: []driver.StageKind{driver.StageFragment},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.set.stages()
			if len(got) != len(tt.want) {
				t.Fatalf("stages() returned %d stages, want %d", len(got), len(tt.want))
			}
			for i, st := range got {
				if st.kind != tt.want[i] {
					t.Errorf("stages()[%d].kind = %v, want %v", i, st.kind, tt.want[i])
				}
			}
			if tt.set.Count() != len(tt.want) {
				t.Errorf("Count() = %d, want %d", tt.set.Count(), len(tt.want))
			}
			if tt.set.Empty() != (len(tt.want) == 0) {
				t.Errorf("Empty() = %v", tt.set.Empty())
			}
		})
	}
}

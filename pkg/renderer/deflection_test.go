package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

func TestTraceDeflections_MirrorChain(t *testing.T) {
	// Two facing mirrors with the light out of the way: the trace records
	// exactly maxDeflections mirror segments with 0.92 retention each
	s := buildPathScene(t, func(c *scene.Config) {
		c.Light.Position = []float64{4, 5, 4}
		c.Mirrors = []scene.MirrorConfig{
			{Position: []float64{0, 3, 0}, Normal: []float64{0, 0, 1}},
			{Position: []float64{0, 3, 4}, Normal: []float64{0, 0, -1}},
		}
	})

	segments := TraceDeflections(s, core.NewVec3(0, 3, 2), core.NewVec3(0, 0, -1), 3)

	if len(segments) != 3 {
		t.Fatalf("Expected 3 segments, got %d", len(segments))
	}
	expectedEnergies := []float64{1.0, 0.92, 0.92 * 0.92}
	for i, seg := range segments {
		if seg.Material != MaterialMirror {
			t.Errorf("Segment %d: expected material %q, got %q", i, MaterialMirror, seg.Material)
		}
		if math.Abs(seg.Energy-expectedEnergies[i]) > 1e-9 {
			t.Errorf("Segment %d: expected energy %f, got %f", i, expectedEnergies[i], seg.Energy)
		}
	}
}

func TestTraceDeflections_LightTerminates(t *testing.T) {
	s := buildPathScene(t, func(c *scene.Config) {
		c.Mirrors = []scene.MirrorConfig{
			{Position: []float64{0, 1, 0}, Normal: []float64{0, 1, 0}},
		}
	})

	segments := TraceDeflections(s, core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0), 6)

	if len(segments) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(segments))
	}
	if segments[0].Material != MaterialMirror || segments[1].Material != MaterialLight {
		t.Errorf("Expected mirror then light, got %q then %q",
			segments[0].Material, segments[1].Material)
	}
	if math.Abs(segments[1].Energy-0.92) > 1e-9 {
		t.Errorf("Expected 0.92 after one mirror deflection, got %f", segments[1].Energy)
	}
}

func TestTraceDeflections_HumanReflectsAtReducedEnergy(t *testing.T) {
	// Deflection traces let humans reflect at 0.70 retention so the path
	// continues past them
	s := buildPathScene(t, func(c *scene.Config) {
		c.Light.Position = []float64{4, 5, 4}
		c.HumanModels = []scene.HumanConfig{
			{Position: []float64{0, 0, 0}, Color: []float64{0.8, 0.6, 0.5}},
		}
	})

	segments := TraceDeflections(s, core.NewVec3(0, 0.6, 5), core.NewVec3(0, 0, -1), 2)

	if len(segments) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(segments))
	}
	if segments[0].Material != MaterialHuman {
		t.Errorf("Expected first material %q, got %q", MaterialHuman, segments[0].Material)
	}
	if segments[1].Material != MaterialWall {
		t.Errorf("Expected second material %q, got %q", MaterialWall, segments[1].Material)
	}
	if math.Abs(segments[1].Energy-0.70) > 1e-9 {
		t.Errorf("Expected 0.70 after the human deflection, got %f", segments[1].Energy)
	}
}

func TestTraceDeflections_EscapeToSky(t *testing.T) {
	s := buildPathScene(t, nil)

	segments := TraceDeflections(s, core.NewVec3(100, 100, 100), core.NewVec3(0, 1, 0), 6)

	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if segments[0].Material != MaterialSky {
		t.Errorf("Expected material %q, got %q", MaterialSky, segments[0].Material)
	}
	expectedEnd := core.NewVec3(100, 200, 100)
	if segments[0].End.Subtract(expectedEnd).Length() > 1e-9 {
		t.Errorf("Expected escape endpoint %v, got %v", expectedEnd, segments[0].End)
	}
}

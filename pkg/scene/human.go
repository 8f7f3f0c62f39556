package scene

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

// HumanFigure is an articulated figure built from 14 rigid primitives:
// head, torso, upper arms, forearms, thighs, shins, hands and feet.
// Local offsets are rotated by the figure's yaw, scaled uniformly, and
// translated to the base position. Always diffuse.
type HumanFigure struct {
	Position core.Vec3
	Scale    float64
	Rotation float64 // Yaw in degrees
	Color    core.Vec3
	parts    []figurePart
}

type figurePart struct {
	shape geometry.Shape
	part  Part
}

// NewHumanFigure creates a figure from its configuration. The rotated and
// translated primitives are derived once here; the figure is immutable.
func NewHumanFigure(cfg HumanConfig) HumanFigure {
	position := toVec3(cfg.Position)

	scale := 1.0
	if cfg.Scale != nil {
		scale = *cfg.Scale
	}

	radians := cfg.Rotation * math.Pi / 180.0
	cosR := math.Cos(radians)
	sinR := math.Sin(radians)

	// Rotate a local offset around the vertical axis, then translate
	place := func(x, y, z float64) core.Vec3 {
		return core.NewVec3(
			position.X+x*cosR-z*sinR,
			position.Y+y,
			position.Z+x*sinR+z*cosR,
		)
	}
	sphere := func(part Part, x, y, z, radius float64) figurePart {
		return figurePart{geometry.NewSphere(place(x*scale, y*scale, z*scale), radius*scale), part}
	}
	cylinder := func(part Part, x, y, z, radius, height float64) figurePart {
		return figurePart{geometry.NewCylinder(place(x*scale, y*scale, z*scale), radius*scale, height*scale), part}
	}

	parts := []figurePart{
		sphere(PartHead, 0, 1.1, 0, 0.15),
		cylinder(PartTorso, 0, 0.4, 0, 0.25, 0.8),
		sphere(PartArm, -0.35, 0.5, 0, 0.1),  // left upper arm
		sphere(PartArm, -0.5, 0.2, 0, 0.08),  // left forearm
		sphere(PartArm, 0.35, 0.5, 0, 0.1),   // right upper arm
		sphere(PartArm, 0.5, 0.2, 0, 0.08),   // right forearm
		cylinder(PartLeg, -0.15, -0.2, 0, 0.12, 0.4), // left thigh
		cylinder(PartLeg, -0.15, -0.6, 0, 0.1, 0.4),  // left shin
		cylinder(PartLeg, 0.15, -0.2, 0, 0.12, 0.4),  // right thigh
		cylinder(PartLeg, 0.15, -0.6, 0, 0.1, 0.4),   // right shin
		sphere(PartHand, -0.65, 0.05, 0, 0.07),
		sphere(PartHand, 0.65, 0.05, 0, 0.07),
		sphere(PartFoot, -0.15, -0.9, 0.1, 0.08),
		sphere(PartFoot, 0.15, -0.9, 0.1, 0.08),
	}

	return HumanFigure{
		Position: position,
		Scale:    scale,
		Rotation: cfg.Rotation,
		Color:    toVec3(cfg.Color),
		parts:    parts,
	}
}

// Intersect tests all 14 primitives and returns the nearest hit tagged
// by body-part category
func (h *HumanFigure) Intersect(ray core.Ray) (*core.HitRecord, Part, bool) {
	var nearest *core.HitRecord
	var part Part

	for _, p := range h.parts {
		if hit, ok := p.shape.Hit(ray); ok && (nearest == nil || hit.T < nearest.T) {
			nearest = hit
			part = p.part
		}
	}

	if nearest == nil {
		return nil, "", false
	}
	return nearest, part, true
}

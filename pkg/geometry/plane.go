package geometry

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3
	Normal core.Vec3 // Normalized at construction
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3) Plane {
	return Plane{Point: point, Normal: normal.Normalize()}
}

// Hit tests if a ray intersects with the plane
func (p Plane) Hit(ray core.Ray) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray is parallel (or degenerate) with respect to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < MinHitDistance {
		return nil, false
	}

	return &core.HitRecord{
		T:      t,
		Point:  ray.At(t),
		Normal: p.Normal,
	}, true
}

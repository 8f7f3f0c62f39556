package geometry

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// Cylinder represents a finite vertical cylinder (open-ended, no caps).
// The surface spans heights [Base.Y, Base.Y+Height].
type Cylinder struct {
	Base   core.Vec3 // Axis reference point at the bottom of the height window
	Radius float64
	Height float64
}

// NewCylinder creates a new vertical cylinder
func NewCylinder(base core.Vec3, radius, height float64) Cylinder {
	return Cylinder{Base: base, Radius: radius, Height: height}
}

// Hit tests if a ray intersects with the cylinder. The quadratic is solved
// in the horizontal XZ projection only; vertical rays miss.
func (c Cylinder) Hit(ray core.Ray) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(c.Base)

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if math.Abs(a) < 1e-8 {
		return nil, false
	}

	b := 2.0 * (oc.X*ray.Direction.X + oc.Z*ray.Direction.Z)
	cc := oc.X*oc.X + oc.Z*oc.Z - c.Radius*c.Radius

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)

	// Accept the first root (near then far) inside the height window
	for _, t := range [2]float64{t0, t1} {
		if t < MinHitDistance {
			continue
		}
		point := ray.At(t)
		yRel := point.Y - c.Base.Y
		if yRel < 0 || yRel > c.Height {
			continue
		}
		// Radial normal, horizontal component only
		normal := core.NewVec3(point.X-c.Base.X, 0, point.Z-c.Base.Z).Normalize()
		return &core.HitRecord{T: t, Point: point, Normal: normal}, true
	}

	return nil, false
}

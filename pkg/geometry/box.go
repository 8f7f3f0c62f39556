package geometry

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// Box represents an axis-aligned box defined by its min and max corners
type Box struct {
	Min core.Vec3
	Max core.Vec3
}

// NewBox creates a new axis-aligned box from its corners
func NewBox(minCorner, maxCorner core.Vec3) Box {
	return Box{Min: minCorner, Max: maxCorner}
}

// NewBoxAround creates an axis-aligned box from a center and full size
func NewBoxAround(center, size core.Vec3) Box {
	half := size.Multiply(0.5)
	return Box{Min: center.Subtract(half), Max: center.Add(half)}
}

// invComponent returns 1/d, substituting a large finite value for
// near-zero direction components so the slab method never divides by zero.
func invComponent(d float64) float64 {
	if math.Abs(d) > 1e-8 {
		return 1.0 / d
	}
	return 1e8
}

// Hit tests if a ray intersects with the box using the slab method.
// When the ray origin is inside the box, the exit face is reported.
func (b Box) Hit(ray core.Ray) (*core.HitRecord, bool) {
	if ray.Direction.LengthSquared() == 0 {
		return nil, false
	}

	inv := core.NewVec3(
		invComponent(ray.Direction.X),
		invComponent(ray.Direction.Y),
		invComponent(ray.Direction.Z),
	)

	t0 := b.Min.Subtract(ray.Origin).MultiplyVec(inv)
	t1 := b.Max.Subtract(ray.Origin).MultiplyVec(inv)

	tMin := max(min(t0.X, t1.X), min(t0.Y, t1.Y), min(t0.Z, t1.Z))
	tMax := min(max(t0.X, t1.X), max(t0.Y, t1.Y), max(t0.Z, t1.Z))

	if tMax < 0 || tMin > tMax {
		return nil, false
	}

	// Entry point if it clears the epsilon, otherwise the exit point
	// (handles rays starting inside the box)
	tHit := tMin
	if tHit < MinHitDistance {
		tHit = tMax
	}
	if tHit < MinHitDistance {
		return nil, false
	}

	point := ray.At(tHit)
	return &core.HitRecord{
		T:      tHit,
		Point:  point,
		Normal: b.faceNormal(point),
	}, true
}

// faceNormal determines which axis-aligned face contains the hit point.
// Faces are checked in -X, +X, -Y, +Y, -Z order with +Z as the default.
func (b Box) faceNormal(point core.Vec3) core.Vec3 {
	const eps = 1e-4
	switch {
	case math.Abs(point.X-b.Min.X) < eps:
		return core.NewVec3(-1, 0, 0)
	case math.Abs(point.X-b.Max.X) < eps:
		return core.NewVec3(1, 0, 0)
	case math.Abs(point.Y-b.Min.Y) < eps:
		return core.NewVec3(0, -1, 0)
	case math.Abs(point.Y-b.Max.Y) < eps:
		return core.NewVec3(0, 1, 0)
	case math.Abs(point.Z-b.Min.Z) < eps:
		return core.NewVec3(0, 0, -1)
	default:
		return core.NewVec3(0, 0, 1)
	}
}

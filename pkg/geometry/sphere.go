package geometry

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Hit tests if a ray intersects with the sphere
func (s Sphere) Hit(ray core.Ray) (*core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a < 1e-12 {
		// Degenerate direction
		return nil, false
	}
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)

	// Prefer the near root, fall back to the far root
	var t float64
	switch {
	case t0 > MinHitDistance:
		t = t0
	case t1 > MinHitDistance:
		t = t1
	default:
		return nil, false
	}

	point := ray.At(t)
	return &core.HitRecord{
		T:      t,
		Point:  point,
		Normal: point.Subtract(s.Center).Normalize(),
	}, true
}

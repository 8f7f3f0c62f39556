package geometry

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// MinHitDistance is the minimum ray parameter accepted by all intersectors.
// Hits closer than this are rejected to avoid self-intersection.
const MinHitDistance = 1e-4

// Shape is anything a ray can intersect. Intersectors are exposed as
// standalone shapes so alternate front ends (ray-path overlays, deflection
// validators) can run their own bounce loops on the same geometric tests.
type Shape interface {
	Hit(ray core.Ray) (*core.HitRecord, bool)
}

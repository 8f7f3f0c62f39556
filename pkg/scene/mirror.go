package scene

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

// DefaultReflectivity is used when a mirror's reflectivity is unspecified
const DefaultReflectivity = 0.95

// Mirror is a planar mirror. Size is carried from the configuration but
// not used for bounds clipping: any hit on the infinite plane counts.
type Mirror struct {
	Position     core.Vec3
	Normal       core.Vec3
	Size         core.Vec3
	Reflectivity float64
	plane        geometry.Plane
}

// NewMirror creates a mirror from its configuration, normalizing the
// plane normal and applying the default reflectivity
func NewMirror(cfg MirrorConfig) Mirror {
	position := toVec3(cfg.Position)
	normal := toVec3(cfg.Normal).Normalize()

	reflectivity := DefaultReflectivity
	if cfg.Reflectivity != nil {
		reflectivity = *cfg.Reflectivity
	}

	size := core.Vec3{}
	if len(cfg.Size) == 3 {
		size = toVec3(cfg.Size)
	}

	return Mirror{
		Position:     position,
		Normal:       normal,
		Size:         size,
		Reflectivity: reflectivity,
		plane:        geometry.NewPlane(position, normal),
	}
}

// Intersect tests the ray against the mirror plane
func (m *Mirror) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	return m.plane.Hit(ray)
}

package scene

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

// Light is the single point light of the scene. The radius gives it a
// visible emissive sphere and an exclusion band for shadow rays.
type Light struct {
	Position  core.Vec3
	Radius    float64
	Intensity core.Vec3
	Sphere    geometry.Sphere
}

// NewLight creates a light from its configuration
func NewLight(cfg LightConfig) Light {
	position := toVec3(cfg.Position)
	return Light{
		Position:  position,
		Radius:    cfg.Radius,
		Intensity: toVec3(cfg.Intensity),
		Sphere:    geometry.NewSphere(position, cfg.Radius),
	}
}

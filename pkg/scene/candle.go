package scene

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

// Candle defaults, applied when the configuration leaves fields unset
const (
	defaultCandleHeight = 1.5
	defaultCandleRadius = 0.2
	flameOffset         = 0.15
	flameRadius         = 0.12
)

// Candle is a wax cylinder with an emissive flame sphere above it.
// The flame terminates tracing with its intensity; the body shades as wax.
type Candle struct {
	Position       core.Vec3
	Height         float64
	Radius         float64
	WaxColor       core.Vec3
	FlameIntensity core.Vec3
	body           geometry.Cylinder
	flame          geometry.Sphere
}

// NewCandle creates a candle from its configuration
func NewCandle(cfg CandleConfig) Candle {
	position := toVec3(cfg.Position)

	height := defaultCandleHeight
	if cfg.Height != nil {
		height = *cfg.Height
	}
	radius := defaultCandleRadius
	if cfg.Radius != nil {
		radius = *cfg.Radius
	}

	waxColor := core.NewVec3(0.9, 0.9, 0.95)
	if len(cfg.WaxColor) == 3 {
		waxColor = toVec3(cfg.WaxColor)
	}
	flameIntensity := core.NewVec3(8.0, 6.0, 4.0)
	if len(cfg.FlameIntensity) == 3 {
		flameIntensity = toVec3(cfg.FlameIntensity)
	}

	bodyBase := position.Add(core.NewVec3(0, height*0.5, 0))
	flameCenter := position.Add(core.NewVec3(0, height+flameOffset, 0))

	return Candle{
		Position:       position,
		Height:         height,
		Radius:         radius,
		WaxColor:       waxColor,
		FlameIntensity: flameIntensity,
		body:           geometry.NewCylinder(bodyBase, radius, height),
		flame:          geometry.NewSphere(flameCenter, flameRadius),
	}
}

// Intersect tests the body cylinder and flame sphere independently and
// returns the nearest hit tagged by part
func (c *Candle) Intersect(ray core.Ray) (*core.HitRecord, Part, bool) {
	var nearest *core.HitRecord
	var part Part

	if hit, ok := c.body.Hit(ray); ok {
		nearest = hit
		part = PartCandleBody
	}
	if hit, ok := c.flame.Hit(ray); ok && (nearest == nil || hit.T < nearest.T) {
		nearest = hit
		part = PartCandleFlame
	}

	if nearest == nil {
		return nil, "", false
	}
	return nearest, part, true
}

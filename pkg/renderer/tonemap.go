package renderer

import "github.com/df07/go-mirror-raytracer/pkg/core"

// DefaultGamma is the display gamma applied after tone mapping
const DefaultGamma = 2.2

// ToneMapReinhard compresses HDR radiance into [0, 1) per channel
func ToneMapReinhard(c core.Vec3) core.Vec3 {
	return core.NewVec3(
		c.X/(1.0+c.X),
		c.Y/(1.0+c.Y),
		c.Z/(1.0+c.Z),
	)
}

// GammaEncode clamps a tone-mapped color and applies display gamma
func GammaEncode(c core.Vec3) core.Vec3 {
	return c.Clamp(0, 1).GammaCorrect(DefaultGamma)
}

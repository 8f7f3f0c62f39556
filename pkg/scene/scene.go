package scene

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// Transport constants. These calibrate the renderer's look and are part
// of its observable contract.
const (
	minEnergy           = 0.005 // Rays below this energy terminate
	lightBoost          = 1.15  // Emission boost when a ray hits the light sphere
	mirrorEfficiency    = 0.92  // Energy retained per mirror bounce
	selfIntersectOffset = 1e-4  // Hit-point offset along the normal
	ambientTerm         = 0.1
	mediumAbsorption    = 0.02 // Exponential absorption per unit distance
	shadowSlack         = 1e-3 // Grazing slack at the light boundary
	fadeStartBounce     = 6    // Bounce count where the long-path fade begins
	fadeRate            = 0.25
)

// Background gradient endpoints, blended by the ray direction's Y component
var (
	backgroundBottom = core.NewVec3(0.1, 0.12, 0.15)
	backgroundTop    = core.NewVec3(0.3, 0.4, 0.5)
)

// Scene owns all renderable elements. It is immutable after construction,
// so concurrent per-pixel tracing needs no synchronization.
type Scene struct {
	Room    Room
	Light   Light
	Mirrors []Mirror
	Candles []Candle
	Humans  []HumanFigure
}

// NewScene validates the configuration and builds the immutable scene
func NewScene(cfg *Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Scene{
		Room:  NewRoom(*cfg.Room),
		Light: NewLight(*cfg.Light),
	}
	for _, m := range cfg.Mirrors {
		s.Mirrors = append(s.Mirrors, NewMirror(m))
	}
	for _, c := range cfg.Candles {
		s.Candles = append(s.Candles, NewCandle(c))
	}
	for _, h := range cfg.HumanModels {
		s.Humans = append(s.Humans, NewHumanFigure(h))
	}
	return s, nil
}

// Trace recursively evaluates the radiance arriving along a ray.
// Direction is expected normalized; bounce and energy accumulate across
// the recursion, starting at 0 and 1.0.
func (s *Scene) Trace(origin, direction core.Vec3, maxBounces, bounce int, energy float64) core.Vec3 {
	// Depth cap and energy cap, either may fire first
	if bounce >= maxBounces || energy < minEnergy {
		return core.Vec3{}
	}

	// Long paths fade out exponentially regardless of surface type,
	// on top of per-bounce mirror losses
	if bounce >= fadeStartBounce {
		energy *= math.Exp(-float64(bounce-fadeStartBounce) * fadeRate)
	}

	ray := core.NewRay(origin, direction)

	var (
		found        bool
		nearestT     float64
		nearestN     core.Vec3
		nearestColor core.Vec3
		reflectivity float64
	)

	// Room box is the baseline candidate
	if hit, ok := s.Room.Box.Hit(ray); ok {
		found = true
		nearestT = hit.T
		nearestN = hit.Normal
		nearestColor = s.Room.FaceColor(hit.Normal)
		reflectivity = 0
	}

	// Hitting the light sphere short-circuits with boosted emission
	if hit, ok := s.Light.Sphere.Hit(ray); ok && (!found || hit.T < nearestT) {
		return s.Light.Intensity.Multiply(lightBoost)
	}

	for i := range s.Mirrors {
		if hit, ok := s.Mirrors[i].Intersect(ray); ok && (!found || hit.T < nearestT) {
			found = true
			nearestT = hit.T
			nearestN = hit.Normal
			nearestColor = core.Vec3{}
			reflectivity = s.Mirrors[i].Reflectivity
		}
	}

	// A flame that is nearest-so-far terminates the scan immediately, even
	// if a later candle or human would be closer. Observable behavior; keep.
	for i := range s.Candles {
		hit, part, ok := s.Candles[i].Intersect(ray)
		if !ok || (found && hit.T >= nearestT) {
			continue
		}
		if part == PartCandleFlame {
			return s.Candles[i].FlameIntensity
		}
		found = true
		nearestT = hit.T
		nearestN = hit.Normal
		nearestColor = s.Candles[i].WaxColor
		reflectivity = 0
	}

	for i := range s.Humans {
		if hit, _, ok := s.Humans[i].Intersect(ray); ok && (!found || hit.T < nearestT) {
			found = true
			nearestT = hit.T
			nearestN = hit.Normal
			nearestColor = s.Humans[i].Color
			reflectivity = 0
		}
	}

	if !found {
		t := 0.5 * (direction.Y + 1.0)
		return backgroundBottom.Lerp(backgroundTop, t)
	}

	hitPoint := ray.At(nearestT)

	if reflectivity > 0.01 {
		reflected := direction.Reflect(nearestN)
		offsetOrigin := hitPoint.Add(nearestN.Multiply(selfIntersectOffset))

		// This bounce's attenuation goes into the recursive call while the
		// incoming energy scales the result again. The double application
		// is part of the calibrated transport model.
		reflectedColor := s.Trace(offsetOrigin, reflected, maxBounces, bounce+1, energy*mirrorEfficiency)
		return reflectedColor.Multiply(reflectivity * energy)
	}

	// Lambertian direct lighting with inverse-square falloff and medium
	// absorption, plus a fixed ambient term
	toLight := s.Light.Position.Subtract(hitPoint)
	distToLight := toLight.Length()
	lightDir := toLight.Normalize()
	shadowOrigin := hitPoint.Add(nearestN.Multiply(selfIntersectOffset))

	direct := 0.0
	if !s.occluded(core.NewRay(shadowOrigin, lightDir), distToLight) {
		nDotL := math.Min(1.0, math.Max(0.0, nearestN.Dot(lightDir)))
		distFactor := 1.0 / math.Max(0.1, distToLight*distToLight)
		direct = nDotL * distFactor * math.Exp(-distToLight*mediumAbsorption)
	}

	shade := s.Light.Intensity.Multiply(direct * energy).
		Add(core.NewVec3(ambientTerm, ambientTerm, ambientTerm))
	return nearestColor.MultiplyVec(shade)
}

// occluded runs the shadow tests in fixed order: light sphere (allowing a
// grazing band at the light's edge), room box, candles, then humans. The
// first positive test short-circuits the rest.
func (s *Scene) occluded(shadowRay core.Ray, distToLight float64) bool {
	if hit, ok := s.Light.Sphere.Hit(shadowRay); ok && hit.T < distToLight-s.Light.Radius-shadowSlack {
		return true
	}
	if hit, ok := s.Room.Box.Hit(shadowRay); ok && hit.T < distToLight {
		return true
	}
	for i := range s.Candles {
		if hit, _, ok := s.Candles[i].Intersect(shadowRay); ok && hit.T < distToLight {
			return true
		}
	}
	for i := range s.Humans {
		if hit, _, ok := s.Humans[i].Intersect(shadowRay); ok && hit.T < distToLight {
			return true
		}
	}
	return false
}

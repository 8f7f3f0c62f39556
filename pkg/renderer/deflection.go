package renderer

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// Energy retained per deflection, by surface type. Humans reflect here so
// a deflection trace can continue past them; the renderer treats them as
// fully diffuse.
const (
	mirrorRetention = 0.92
	humanRetention  = 0.70
	wallRetention   = 0.75

	humanDeflectionReflectivity = 0.3
)

// TraceDeflections follows a ray for exactly maxDeflections bounces,
// recording a labeled segment per straight run. Hitting the light or
// escaping the scene ends the trace early.
func TraceDeflections(s *scene.Scene, origin, direction core.Vec3, maxDeflections int) []RaySegment {
	var segments []RaySegment

	ro := origin
	rd := direction.Normalize()
	energy := 1.0
	deflections := 0

	for deflections < maxDeflections {
		ray := core.NewRay(ro, rd)

		var (
			found        bool
			nearestT     float64
			nearestN     core.Vec3
			material     string
			reflectivity float64
		)

		if hit, ok := s.Room.Box.Hit(ray); ok {
			found = true
			nearestT = hit.T
			nearestN = hit.Normal
			material = MaterialWall
			reflectivity = 0
		}

		if ro.Subtract(s.Light.Position).Length() > s.Light.Radius*lightProximityFactor {
			if hit, ok := s.Light.Sphere.Hit(ray); ok && (!found || hit.T < nearestT) {
				segments = append(segments, RaySegment{Start: ro, End: hit.Point, Energy: energy, Material: MaterialLight})
				return segments
			}
		}

		for i := range s.Mirrors {
			if hit, ok := s.Mirrors[i].Intersect(ray); ok && (!found || hit.T < nearestT) {
				found = true
				nearestT = hit.T
				nearestN = hit.Normal
				material = MaterialMirror
				reflectivity = s.Mirrors[i].Reflectivity
			}
		}

		for i := range s.Humans {
			if hit, _, ok := s.Humans[i].Intersect(ray); ok && (!found || hit.T < nearestT) {
				found = true
				nearestT = hit.T
				nearestN = hit.Normal
				material = MaterialHuman
				reflectivity = humanDeflectionReflectivity
			}
		}

		if !found {
			segments = append(segments, RaySegment{Start: ro, End: ray.At(escapeDistance), Energy: energy, Material: MaterialSky})
			return segments
		}

		hit := ray.At(nearestT)
		segments = append(segments, RaySegment{Start: ro, End: hit, Energy: energy, Material: material})

		var reflected core.Vec3
		switch {
		case reflectivity > 0.01:
			reflected = rd.Reflect(nearestN)
			if material == MaterialMirror {
				energy *= mirrorRetention
			} else if material == MaterialHuman {
				energy *= humanRetention
			}
		case material == MaterialWall:
			reflected = rd.Reflect(nearestN)
			energy *= wallRetention
		default:
			return segments
		}

		ro = hit.Add(nearestN.Multiply(surfaceOffset))
		rd = reflected
		deflections++

		// Final fade once six deflections are accumulated
		if deflections >= 6 {
			energy *= math.Exp(-0.3)
		}
	}

	return segments
}

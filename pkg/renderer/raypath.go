package renderer

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// Material labels recorded on traced segments
const (
	MaterialRoom   = "room"
	MaterialWall   = "wall"
	MaterialLight  = "light"
	MaterialMirror = "mirror"
	MaterialHuman  = "human"
	MaterialSky    = "sky"
)

const (
	// Path tracing stops below this energy (looser than the renderer's cap)
	pathMinEnergy = 0.01
	// Rays starting inside this multiple of the light radius skip the
	// light test, so paths can be launched from the light itself
	lightProximityFactor = 1.1
	// Escaped rays are drawn out to this distance
	escapeDistance = 100.0
	// Long paths fade faster than in the renderer
	pathFadeRate = 0.3
	// Wall bounces lose extra energy
	wallAttenuation = 0.75

	surfaceOffset = 1e-4
)

// RaySegment is one straight run of a traced path, carrying the energy the
// ray had when the segment started
type RaySegment struct {
	Start    core.Vec3
	End      core.Vec3
	Energy   float64
	Material string
}

// RayPath records a full multi-bounce path and its energy at each step
type RayPath struct {
	Segments      []RaySegment
	EnergyHistory []float64
}

func (p *RayPath) addSegment(start, end core.Vec3, energy float64, material string) {
	p.Segments = append(p.Segments, RaySegment{
		Start:    start,
		End:      end,
		Energy:   energy,
		Material: material,
	})
	p.EnergyHistory = append(p.EnergyHistory, energy)
}

// TracePath follows a single ray through the scene iteratively and records
// every segment until it hits the light, a diffuse human, escapes, or runs
// out of bounces or energy. Unlike the renderer, walls reflect here so the
// recorded path keeps going, and candles are not on the path.
func TracePath(s *scene.Scene, origin, direction core.Vec3, maxBounces int, initialEnergy, attenuationPerBounce float64) *RayPath {
	path := &RayPath{EnergyHistory: []float64{initialEnergy}}

	ro := origin
	rd := direction.Normalize()
	energy := initialEnergy
	bounce := 0

	for bounce < maxBounces && energy > pathMinEnergy {
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
			material = MaterialRoom
			reflectivity = 0
		}

		// Hitting the light ends the path, unless the path starts at
		// the light itself
		if ro.Subtract(s.Light.Position).Length() > s.Light.Radius*lightProximityFactor {
			if hit, ok := s.Light.Sphere.Hit(ray); ok && (!found || hit.T < nearestT) {
				path.addSegment(ro, hit.Point, energy, MaterialLight)
				return path
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
				reflectivity = 0
			}
		}

		if !found {
			path.addSegment(ro, ray.At(escapeDistance), energy, MaterialSky)
			return path
		}

		hit := ray.At(nearestT)
		path.addSegment(ro, hit, energy, material)

		if bounce >= 6 {
			energy *= attenuationPerBounce * math.Exp(-float64(bounce-6)*pathFadeRate)
		} else {
			energy *= attenuationPerBounce
		}

		switch {
		case reflectivity > 0.01:
			rd = rd.Reflect(nearestN)
			ro = hit.Add(nearestN.Multiply(surfaceOffset))
			bounce++
		case material == MaterialRoom:
			// Walls bounce the visualized path onward at reduced energy
			rd = rd.Reflect(nearestN)
			ro = hit.Add(nearestN.Multiply(surfaceOffset))
			energy *= wallAttenuation
			bounce++
		default:
			// Diffuse surface absorbs the path
			return path
		}
	}

	return path
}

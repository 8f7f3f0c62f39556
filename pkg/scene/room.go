package scene

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

// Room is the axis-aligned box enclosing the scene. Corners are derived
// once at construction.
type Room struct {
	Center       core.Vec3
	Size         core.Vec3
	FloorColor   core.Vec3
	CeilingColor core.Vec3
	WallColor    core.Vec3
	Box          geometry.Box
}

// NewRoom creates a room from its configuration
func NewRoom(cfg RoomConfig) Room {
	center := toVec3(cfg.Center)
	size := toVec3(cfg.Size)
	return Room{
		Center:       center,
		Size:         size,
		FloorColor:   toVec3(cfg.FloorColor),
		CeilingColor: toVec3(cfg.CeilingColor),
		WallColor:    toVec3(cfg.WallColor),
		Box:          geometry.NewBoxAround(center, size),
	}
}

// FaceColor selects the face color from the hit normal's Y component:
// floor below -0.9, ceiling above 0.9, walls otherwise.
func (r *Room) FaceColor(normal core.Vec3) core.Vec3 {
	switch {
	case normal.Y < -0.9:
		return r.FloorColor
	case normal.Y > 0.9:
		return r.CeilingColor
	default:
		return r.WallColor
	}
}

package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// Config is the scene.json schema. Required groups are pointers so a
// missing group is distinguishable from an empty one.
type Config struct {
	Camera      *CameraConfig  `json:"camera"`
	Room        *RoomConfig    `json:"room"`
	Light       *LightConfig   `json:"light"`
	Render      *RenderConfig  `json:"render"`
	Mirrors     []MirrorConfig `json:"mirrors"`
	HumanModels []HumanConfig  `json:"human_models"`
	Candles     []CandleConfig `json:"candles"`
}

// CameraConfig describes the viewpoint
type CameraConfig struct {
	Position []float64 `json:"position"`
	LookAt   []float64 `json:"look_at"`
	FOV      float64   `json:"fov"` // Vertical field of view in degrees
}

// RoomConfig describes the axis-aligned room box
type RoomConfig struct {
	Center       []float64 `json:"center"`
	Size         []float64 `json:"size"`
	FloorColor   []float64 `json:"floor_color"`
	CeilingColor []float64 `json:"ceiling_color"`
	WallColor    []float64 `json:"wall_color"`
}

// LightConfig describes the single point light
type LightConfig struct {
	Position  []float64 `json:"position"`
	Radius    float64   `json:"radius"`
	Intensity []float64 `json:"intensity"`
}

// RenderConfig describes output dimensions and recursion depth
type RenderConfig struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	MaxBounces int `json:"max_bounces"`
}

// MirrorConfig describes a planar mirror
type MirrorConfig struct {
	Position     []float64 `json:"position"`
	Normal       []float64 `json:"normal"`
	Size         []float64 `json:"size"`
	Reflectivity *float64  `json:"reflectivity"` // Defaults to 0.95 when absent
}

// HumanConfig describes an articulated human figure
type HumanConfig struct {
	Position []float64 `json:"position"`
	Scale    *float64  `json:"scale"`    // Defaults to 1.0 when absent
	Rotation float64   `json:"rotation"` // Yaw in degrees
	Color    []float64 `json:"color"`
}

// CandleConfig describes a candle (cylinder body + emissive flame)
type CandleConfig struct {
	Position       []float64 `json:"position"`
	Height         *float64  `json:"height"` // Defaults to 1.5 when absent
	Radius         *float64  `json:"radius"` // Defaults to 0.2 when absent
	WaxColor       []float64 `json:"wax_color"`
	FlameIntensity []float64 `json:"flame_intensity"`
}

// DefaultMaxBounces is used when render.max_bounces is unset
const DefaultMaxBounces = 4

// LoadConfig reads a scene configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()
	return ParseConfig(file)
}

// ParseConfig reads a scene configuration from an io.Reader
func ParseConfig(reader io.Reader) (*Config, error) {
	var config Config
	if err := json.NewDecoder(reader).Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode scene config: %v", err)
	}
	return &config, nil
}

// Validate checks the configuration for missing required groups and
// malformed vector fields. Rendering must not start on an invalid config.
func (c *Config) Validate() error {
	if c.Camera == nil {
		return fmt.Errorf("scene must have camera")
	}
	if c.Room == nil {
		return fmt.Errorf("scene must have room")
	}
	if c.Light == nil {
		return fmt.Errorf("scene must have light")
	}
	if c.Render == nil {
		return fmt.Errorf("scene must have render settings")
	}

	vectors := []struct {
		field string
		value []float64
	}{
		{"camera.position", c.Camera.Position},
		{"camera.look_at", c.Camera.LookAt},
		{"room.center", c.Room.Center},
		{"room.size", c.Room.Size},
		{"room.floor_color", c.Room.FloorColor},
		{"room.ceiling_color", c.Room.CeilingColor},
		{"room.wall_color", c.Room.WallColor},
		{"light.position", c.Light.Position},
		{"light.intensity", c.Light.Intensity},
	}
	for _, v := range vectors {
		if err := checkVec3(v.field, v.value); err != nil {
			return err
		}
	}

	if c.Camera.FOV <= 0 {
		return fmt.Errorf("camera.fov must be positive, got %v", c.Camera.FOV)
	}
	if c.Light.Radius <= 0 {
		return fmt.Errorf("light.radius must be positive, got %v", c.Light.Radius)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render.width and render.height must be positive, got %dx%d",
			c.Render.Width, c.Render.Height)
	}

	for i, m := range c.Mirrors {
		if err := checkVec3(fmt.Sprintf("mirrors[%d].position", i), m.Position); err != nil {
			return err
		}
		if err := checkVec3(fmt.Sprintf("mirrors[%d].normal", i), m.Normal); err != nil {
			return err
		}
	}
	for i, h := range c.HumanModels {
		if err := checkVec3(fmt.Sprintf("human_models[%d].position", i), h.Position); err != nil {
			return err
		}
		if err := checkVec3(fmt.Sprintf("human_models[%d].color", i), h.Color); err != nil {
			return err
		}
	}
	for i, cd := range c.Candles {
		if err := checkVec3(fmt.Sprintf("candles[%d].position", i), cd.Position); err != nil {
			return err
		}
	}

	return nil
}

func checkVec3(field string, value []float64) error {
	if value == nil {
		return fmt.Errorf("%s is required", field)
	}
	if len(value) != 3 {
		return fmt.Errorf("%s must have exactly 3 components, got %d", field, len(value))
	}
	return nil
}

// toVec3 converts a validated 3-component slice to a Vec3
func toVec3(v []float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

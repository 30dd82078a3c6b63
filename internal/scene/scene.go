package scene

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"physics-engine/internal/physics"
)

// Default world extent when a scene file omits width/height.
const (
	defaultWidth  = 1280
	defaultHeight = 720
)

// defaultColor is used when a body gives no color or an unparsable one.
var defaultColor = color.RGBA{200, 200, 255, 255}

// File is the YAML layout of a scene document (assets/scenes/*.yaml).
type File struct {
	Name   string    `yaml:"name"`
	Width  float32   `yaml:"width,omitempty"`
	Height float32   `yaml:"height,omitempty"`
	Bodies []BodyDef `yaml:"bodies"`
}

// BodyDef describes one body. Mass is a pointer so an omitted mass (nil,
// defaults to 1) is distinct from an explicit zero, which is rejected.
type BodyDef struct {
	Name   string     `yaml:"name,omitempty"`
	Pos    [2]float32 `yaml:"pos"`
	Size   [2]float32 `yaml:"size"`
	Mass   *float32   `yaml:"mass,omitempty"`
	Static bool       `yaml:"static,omitempty"` // disables gravity
	Color  string     `yaml:"color,omitempty"`  // "#rrggbb"
	Sprite string     `yaml:"sprite,omitempty"` // file name under assets/sprites
	Shape  *ShapeDef  `yaml:"shape,omitempty"`
}

// ShapeDef describes the optional collider of a body.
type ShapeDef struct {
	Kind   string       `yaml:"kind"` // box | circle | triangle
	Offset *[2]float32  `yaml:"offset,omitempty"`
	Size   [2]float32   `yaml:"size,omitempty"`   // box
	Radius float32      `yaml:"radius,omitempty"` // circle
	Verts  [][2]float32 `yaml:"verts,omitempty"`  // triangle (exactly 3)
}

// Object pairs a physics body with its render metadata. Objects[i] in a
// Scene wraps World.Bodies[i].
type Object struct {
	Name   string
	Body   *physics.Body
	Color  color.RGBA
	Sprite string
}

// Scene is a loaded, validated scene: a world plus per-body render
// metadata.
type Scene struct {
	Name    string
	World   *physics.World
	Objects []*Object
}

// Load reads and builds a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	scn, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return scn, nil
}

// Parse decodes a YAML scene document and builds it.
func Parse(data []byte) (*Scene, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return Build(&f)
}

// Build validates a scene definition and constructs the world. All
// configuration errors (non-positive mass, degenerate shapes, unknown
// shape kinds) surface here, before the simulation starts.
func Build(f *File) (*Scene, error) {
	width, height := f.Width, f.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	scn := &Scene{
		Name:  f.Name,
		World: physics.NewWorld(width, height),
	}

	for i, def := range f.Bodies {
		obj, err := buildBody(def)
		if err != nil {
			return nil, fmt.Errorf("body %d (%q): %w", i, def.Name, err)
		}
		scn.World.AddBody(obj.Body)
		scn.Objects = append(scn.Objects, obj)
	}
	return scn, nil
}

func buildBody(def BodyDef) (*Object, error) {
	mass := float32(1)
	if def.Mass != nil {
		mass = *def.Mass
	}

	shape, err := buildShape(def.Shape)
	if err != nil {
		return nil, err
	}

	body, err := physics.NewBody(
		physics.Vec2{X: def.Pos[0], Y: def.Pos[1]},
		def.Size[0], def.Size[1],
		mass,
		shape,
	)
	if err != nil {
		return nil, err
	}
	if def.Static {
		body.Gravity = false
	}

	return &Object{
		Name:   def.Name,
		Body:   body,
		Color:  parseColor(def.Color),
		Sprite: def.Sprite,
	}, nil
}

func buildShape(def *ShapeDef) (*physics.Shape, error) {
	if def == nil {
		return nil, nil
	}

	switch def.Kind {
	case "box":
		return physics.NewBox(offsetOr(def, physics.Vec2{}), def.Size[0], def.Size[1])
	case "circle":
		// Default offset (r, r) centers the circle in the nominal box.
		return physics.NewCircle(offsetOr(def, physics.Vec2{X: def.Radius, Y: def.Radius}), def.Radius)
	case "triangle":
		if len(def.Verts) != 3 {
			return nil, fmt.Errorf("triangle needs exactly 3 verts, got %d", len(def.Verts))
		}
		return physics.NewTriangle(offsetOr(def, physics.Vec2{}),
			physics.Vec2{X: def.Verts[0][0], Y: def.Verts[0][1]},
			physics.Vec2{X: def.Verts[1][0], Y: def.Verts[1][1]},
			physics.Vec2{X: def.Verts[2][0], Y: def.Verts[2][1]},
		)
	default:
		return nil, fmt.Errorf("unknown shape kind %q", def.Kind)
	}
}

func offsetOr(def *ShapeDef, fallback physics.Vec2) physics.Vec2 {
	if def.Offset == nil {
		return fallback
	}
	return physics.Vec2{X: def.Offset[0], Y: def.Offset[1]}
}

// parseColor parses "#rrggbb"; anything else falls back to the default.
func parseColor(hex string) color.RGBA {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return color.RGBA{R: r, G: g, B: b, A: 255}
		}
	}
	return defaultColor
}

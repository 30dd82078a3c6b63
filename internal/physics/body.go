package physics

import (
	"errors"
	"fmt"
)

// ErrNonPositiveMass is returned by NewBody for a zero or negative mass.
// Acceleration divides by mass, so such bodies are rejected at
// construction instead of failing mid-simulation.
var ErrNonPositiveMass = errors.New("mass must be positive")

// Body is a simulated rigid body. Pos is the top-left anchor of the
// nominal Width×Height box, +Y down. Shapes hang off the anchor via their
// offset; a body without a shape still integrates and floor-clamps but
// never collides with anything.
//
// Bodies are created at world setup and mutated every tick by the
// integrator (kinematics) and resolver (corrective position/velocity
// edits). There is no despawn.
type Body struct {
	Pos Vec2
	Vel Vec2

	// Acc is derived from Forces and Mass each tick, not persisted.
	Acc Vec2

	// Forces is per-tick working state. Gravity-enabled bodies have it
	// replaced with a single weight vector at the start of every tick;
	// otherwise it holds whatever AddForce accumulated.
	Forces []Vec2

	Mass float32

	// Rotation is a visual angle in radians. Circles spin with horizontal
	// speed and slope contact aligns boxes, but no torque acts on it.
	Rotation float32

	// Gravity selects whether the integrator applies weight each tick.
	Gravity bool

	// Width and Height bound the body for floor clamping and for
	// rendering bodies that have no collider.
	Width, Height float32

	// Shape is the optional collider, exclusively owned by this body.
	Shape *Shape
}

// NewBody returns a body at rest with gravity enabled. Mass must be
// positive; shape may be nil for a non-colliding body.
func NewBody(pos Vec2, width, height, mass float32, shape *Shape) (*Body, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("body at (%g, %g) with mass %g: %w", pos.X, pos.Y, mass, ErrNonPositiveMass)
	}
	return &Body{
		Pos:     pos,
		Mass:    mass,
		Gravity: true,
		Width:   width,
		Height:  height,
		Shape:   shape,
	}, nil
}

// AddForce queues a force vector for the next tick. Gravity-enabled
// bodies overwrite their force list every tick, so external forces only
// persist on bodies with the gravity flag off.
func (b *Body) AddForce(f Vec2) {
	b.Forces = append(b.Forces, f)
}

package physics

// PixelsPerMeter fixes the scale between real-world units and the
// simulation's pixel coordinates. Mass is kg-equivalent at this scale.
const PixelsPerMeter = 50

// GravityAccel is the downward gravitational acceleration in px/s².
const GravityAccel = 9.8 * PixelsPerMeter

// World owns the bodies of one simulation and advances them in fixed
// ticks. A World is an explicit value, not ambient state, so independent
// simulations (and deterministic tests) can run side by side.
type World struct {
	// Width and Height bound the simulation area in pixels. Height is the
	// floor line for the ground clamp.
	Width, Height float32

	// Bodies in insertion order. Pair enumeration and therefore
	// resolution order follow this order, keeping ticks reproducible.
	Bodies []*Body
}

// NewWorld returns an empty world of the given pixel extent.
func NewWorld(width, height float32) *World {
	return &World{Width: width, Height: height}
}

// AddBody appends a body. Insertion order is part of the simulation:
// it fixes pair enumeration order.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// Step advances the simulation one fixed tick: integrate all bodies, then
// detect overlapping pairs, then resolve them in detection order. dt is
// the tick interval, not a wall-clock delta; the host paces calls.
func (w *World) Step(dt float32) {
	w.integrate(dt)
	for _, p := range w.detect() {
		resolve(p.a, p.b)
	}
}

// integrate runs one semi-implicit Euler substep per body: refresh
// gravity, sum forces into acceleration, velocity, then position. Circles
// pick up visual spin from horizontal speed. The floor clamp runs here,
// before any pairwise collision handling.
func (w *World) integrate(dt float32) {
	for _, b := range w.Bodies {
		if b.Gravity {
			b.Forces = append(b.Forces[:0], Vec2{0, b.Mass * GravityAccel})
		}

		var sum Vec2
		for _, f := range b.Forces {
			sum = sum.Add(f)
		}
		b.Acc = sum.Scale(1 / b.Mass)
		b.Vel = b.Vel.Add(b.Acc.Scale(dt))
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))

		// Spin-from-velocity: ω = vx / r. Visual only, no torque.
		if s := b.Shape; s != nil && s.Kind == KindCircle {
			b.Rotation += b.Vel.X / s.Radius * dt
		}

		if b.Pos.Y+b.Height > w.Height {
			b.Pos.Y = w.Height - b.Height
			b.Vel.Y = 0
		}
	}
}

// pair is an unordered body pair flagged as colliding, in enumeration
// order (a comes before b in the body list).
type pair struct {
	a, b *Body
}

// detect examines every C(n,2) pair exactly once in stable i<j order.
// O(n²); there is no broad phase, which is fine for small populations.
func (w *World) detect() []pair {
	var hits []pair
	for i := 0; i < len(w.Bodies); i++ {
		for j := i + 1; j < len(w.Bodies); j++ {
			if Overlaps(w.Bodies[i], w.Bodies[j]) {
				hits = append(hits, pair{w.Bodies[i], w.Bodies[j]})
			}
		}
	}
	return hits
}

package physics

import (
	"testing"

	"github.com/chewxy/math32"
)

const testDt = float32(1.0 / 60.0)

func approxEqual(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}

func TestGravityVelocityGainIndependentOfMass(t *testing.T) {
	masses := []float32{0.5, 1, 7, 120}
	want := GravityAccel * testDt

	for _, mass := range masses {
		w := NewWorld(10000, 10000)
		b := mustBody(t, Vec2{100, 100}, 20, 20, mass, nil)
		w.AddBody(b)

		w.Step(testDt)

		if !approxEqual(b.Vel.Y, want, 1e-3) {
			t.Errorf("mass %g: vy = %g after one tick, want %g", mass, b.Vel.Y, want)
		}
		if b.Vel.X != 0 {
			t.Errorf("mass %g: vx = %g, want 0", mass, b.Vel.X)
		}
	}
}

func TestGravityDisabledKeepsExternalForces(t *testing.T) {
	w := NewWorld(10000, 10000)
	b := mustBody(t, Vec2{0, 0}, 10, 10, 2, nil)
	b.Gravity = false
	b.AddForce(Vec2{8, 0})
	w.AddBody(b)

	w.Step(testDt)

	// F/m = 4 px/s² to the right; nothing downward.
	if !approxEqual(b.Vel.X, 4*testDt, 1e-5) {
		t.Errorf("vx = %g, want %g", b.Vel.X, 4*testDt)
	}
	if b.Vel.Y != 0 {
		t.Errorf("vy = %g, want 0 with gravity off", b.Vel.Y)
	}
	if len(b.Forces) != 1 {
		t.Errorf("external force list length = %d, want 1 (left as set)", len(b.Forces))
	}
}

func TestSemiImplicitEulerUsesUpdatedVelocity(t *testing.T) {
	w := NewWorld(10000, 10000)
	b := mustBody(t, Vec2{0, 0}, 10, 10, 1, nil)
	w.AddBody(b)

	w.Step(testDt)

	// Position integrates the already-updated velocity, so the first tick
	// moves by a*dt², not zero.
	want := GravityAccel * testDt * testDt
	if !approxEqual(b.Pos.Y, want, 1e-3) {
		t.Errorf("y = %g after one tick, want %g", b.Pos.Y, want)
	}
}

func TestCircleSpinFollowsHorizontalVelocity(t *testing.T) {
	w := NewWorld(10000, 10000)
	b := mustBody(t, Vec2{0, 0}, 30, 30, 1, mustCircle(t, Vec2{15, 15}, 15))
	b.Gravity = false
	b.Vel = Vec2{30, 0}
	w.AddBody(b)

	w.Step(testDt)

	// ω = vx / r = 2 rad/s.
	want := 2 * testDt
	if !approxEqual(b.Rotation, want, 1e-5) {
		t.Errorf("rotation = %g, want %g", b.Rotation, want)
	}
}

func TestFloorClampStopsFallingBox(t *testing.T) {
	const worldH = 500
	const boxH = 40

	w := NewWorld(800, worldH)
	b := mustBody(t, Vec2{100, 100}, 40, boxH, 7, mustBox(t, Vec2{}, 40, boxH))
	w.AddBody(b)

	for tick := 0; tick < 600; tick++ {
		w.Step(testDt)
		if b.Pos.Y+boxH > worldH {
			t.Fatalf("tick %d: body penetrated the floor (y=%g)", tick, b.Pos.Y)
		}
	}

	if got, want := b.Pos.Y, float32(worldH-boxH); !approxEqual(got, want, 1e-3) {
		t.Errorf("resting y = %g, want %g", got, want)
	}
	if b.Vel.Y != 0 {
		t.Errorf("resting vy = %g, want 0", b.Vel.Y)
	}
}

func TestDetectOrderIsStable(t *testing.T) {
	w := NewWorld(1000, 1000)
	// Three mutually overlapping boxes.
	var bodies []*Body
	for i := 0; i < 3; i++ {
		b := mustBody(t, Vec2{float32(i) * 2, 0}, 10, 10, 1, mustBox(t, Vec2{}, 10, 10))
		b.Gravity = false
		w.AddBody(b)
		bodies = append(bodies, b)
	}

	hits := w.detect()
	want := []pair{
		{bodies[0], bodies[1]},
		{bodies[0], bodies[2]},
		{bodies[1], bodies[2]},
	}
	if len(hits) != len(want) {
		t.Fatalf("detected %d pairs, want %d", len(hits), len(want))
	}
	for i := range want {
		if hits[i] != want[i] {
			t.Errorf("pair %d out of order", i)
		}
	}
}

func TestBodyValidation(t *testing.T) {
	tests := []struct {
		name string
		mass float32
		ok   bool
	}{
		{"positive mass", 7, true},
		{"tiny mass", 0.001, true},
		{"zero mass", 0, false},
		{"negative mass", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBody(Vec2{0, 0}, 10, 10, tt.mass, nil)
			if tt.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !b.Gravity {
					t.Error("new bodies should default to gravity on")
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

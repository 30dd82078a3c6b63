package physics

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestResolveBoxBoxSeparatesAlongLeastPenetration(t *testing.T) {
	a := mustBody(t, Vec2{0, 0}, 10, 10, 1, mustBox(t, Vec2{}, 10, 10))
	b := mustBody(t, Vec2{8, 0}, 10, 10, 1, mustBox(t, Vec2{}, 10, 10))
	a.Vel = Vec2{5, 3}
	b.Vel = Vec2{-5, -3}

	if !Overlaps(a, b) {
		t.Fatal("setup: bodies should overlap")
	}
	resolve(a, b)

	if a.Vel.X != 0 || b.Vel.X != 0 {
		t.Errorf("velocities along resolved axis = %g, %g, want 0, 0", a.Vel.X, b.Vel.X)
	}
	if a.Vel.Y != 3 || b.Vel.Y != -3 {
		t.Errorf("velocities along the other axis changed: %g, %g", a.Vel.Y, b.Vel.Y)
	}
	if Overlaps(a, b) {
		t.Errorf("still overlapping after resolution: a.x=%g b.x=%g", a.Pos.X, b.Pos.X)
	}
	// Equal masses split the 2px overlap evenly.
	if !approxEqual(a.Pos.X, -1, 1e-4) || !approxEqual(b.Pos.X, 9, 1e-4) {
		t.Errorf("positions = %g, %g, want -1, 9", a.Pos.X, b.Pos.X)
	}
}

func TestResolveSharesCorrectionByInverseMass(t *testing.T) {
	// b is three times heavier, so it takes a quarter of the correction.
	a := mustBody(t, Vec2{0, 0}, 10, 10, 1, mustBox(t, Vec2{}, 10, 10))
	b := mustBody(t, Vec2{6, 0}, 10, 10, 3, mustBox(t, Vec2{}, 10, 10))

	resolve(a, b)

	if !approxEqual(a.Pos.X, -3, 1e-4) {
		t.Errorf("light body moved to %g, want -3", a.Pos.X)
	}
	if !approxEqual(b.Pos.X, 7, 1e-4) {
		t.Errorf("heavy body moved to %g, want 7", b.Pos.X)
	}
}

func TestResolveCirclesHeadOn(t *testing.T) {
	// Equal mass and radius 15, centers 28 apart, approaching head-on.
	a := mustBody(t, Vec2{0, 0}, 30, 30, 2, mustCircle(t, Vec2{}, 15))
	b := mustBody(t, Vec2{28, 0}, 30, 30, 2, mustCircle(t, Vec2{}, 15))
	a.Vel = Vec2{10, 0}
	b.Vel = Vec2{-10, 0}

	if !Overlaps(a, b) {
		t.Fatal("setup: circles should overlap")
	}
	resolve(a, b)

	dist := b.Pos.Sub(a.Pos).Length()
	if dist < 30-1e-3 {
		t.Errorf("center distance %g after resolution, want >= 30", dist)
	}
	if a.Vel.X != 0 || b.Vel.X != 0 {
		t.Errorf("approach velocities = %g, %g, want 0, 0", a.Vel.X, b.Vel.X)
	}
}

func TestResolveTriangleCircleOnSlope(t *testing.T) {
	// 45° ramp: hypotenuse from (0,100) to (100,0), third vertex (100,100).
	tri := mustBody(t, Vec2{0, 0}, 100, 100, 100,
		mustTriangle(t, Vec2{}, Vec2{0, 100}, Vec2{100, 0}, Vec2{100, 100}))
	tri.Gravity = false

	// Circle center just inside the slope, moving right (into the ramp).
	cir := mustBody(t, Vec2{40, 52}, 20, 20, 1, mustCircle(t, Vec2{}, 10))
	cir.Vel = Vec2{12, 0}

	if !Overlaps(tri, cir) {
		t.Fatal("setup: circle should overlap the ramp")
	}

	normal := Vec2{-1, -1}.Normalize()
	tangent := Vec2{1, -1}.Normalize()
	wantTangential := cir.Vel.Dot(tangent)

	resolve(tri, cir)

	// Normal component removed, tangential preserved.
	if vn := cir.Vel.Dot(normal); !approxEqual(vn, 0, 1e-3) {
		t.Errorf("normal velocity component = %g, want 0", vn)
	}
	if vt := cir.Vel.Dot(tangent); !approxEqual(vt, wantTangential, 1e-3) {
		t.Errorf("tangential velocity component = %g, want %g", vt, wantTangential)
	}

	// Pushed out to at least the radius from the slope line x + y = 100.
	center := cir.Shape.worldCenter(cir)
	slopeDist := (100 - center.X - center.Y) / math32.Sqrt2
	if slopeDist < 10-1e-3 {
		t.Errorf("center %v is %g from the slope, want >= 10", center, slopeDist)
	}
}

func TestResolveTriangleCircleLeavesSeparatedPairAlone(t *testing.T) {
	tri := mustBody(t, Vec2{0, 0}, 100, 100, 100,
		mustTriangle(t, Vec2{}, Vec2{0, 100}, Vec2{100, 0}, Vec2{100, 100}))
	cir := mustBody(t, Vec2{10, 10}, 20, 20, 1, mustCircle(t, Vec2{}, 10))
	cir.Vel = Vec2{3, 4}

	before := *cir
	resolve(tri, cir)

	if cir.Pos != before.Pos || cir.Vel != before.Vel {
		t.Error("non-overlapping circle was mutated")
	}
}

func TestResolveTriangleBoxAlignsToSlope(t *testing.T) {
	tri := mustBody(t, Vec2{0, 0}, 100, 100, 100,
		mustTriangle(t, Vec2{}, Vec2{0, 100}, Vec2{100, 0}, Vec2{100, 100}))
	tri.Gravity = false

	box := mustBody(t, Vec2{40, 42}, 16, 16, 1, mustBox(t, Vec2{}, 16, 16))
	box.Vel = Vec2{0, 20}

	if !Overlaps(tri, box) {
		t.Fatal("setup: box should overlap the ramp")
	}

	normal := Vec2{-1, -1}.Normalize()
	posBefore := box.Pos

	resolve(tri, box)

	// Fixed-magnitude push along the slope normal.
	moved := box.Pos.Sub(posBefore)
	if !approxEqual(moved.Length(), slopePushMagnitude, 1e-3) {
		t.Errorf("push distance = %g, want %g", moved.Length(), float32(slopePushMagnitude))
	}
	if !approxEqual(moved.Normalize().Dot(normal), 1, 1e-3) {
		t.Errorf("push direction %v, want along %v", moved.Normalize(), normal)
	}

	// Velocity along the normal removed.
	if vn := box.Vel.Dot(normal); !approxEqual(vn, 0, 1e-3) {
		t.Errorf("normal velocity component = %g, want 0", vn)
	}

	// Rotation aligned with the slope: atan2(ny, nx) - 90°.
	want := math32.Atan2(normal.Y, normal.X) - math32.Pi/2
	if !approxEqual(box.Rotation, want, 1e-4) {
		t.Errorf("rotation = %g, want %g", box.Rotation, want)
	}
}

func TestResolveDispatchIsOrderAware(t *testing.T) {
	// The circle operand is corrected whichever side of the pair it is on.
	makePair := func() (*Body, *Body) {
		tri := mustBody(t, Vec2{0, 0}, 100, 100, 100,
			mustTriangle(t, Vec2{}, Vec2{0, 100}, Vec2{100, 0}, Vec2{100, 100}))
		cir := mustBody(t, Vec2{40, 52}, 20, 20, 1, mustCircle(t, Vec2{}, 10))
		cir.Vel = Vec2{12, 0}
		return tri, cir
	}

	tri1, cir1 := makePair()
	resolve(tri1, cir1)
	tri2, cir2 := makePair()
	resolve(cir2, tri2)

	if cir1.Pos != cir2.Pos || cir1.Vel != cir2.Vel {
		t.Errorf("operand order changed the outcome: %v/%v vs %v/%v",
			cir1.Pos, cir1.Vel, cir2.Pos, cir2.Vel)
	}
	if tri1.Pos != tri2.Pos {
		t.Error("triangle should not move in either order")
	}
}

func TestWorldStepResolvesDroppedCircleOntoRamp(t *testing.T) {
	w := NewWorld(400, 400)

	ramp, err := NewBody(Vec2{100, 300}, 200, 100, 1000,
		mustTriangle(t, Vec2{}, Vec2{0, 100}, Vec2{200, 0}, Vec2{200, 100}))
	if err != nil {
		t.Fatal(err)
	}
	ramp.Gravity = false
	w.AddBody(ramp)

	ball := mustBody(t, Vec2{200, 50}, 30, 30, 2, mustCircle(t, Vec2{15, 15}, 15))
	w.AddBody(ball)

	for tick := 0; tick < 300; tick++ {
		w.Step(testDt)
	}

	// The ball must come to rest on or to the side of the ramp, never
	// inside it.
	center := ball.Shape.worldCenter(ball)
	verts := ramp.Shape.worldVerts(ramp)
	if pointInTriangle(center, verts) {
		t.Errorf("ball center %v ended inside the ramp", center)
	}
	if ball.Pos.Y+ball.Height > w.Height+1e-3 {
		t.Errorf("ball fell through the floor: y=%g", ball.Pos.Y)
	}
}

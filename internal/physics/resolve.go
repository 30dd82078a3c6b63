package physics

import "github.com/chewxy/math32"

// slopePushMagnitude is the fixed distance a box is pushed off a triangle
// slope. Unlike every other path this is not proportional to overlap
// depth; the original behavior is kept rather than corrected.
const slopePushMagnitude = 2

// resolve corrects one colliding pair. Within a tick, pairs already
// resolved are not re-checked after later corrections, so a body may end
// a tick slightly overlapping a later-processed partner.
//
// Dispatch is by shape-kind pair. Triangles act as static ground against
// circles and boxes; everything else, including triangle-triangle, takes
// the axis-of-least-penetration default path.
func resolve(a, b *Body) {
	ka, kb := a.Shape.Kind, b.Shape.Kind
	switch {
	case ka == KindTriangle && kb == KindCircle:
		resolveTriangleCircle(a, b)
	case ka == KindCircle && kb == KindTriangle:
		resolveTriangleCircle(b, a)
	case ka == KindTriangle && kb == KindBox:
		resolveTriangleBox(a, b)
	case ka == KindBox && kb == KindTriangle:
		resolveTriangleBox(b, a)
	default:
		resolveLeastPenetration(a, b)
	}
}

// resolveTriangleCircle pushes a circle out of a triangle along the
// closest-point normal and removes the velocity component opposing it.
// Tangential velocity is untouched, so a circle keeps rolling along a
// slope instead of sticking to it.
func resolveTriangleCircle(tri, cir *Body) {
	verts := tri.Shape.worldVerts(tri)
	center := cir.Shape.worldCenter(cir)
	radius := cir.Shape.Radius

	closest, dist, ok := closestOnTriangleEdges(center, verts)
	if !ok {
		return
	}
	if pointInTriangle(center, verts) {
		// Fully swallowed center: maximal correction.
		closest, dist = center, 0
	}
	overlap := radius - dist
	if overlap <= 0 {
		return
	}

	normal := center.Sub(closest).Normalize()
	if normal == (Vec2{}) {
		// Center exactly on or inside the boundary leaves no direction;
		// push straight up.
		normal = Vec2{0, -1}
	}
	cir.Pos = cir.Pos.Add(normal.Scale(overlap))

	// Inelastic in the normal direction: drop the opposing component.
	if vn := cir.Vel.Dot(normal); vn < 0 {
		cir.Vel = cir.Vel.Sub(normal.Scale(vn))
	}
}

// resolveTriangleBox pushes a box away from the triangle edge whose
// separating axis lies closest to the box center, zeroes the box velocity
// along that normal, and aligns the box's visual rotation with the slope.
func resolveTriangleBox(tri, box *Body) {
	verts := tri.Shape.worldVerts(tri)
	center := box.Shape.worldRect(box).center()

	var normal Vec2
	best := float32(-1)
	for i := 0; i < 3; i++ {
		a, b := verts[i], verts[(i+1)%3]
		if b.Sub(a).LengthSq() == 0 {
			continue
		}
		n := outwardNormal(a, b, verts[(i+2)%3])
		d := math32.Abs(center.Sub(a).Dot(n))
		if best < 0 || d < best {
			best = d
			normal = n
		}
	}
	if best < 0 {
		return
	}

	box.Pos = box.Pos.Add(normal.Scale(slopePushMagnitude))
	if vn := box.Vel.Dot(normal); vn != 0 {
		box.Vel = box.Vel.Sub(normal.Scale(vn))
	}
	box.Rotation = math32.Atan2(normal.Y, normal.X) - math32.Pi/2
}

// resolveLeastPenetration is the default path: bounding-rectangle overlap
// on both axes, correction along the axis with the smaller penetration,
// split between the bodies in inverse proportion to mass (the heavier
// body moves less), and velocity zeroed along the resolved axis for both.
// Circles are treated by their bounding squares here; the loss of
// circular geometry is a known approximation.
func resolveLeastPenetration(a, b *Body) {
	ra := a.Shape.bounds(a)
	rb := b.Shape.bounds(b)

	overlapX := min(ra.x+ra.w, rb.x+rb.w) - max(ra.x, rb.x)
	overlapY := min(ra.y+ra.h, rb.y+rb.h) - max(ra.y, rb.y)
	if overlapX <= 0 || overlapY <= 0 {
		return
	}

	total := a.Mass + b.Mass
	shareA := b.Mass / total
	shareB := a.Mass / total

	if overlapX < overlapY {
		dir := float32(1)
		if ra.center().X > rb.center().X {
			dir = -1
		}
		a.Pos.X -= dir * overlapX * shareA
		b.Pos.X += dir * overlapX * shareB
		a.Vel.X = 0
		b.Vel.X = 0
		return
	}

	dir := float32(1)
	if ra.center().Y > rb.center().Y {
		dir = -1
	}
	a.Pos.Y -= dir * overlapY * shareA
	b.Pos.Y += dir * overlapY * shareB
	a.Vel.Y = 0
	b.Vel.Y = 0
}

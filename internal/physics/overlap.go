package physics

// Overlaps reports whether the shapes of a and b intersect in world space.
// Bodies without a shape never overlap. Each kind pairing is implemented
// once; the mirrored case swaps operands, so the predicate is symmetric.
func Overlaps(a, b *Body) bool {
	if a.Shape == nil || b.Shape == nil {
		return false
	}
	sa, sb := a.Shape, b.Shape
	switch sa.Kind {
	case KindBox:
		switch sb.Kind {
		case KindBox:
			return boxBox(sa.worldRect(a), sb.worldRect(b))
		case KindCircle:
			return boxCircle(sa.worldRect(a), sb.worldCenter(b), sb.Radius)
		case KindTriangle:
			return triangleBox(sb.worldVerts(b), sa.worldRect(a))
		}
	case KindCircle:
		switch sb.Kind {
		case KindBox:
			return boxCircle(sb.worldRect(b), sa.worldCenter(a), sa.Radius)
		case KindCircle:
			return circleCircle(sa.worldCenter(a), sa.Radius, sb.worldCenter(b), sb.Radius)
		case KindTriangle:
			return triangleCircle(sb.worldVerts(b), sa.worldCenter(a), sa.Radius)
		}
	case KindTriangle:
		switch sb.Kind {
		case KindBox:
			return triangleBox(sa.worldVerts(a), sb.worldRect(b))
		case KindCircle:
			return triangleCircle(sa.worldVerts(a), sb.worldCenter(b), sb.Radius)
		case KindTriangle:
			return triangleTriangle(sa.worldVerts(a), sb.worldVerts(b))
		}
	}
	return false
}

// boxBox: axis-aligned rectangle overlap, strict so touching edges do not
// collide.
func boxBox(a, b rect) bool {
	return a.x < b.x+b.w && a.x+a.w > b.x &&
		a.y < b.y+b.h && a.y+a.h > b.y
}

// boxCircle clamps the circle center to the box extent to find the
// nearest box point, then compares squared distance against the radius.
func boxCircle(r rect, center Vec2, radius float32) bool {
	nearest := r.clampPoint(center)
	return nearest.Sub(center).LengthSq() < radius*radius
}

// circleCircle: centers closer than the sum of radii. The boundary case
// (distance exactly equal) does not overlap.
func circleCircle(ca Vec2, ra float32, cb Vec2, rb float32) bool {
	sum := ra + rb
	return cb.Sub(ca).LengthSq() < sum*sum
}

// triangleTriangle: any vertex of one triangle inside the other. This
// misses edge-crossing-only overlaps with no contained vertex; the
// under-approximation is accepted.
func triangleTriangle(a, b [3]Vec2) bool {
	for _, p := range a {
		if pointInTriangle(p, b) {
			return true
		}
	}
	for _, p := range b {
		if pointInTriangle(p, a) {
			return true
		}
	}
	return false
}

// triangleBox: any triangle vertex inside the box, or any box corner
// inside the triangle. Same under-approximation caveat as
// triangleTriangle.
func triangleBox(t [3]Vec2, r rect) bool {
	for _, p := range t {
		if r.contains(p) {
			return true
		}
	}
	for _, p := range r.corners() {
		if pointInTriangle(p, t) {
			return true
		}
	}
	return false
}

// triangleCircle: circle center inside the triangle, or within radius of
// the nearest point on any edge (degenerate edges are skipped).
func triangleCircle(t [3]Vec2, center Vec2, radius float32) bool {
	if pointInTriangle(center, t) {
		return true
	}
	for i := 0; i < 3; i++ {
		q, ok := closestOnSegment(center, t[i], t[(i+1)%3])
		if !ok {
			continue
		}
		if q.Sub(center).LengthSq() < radius*radius {
			return true
		}
	}
	return false
}

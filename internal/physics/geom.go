package physics

// rect is a world-space axis-aligned rectangle: min corner plus size.
type rect struct {
	x, y, w, h float32
}

func (r rect) center() Vec2 {
	return Vec2{r.x + r.w/2, r.y + r.h/2}
}

func (r rect) contains(p Vec2) bool {
	return p.X >= r.x && p.X <= r.x+r.w && p.Y >= r.y && p.Y <= r.y+r.h
}

func (r rect) corners() [4]Vec2 {
	return [4]Vec2{
		{r.x, r.y},
		{r.x + r.w, r.y},
		{r.x + r.w, r.y + r.h},
		{r.x, r.y + r.h},
	}
}

// clampPoint returns p clamped to the rectangle extent, i.e. the nearest
// point of the rectangle to p.
func (r rect) clampPoint(p Vec2) Vec2 {
	return Vec2{
		X: min(max(p.X, r.x), r.x+r.w),
		Y: min(max(p.Y, r.y), r.y+r.h),
	}
}

// pointInTriangle reports whether p lies inside (or on the boundary of)
// the triangle t. The half-plane sign test accepts either winding order:
// p is inside iff the edge cross products do not carry mixed signs.
func pointInTriangle(p Vec2, t [3]Vec2) bool {
	d0 := t[1].Sub(t[0]).Cross(p.Sub(t[0]))
	d1 := t[2].Sub(t[1]).Cross(p.Sub(t[1]))
	d2 := t[0].Sub(t[2]).Cross(p.Sub(t[2]))
	hasNeg := d0 < 0 || d1 < 0 || d2 < 0
	hasPos := d0 > 0 || d1 > 0 || d2 > 0
	return !(hasNeg && hasPos)
}

// closestOnSegment returns the point of segment a-b nearest to p by
// clamping the scalar projection of p-a onto the segment to [0, 1].
// A zero-length segment has no direction; ok is false and the caller must
// skip the edge rather than divide by zero.
func closestOnSegment(p, a, b Vec2) (Vec2, bool) {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return Vec2{}, false
	}
	t := p.Sub(a).Dot(ab) / lenSq
	t = min(max(t, 0), 1)
	return a.Add(ab.Scale(t)), true
}

// closestOnTriangleEdges returns the point on the triangle's boundary
// nearest to p and its distance. ok is false only if every edge is
// degenerate, which constructed triangles never are.
func closestOnTriangleEdges(p Vec2, t [3]Vec2) (closest Vec2, dist float32, ok bool) {
	bestSq := float32(-1)
	for i := 0; i < 3; i++ {
		q, valid := closestOnSegment(p, t[i], t[(i+1)%3])
		if !valid {
			continue
		}
		dSq := q.Sub(p).LengthSq()
		if bestSq < 0 || dSq < bestSq {
			bestSq = dSq
			closest = q
		}
	}
	if bestSq < 0 {
		return Vec2{}, 0, false
	}
	return closest, closest.Sub(p).Length(), true
}

// outwardNormal returns the unit normal of edge a-b that points away from
// the triangle's third vertex.
func outwardNormal(a, b, opposite Vec2) Vec2 {
	edge := b.Sub(a)
	n := Vec2{edge.Y, -edge.X}.Normalize()
	if opposite.Sub(a).Dot(n) > 0 {
		n = n.Scale(-1)
	}
	return n
}

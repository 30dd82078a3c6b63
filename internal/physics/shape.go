package physics

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ShapeKind enumerates the collider variants. The set is closed; every
// pairing is enumerated explicitly in Overlaps and in the resolver.
type ShapeKind uint8

const (
	KindBox ShapeKind = iota
	KindCircle
	KindTriangle
)

// String returns the lowercase kind name as used in scene files.
func (k ShapeKind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindCircle:
		return "circle"
	case KindTriangle:
		return "triangle"
	}
	return fmt.Sprintf("ShapeKind(%d)", uint8(k))
}

// ErrDegenerateShape is returned by shape constructors when the geometry
// has no usable extent (non-positive box side or radius, triangle with
// duplicate or collinear vertices).
var ErrDegenerateShape = errors.New("degenerate shape")

// collinearEps bounds the doubled triangle area below which vertices are
// treated as collinear at construction.
const collinearEps = 1e-5

// Shape is a tagged variant over box, circle and triangle colliders.
// Offset is relative to the owning body's anchor point; world-space
// geometry is recomputed from body position + offset on every query, so a
// shape caches no world coordinates.
type Shape struct {
	Kind   ShapeKind
	Offset Vec2

	// Box extent. The world rectangle spans Offset..Offset+(Width,Height).
	Width, Height float32

	// Circle radius around the world center at body position + Offset.
	Radius float32

	// Triangle vertices, each relative to body position + Offset. Either
	// winding order is accepted; queries are winding-independent.
	Verts [3]Vec2
}

// NewBox returns a box collider of the given extent.
func NewBox(offset Vec2, width, height float32) (*Shape, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("box %gx%g: %w", width, height, ErrDegenerateShape)
	}
	return &Shape{Kind: KindBox, Offset: offset, Width: width, Height: height}, nil
}

// NewCircle returns a circle collider of the given radius.
func NewCircle(offset Vec2, radius float32) (*Shape, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("circle radius %g: %w", radius, ErrDegenerateShape)
	}
	return &Shape{Kind: KindCircle, Offset: offset, Radius: radius}, nil
}

// NewTriangle returns a triangle collider. Duplicate or collinear vertices
// are rejected so edge-projection queries never see a zero-area triangle.
func NewTriangle(offset Vec2, v0, v1, v2 Vec2) (*Shape, error) {
	area2 := v1.Sub(v0).Cross(v2.Sub(v0))
	if math32.Abs(area2) < collinearEps {
		return nil, fmt.Errorf("triangle %v %v %v: %w", v0, v1, v2, ErrDegenerateShape)
	}
	return &Shape{Kind: KindTriangle, Offset: offset, Verts: [3]Vec2{v0, v1, v2}}, nil
}

// worldRect returns the box extent in world space (min corner + size).
func (s *Shape) worldRect(b *Body) rect {
	return rect{
		x: b.Pos.X + s.Offset.X,
		y: b.Pos.Y + s.Offset.Y,
		w: s.Width,
		h: s.Height,
	}
}

// worldCenter returns the circle center in world space.
func (s *Shape) worldCenter(b *Body) Vec2 {
	return b.Pos.Add(s.Offset)
}

// worldVerts returns the triangle vertices in world space.
func (s *Shape) worldVerts(b *Body) [3]Vec2 {
	base := b.Pos.Add(s.Offset)
	return [3]Vec2{base.Add(s.Verts[0]), base.Add(s.Verts[1]), base.Add(s.Verts[2])}
}

// bounds returns the world-space axis-aligned bounding rectangle of the
// shape. Circles are bounded by their enclosing square, triangles by the
// vertex extremes. Used by the default resolution path.
func (s *Shape) bounds(b *Body) rect {
	switch s.Kind {
	case KindBox:
		return s.worldRect(b)
	case KindCircle:
		c := s.worldCenter(b)
		return rect{x: c.X - s.Radius, y: c.Y - s.Radius, w: 2 * s.Radius, h: 2 * s.Radius}
	default:
		v := s.worldVerts(b)
		minX, minY := v[0].X, v[0].Y
		maxX, maxY := v[0].X, v[0].Y
		for _, p := range v[1:] {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
		return rect{x: minX, y: minY, w: maxX - minX, h: maxY - minY}
	}
}

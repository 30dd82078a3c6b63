package render

import (
	"image/color"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/physics"
	"physics-engine/internal/scene"
	"physics-engine/internal/sprites"
)

// radToDeg converts body rotation (radians) to raylib angles (degrees).
const radToDeg = 180 / math32.Pi

// Draw renders every scene object from current body state: a sprite when
// one is assigned and loadable, otherwise a filled shape matching the
// collider (or the nominal box for bodies without one). The renderer only
// reads the world; it is called between the host's BeginDrawing and
// EndDrawing.
func Draw(scn *scene.Scene, cache *sprites.Cache) {
	for _, obj := range scn.Objects {
		if tex, ok := cache.Get(obj.Sprite); ok {
			drawSprite(obj.Body, tex)
			continue
		}
		drawShape(obj.Body, toRaylib(obj.Color))
	}
}

// drawSprite stretches the texture over the body's nominal box, rotated
// about its center.
func drawSprite(b *physics.Body, tex rl.Texture2D) {
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	dst := rl.NewRectangle(b.Pos.X+b.Width/2, b.Pos.Y+b.Height/2, b.Width, b.Height)
	origin := rl.NewVector2(b.Width/2, b.Height/2)
	rl.DrawTexturePro(tex, src, dst, origin, b.Rotation*radToDeg, rl.White)
}

func drawShape(b *physics.Body, col rl.Color) {
	s := b.Shape
	if s == nil {
		drawBox(b.Pos.X, b.Pos.Y, b.Width, b.Height, b.Rotation, col)
		return
	}

	switch s.Kind {
	case physics.KindBox:
		drawBox(b.Pos.X+s.Offset.X, b.Pos.Y+s.Offset.Y, s.Width, s.Height, b.Rotation, col)

	case physics.KindCircle:
		center := b.Pos.Add(s.Offset)
		rl.DrawCircleV(rl.NewVector2(center.X, center.Y), s.Radius, col)
		// A spoke makes the spin-from-velocity rotation visible.
		tip := center.Add(physics.Vec2{
			X: math32.Cos(b.Rotation) * s.Radius,
			Y: math32.Sin(b.Rotation) * s.Radius,
		})
		rl.DrawLineV(rl.NewVector2(center.X, center.Y), rl.NewVector2(tip.X, tip.Y), rl.Black)

	case physics.KindTriangle:
		base := b.Pos.Add(s.Offset)
		v := [3]rl.Vector2{}
		for i, p := range s.Verts {
			w := base.Add(p)
			v[i] = rl.NewVector2(w.X, w.Y)
		}
		// raylib fills counter-clockwise triangles only; in screen
		// coordinates (+Y down) that is a negative cross product.
		if s.Verts[1].Sub(s.Verts[0]).Cross(s.Verts[2].Sub(s.Verts[0])) > 0 {
			v[1], v[2] = v[2], v[1]
		}
		rl.DrawTriangle(v[0], v[1], v[2], col)
	}
}

// drawBox draws a rectangle rotated about its center.
func drawBox(x, y, w, h, rotation float32, col rl.Color) {
	dst := rl.NewRectangle(x+w/2, y+h/2, w, h)
	origin := rl.NewVector2(w/2, h/2)
	rl.DrawRectanglePro(dst, origin, rotation*radToDeg, col)
}

func toRaylib(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

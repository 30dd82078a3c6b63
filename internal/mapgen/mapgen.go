package mapgen

import (
	"fmt"
	"math"
	"time"

	"physics-engine/internal/scene"
)

// Options controls procedural scene generation. Columns is the number of
// static terrain columns across the floor; ColumnWidth is their width in
// pixels and HeightScale the tallest column. Drops is the number of
// dynamic bodies spawned above the terrain. Seed == 0 uses a time-based
// seed. Octaves, Frequency, Lacunarity and Gain shape the fractal noise.
type Options struct {
	Width, Height float32

	Columns     int
	ColumnWidth float32
	HeightScale float32
	Drops       int

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultOptions returns a sane default configuration for a 1280x720
// world.
func DefaultOptions() Options {
	return Options{
		Width:       1280,
		Height:      720,
		Columns:     24,
		ColumnWidth: 0, // derived from Width/Columns when zero
		HeightScale: 220,
		Drops:       8,
		Seed:        0,
		Octaves:     4,
		Frequency:   0.3,
		Lacunarity:  2.0,
		Gain:        0.5,
	}
}

// dropPalette colors the spawned dynamic bodies.
var dropPalette = []string{"#e05252", "#e0a852", "#52e07a", "#52a8e0", "#a852e0"}

// Generate builds a scene definition: a noise-shaped skyline of static box
// columns along the floor, a triangle ramp on top of the tallest column,
// and a row of dynamic circles and boxes dropped from above. The result
// goes through scene.Build for validation like any hand-written file.
func Generate(opts Options) *scene.File {
	if opts.Width <= 0 {
		opts.Width = 1280
	}
	if opts.Height <= 0 {
		opts.Height = 720
	}
	if opts.Columns <= 0 {
		opts.Columns = 24
	}
	if opts.ColumnWidth <= 0 {
		opts.ColumnWidth = opts.Width / float32(opts.Columns)
	}
	if opts.HeightScale <= 0 {
		opts.HeightScale = opts.Height * 0.3
	}
	if opts.Octaves <= 0 {
		opts.Octaves = 4
	}
	if opts.Frequency <= 0 {
		opts.Frequency = 0.3
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = 2.0
	}
	if opts.Gain <= 0 {
		opts.Gain = 0.5
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	f := &scene.File{
		Name:   fmt.Sprintf("generated-%d", seed),
		Width:  opts.Width,
		Height: opts.Height,
	}

	// Terrain: one static box column per noise sample, bottom on the
	// floor line.
	const minHeight = 10
	tallest := 0
	tallestH := float32(0)
	for i := 0; i < opts.Columns; i++ {
		h := fractalValueNoise1D(float32(i)*opts.Frequency, seed, opts.Octaves, opts.Lacunarity, opts.Gain)
		height := minHeight + h*(opts.HeightScale-minHeight)
		if !isFinite(height) || height < minHeight {
			height = minHeight
		}
		if height > tallestH {
			tallestH = height
			tallest = i
		}

		w := opts.ColumnWidth
		f.Bodies = append(f.Bodies, scene.BodyDef{
			Name:   fmt.Sprintf("column-%d", i),
			Pos:    [2]float32{float32(i) * w, opts.Height - height},
			Size:   [2]float32{w, height},
			Static: true,
			Color:  "#4a4a55",
			Shape: &scene.ShapeDef{
				Kind: "box",
				Size: [2]float32{w, height},
			},
		})
	}

	// A ramp sitting on the tallest column, sloping down to the right.
	rampW := opts.ColumnWidth * 3
	rampH := opts.HeightScale * 0.4
	rampX := float32(tallest) * opts.ColumnWidth
	if rampX+rampW > opts.Width {
		rampX = opts.Width - rampW
	}
	f.Bodies = append(f.Bodies, scene.BodyDef{
		Name:   "ramp",
		Pos:    [2]float32{rampX, opts.Height - tallestH - rampH},
		Size:   [2]float32{rampW, rampH},
		Static: true,
		Color:  "#336633",
		Shape: &scene.ShapeDef{
			Kind:  "triangle",
			Verts: [][2]float32{{0, 0}, {rampW, rampH}, {0, rampH}},
		},
	})

	// Dynamic bodies spread across the top, alternating circles and
	// boxes, with noise-driven sizes and masses.
	for i := 0; i < opts.Drops; i++ {
		n := hash1D(int32(i), int32(seed)+7919)
		size := 16 + n*24
		mass := 1 + n*6
		x := (float32(i) + 0.5) * opts.Width / float32(opts.Drops)
		def := scene.BodyDef{
			Name:  fmt.Sprintf("drop-%d", i),
			Pos:   [2]float32{x, 40 + n*80},
			Size:  [2]float32{size, size},
			Mass:  &mass,
			Color: dropPalette[i%len(dropPalette)],
		}
		if i%2 == 0 {
			def.Shape = &scene.ShapeDef{Kind: "circle", Radius: size / 2}
		} else {
			def.Shape = &scene.ShapeDef{Kind: "box", Size: [2]float32{size, size}}
		}
		f.Bodies = append(f.Bodies, def)
	}

	return f
}

// fractalValueNoise1D is layered smooth value noise with configurable
// octaves, lacunarity, and gain. Output is in [0,1].
func fractalValueNoise1D(x float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum float32
	var amplitude float32 = 1
	var maxAmp float32
	freq := float32(1)

	for i := 0; i < octaves; i++ {
		n := valueNoise1D(x*freq, int32(seed)+int32(i))
		sum += n * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise1D is smooth value noise in [0,1] using a hash-based lattice
// and cubic easing.
func valueNoise1D(x float32, seed int32) float32 {
	x0 := int32(math.Floor(float64(x)))
	tx := x - float32(x0)

	v0 := hash1D(x0, seed)
	v1 := hash1D(x0+1, seed)
	return lerp(v0, v1, smoothStep(tx))
}

// hash1D maps an integer lattice coordinate to a deterministic
// pseudo-random float in [0,1].
func hash1D(x, seed int32) float32 {
	n := x*374761393 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is Perlin-style cubic easing: 3t² - 2t³.
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

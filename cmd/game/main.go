package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/debug"
	"physics-engine/internal/engineconfig"
	"physics-engine/internal/graphics"
	"physics-engine/internal/logger"
	"physics-engine/internal/mapgen"
	"physics-engine/internal/render"
	"physics-engine/internal/scene"
	"physics-engine/internal/sprites"
)

// fixedDt is the simulation tick interval in seconds. The step always
// advances by exactly this much regardless of wall-clock frame time.
const fixedDt = float32(1.0 / 60.0)

func main() {
	prefs, _ := engineconfig.Load()
	scenePath := flag.String("scene", prefs.Scene, "scene file to load")
	generate := flag.Bool("gen", false, "ignore -scene and run a procedurally generated scene")
	seed := flag.Int64("seed", 0, "seed for -gen (0 = time-based)")
	flag.Parse()

	log := logger.New()

	var scn *scene.Scene
	var err error
	if *generate {
		opts := mapgen.DefaultOptions()
		opts.Seed = *seed
		scn, err = scene.Build(mapgen.Generate(opts))
	} else {
		scn, err = scene.Load(*scenePath)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "load scene:", err)
		os.Exit(1)
	}
	log.Logf("loaded scene %q (%d bodies)", scn.Name, len(scn.World.Bodies))

	// Live reload: edits to any scene file in the scene's directory swap
	// the world in between frames. Best-effort; the sim runs without it.
	var events <-chan string
	if !*generate {
		if w, err := scene.NewWatcher(filepath.Dir(*scenePath)); err == nil {
			events = w.Events
			defer w.Close()
		} else {
			log.Logf("scene watcher unavailable: %v", err)
		}
	}

	cache := sprites.NewCache("assets/sprites")
	defer cache.Unload()

	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowMemAlloc = prefs.ShowMemAlloc

	paused := prefs.StartPaused

	update := func() {
		select {
		case path := <-events:
			next, err := scene.Load(*scenePath)
			if err != nil {
				log.Logf("scene reload after %s failed: %v", path, err)
				break
			}
			scn = next
			log.Logf("reloaded scene %q (%d bodies)", scn.Name, len(scn.World.Bodies))
		default:
		}

		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}
		if !paused {
			scn.World.Step(fixedDt)
		}
	}

	draw := func() {
		render.Draw(scn, cache)
		dbg.Draw(len(scn.World.Bodies), paused)
	}

	graphics.Run(int32(scn.World.Width), int32(scn.World.Height), "physics-engine - "+scn.Name, update, draw)
}

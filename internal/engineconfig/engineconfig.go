package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EngineConfigPath is the path to the engine config file, relative to the
// process working directory.
const EngineConfigPath = "config/engine.json"

// Prefs holds engine-only preferences (debug overlays, default scene,
// startup pause). Persisted across runs; scene content itself lives in
// scene files, not here.
type Prefs struct {
	ShowFPS      bool   `json:"show_fps"`
	ShowMemAlloc bool   `json:"show_memalloc"`
	StartPaused  bool   `json:"start_paused"`
	Scene        string `json:"scene,omitempty"`
}

// Default returns default engine preferences (overlays off, demo scene).
func Default() Prefs {
	return Prefs{
		ShowFPS:      false,
		ShowMemAlloc: false,
		StartPaused:  false,
		Scene:        "assets/scenes/demo.yaml",
	}
}

// Load reads engine preferences from config/engine.json. If the file is
// missing or invalid, returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(EngineConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.Scene == "" {
		p.Scene = Default().Scene
	}
	return p, nil
}

// Save writes engine preferences to config/engine.json, creating the
// config directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(EngineConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(EngineConfigPath, data, 0644)
}

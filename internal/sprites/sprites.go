package sprites

import (
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Cache loads textures by sprite id (a file name under the sprite
// directory). Textures are loaded on first use so GPU upload happens
// after the window/OpenGL context exists; ids that fail to load are
// remembered and not retried every frame.
type Cache struct {
	dir     string
	loaded  map[string]rl.Texture2D
	missing map[string]bool
}

// NewCache returns an empty cache rooted at dir (e.g. assets/sprites).
func NewCache(dir string) *Cache {
	return &Cache{
		dir:     dir,
		loaded:  make(map[string]rl.Texture2D),
		missing: make(map[string]bool),
	}
}

// Get returns the texture for id, loading it on first use. ok is false
// when the id is empty or the file could not be loaded; the caller should
// fall back to drawing a filled shape.
func (c *Cache) Get(id string) (rl.Texture2D, bool) {
	if id == "" || c.missing[id] {
		return rl.Texture2D{}, false
	}
	if tex, ok := c.loaded[id]; ok {
		return tex, true
	}

	tex := rl.LoadTexture(filepath.Join(c.dir, id))
	if !rl.IsTextureValid(tex) {
		c.missing[id] = true
		return rl.Texture2D{}, false
	}
	c.loaded[id] = tex
	return tex, true
}

// Unload releases every loaded texture. Call before closing the window.
func (c *Cache) Unload() {
	for id, tex := range c.loaded {
		rl.UnloadTexture(tex)
		delete(c.loaded, id)
	}
}

package painter

import (
	"github.com/glazegl/glaze/frame"
	"github.com/glazegl/glaze/gfx"
)

// textureCache owns the mapping from logical texture id to renderer-owned
// texture. It is the sole owner of the textures it holds; lookups hand out
// non-owning references scoped to the caller's frame.
type textureCache struct {
	factory  gfx.TextureFactory
	blend    gfx.BlendMode
	textures map[frame.TextureID]gfx.Texture
}

func newTextureCache(factory gfx.TextureFactory, blend gfx.BlendMode) *textureCache {
	return &textureCache{
		factory:  factory,
		blend:    blend,
		textures: make(map[frame.TextureID]gfx.Texture),
	}
}

// upsert applies one set-delta entry: create on first write, regional
// update in place afterwards. Texture size is fixed by the first delta's
// image dimensions; later deltas only overwrite their own region.
func (c *textureCache) upsert(id frame.TextureID, delta frame.ImageDelta) error {
	pixels, err := delta.Image.RGBA()
	if err != nil {
		return &TextureUpdateError{ID: id, Err: err}
	}

	tex, ok := c.textures[id]
	if !ok {
		tex, err = c.factory.CreateTexture(delta.Image.Width, delta.Image.Height, c.blend)
		if err != nil {
			// No entry is inserted for a failed creation.
			return &TextureCreateError{ID: id, Err: err}
		}
		c.textures[id] = tex
	}

	if err := tex.Update(delta.Region(), pixels, delta.Image.Width*4); err != nil {
		return &TextureUpdateError{ID: id, Err: err}
	}
	return nil
}

// remove destroys the texture held for id, reporting whether one existed.
func (c *textureCache) remove(id frame.TextureID) bool {
	tex, ok := c.textures[id]
	if !ok {
		return false
	}
	delete(c.textures, id)
	tex.Destroy()
	return true
}

// get looks up the texture for id without transferring ownership.
func (c *textureCache) get(id frame.TextureID) (gfx.Texture, bool) {
	tex, ok := c.textures[id]
	return tex, ok
}

// clear destroys every held texture.
func (c *textureCache) clear() {
	for id, tex := range c.textures {
		delete(c.textures, id)
		tex.Destroy()
	}
}

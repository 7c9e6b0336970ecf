package painter

import (
	"fmt"

	"github.com/glazegl/glaze/frame"
)

// Every error here signals either a backend limitation or a desynchronized
// texture-delta stream between the GUI engine and the painter; none is
// retryable within a frame. A failing Paint call aborts where it stands and
// may leave the frame partially drawn — presenting or discarding it is the
// caller's decision.

// TextureCreateError wraps a renderer failure while allocating a texture.
type TextureCreateError struct {
	ID  frame.TextureID
	Err error
}

func (e *TextureCreateError) Error() string {
	return fmt.Sprintf("painter: create texture %d: %v", e.ID, e.Err)
}

func (e *TextureCreateError) Unwrap() error { return e.Err }

// TextureUpdateError wraps a renderer failure while uploading pixels into
// an existing texture.
type TextureUpdateError struct {
	ID  frame.TextureID
	Err error
}

func (e *TextureUpdateError) Error() string {
	return fmt.Sprintf("painter: update texture %d: %v", e.ID, e.Err)
}

func (e *TextureUpdateError) Unwrap() error { return e.Err }

// FreeUnknownTextureError reports a free-delta entry naming a texture the
// painter does not hold. Not ignorable: it means the engine and the painter
// disagree about which textures exist.
type FreeUnknownTextureError struct {
	ID frame.TextureID
}

func (e *FreeUnknownTextureError) Error() string {
	return fmt.Sprintf("painter: free texture %d: texture does not exist", e.ID)
}

// DrawUnknownTextureError reports a mesh primitive naming a texture the
// painter does not hold. Same desync as FreeUnknownTextureError, discovered
// while drawing instead.
type DrawUnknownTextureError struct {
	ID frame.TextureID
}

func (e *DrawUnknownTextureError) Error() string {
	return fmt.Sprintf("painter: draw with texture %d: texture does not exist", e.ID)
}

// Package assets loads image files into the frame's RGBA8 pixel format.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/glazegl/glaze/frame"
	"github.com/glazegl/glaze/gfx"
)

// LoadImage decodes a PNG or JPEG file into a straight-alpha frame.Image.
// Images larger than maxDim on either axis are scaled down to fit,
// preserving aspect ratio; maxDim <= 0 disables scaling.
func LoadImage(path string, maxDim int) (frame.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return frame.Image{}, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return frame.Image{}, fmt.Errorf("decode %q: %w", path, err)
	}

	return FromImage(img, maxDim), nil
}

// FromImage converts any image.Image, scaling down to maxDim if needed.
func FromImage(img image.Image, maxDim int) frame.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim > 0 && (w > maxDim || h > maxDim) {
		if w >= h {
			h = h * maxDim / w
			w = maxDim
		} else {
			w = w * maxDim / h
			h = maxDim
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)

	// Repack as []gfx.Color, tight rows, top-left origin.
	pixels := make([]gfx.Color, 0, w*h)
	for y := 0; y < h; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for x := 0; x < w*4; x += 4 {
			pixels = append(pixels, gfx.Color{row[x], row[x+1], row[x+2], row[x+3]})
		}
	}
	return frame.Image{Width: w, Height: h, Pixels: pixels}
}

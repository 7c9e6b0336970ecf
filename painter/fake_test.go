package painter

import (
	"fmt"
	"image"

	"github.com/glazegl/glaze/gfx"
)

// fakeTexture keeps a CPU copy of the texture content so tests can assert
// regional update semantics byte for byte.
type fakeTexture struct {
	size      image.Point
	pix       []byte // tightly packed RGBA8, stride size.X*4
	updates   int
	destroyed bool
	failNext  error
}

func (t *fakeTexture) Update(region image.Rectangle, pixels []byte, stride int) error {
	if t.failNext != nil {
		err := t.failNext
		t.failNext = nil
		return err
	}
	bounds := image.Rectangle{Max: t.size}
	if !region.In(bounds) {
		return fmt.Errorf("update region %v outside %v", region, t.size)
	}
	if stride != region.Dx()*4 {
		return fmt.Errorf("stride %d, want %d", stride, region.Dx()*4)
	}
	texStride := t.size.X * 4
	for y := 0; y < region.Dy(); y++ {
		dst := (region.Min.Y+y)*texStride + region.Min.X*4
		src := y * stride
		copy(t.pix[dst:dst+stride], pixels[src:src+stride])
	}
	t.updates++
	return nil
}

func (t *fakeTexture) Size() image.Point { return t.size }

func (t *fakeTexture) Destroy() { t.destroyed = true }

type fakeFactory struct {
	created    []*fakeTexture
	blends     []gfx.BlendMode
	failCreate error
}

func (f *fakeFactory) CreateTexture(width, height int, blend gfx.BlendMode) (gfx.Texture, error) {
	if f.failCreate != nil {
		return nil, f.failCreate
	}
	tex := &fakeTexture{size: image.Pt(width, height), pix: make([]byte, width*height*4)}
	f.created = append(f.created, tex)
	f.blends = append(f.blends, blend)
	return tex, nil
}

type drawCall struct {
	tex      gfx.Texture
	vertices int
	indices  int
	clip     image.Rectangle
}

// fakeTarget records draw calls with the clip rect active at call time.
type fakeTarget struct {
	clip     image.Rectangle
	clipSet  bool
	resets   int
	draws    []drawCall
	failDraw error
}

func (ft *fakeTarget) SetClipRect(r image.Rectangle) error {
	ft.clip = r
	ft.clipSet = true
	return nil
}

func (ft *fakeTarget) ResetClipRect() error {
	ft.clipSet = false
	ft.resets++
	return nil
}

func (ft *fakeTarget) DrawGeometry(tex gfx.Texture, vertices []gfx.Vertex, indices []uint32) error {
	if ft.failDraw != nil {
		return ft.failDraw
	}
	ft.draws = append(ft.draws, drawCall{
		tex:      tex,
		vertices: len(vertices),
		indices:  len(indices),
		clip:     ft.clip,
	})
	return nil
}

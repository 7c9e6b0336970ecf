package gfx

// BlendFactor selects a multiplier for one blend input.
type BlendFactor uint8

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
)

// BlendOp combines the weighted source and destination terms.
type BlendOp uint8

const (
	BlendAdd BlendOp = iota
	BlendSubtract
	BlendReverseSubtract
)

// BlendChannel is one half of a blend equation:
// out = src*Src (Op) dst*Dst.
type BlendChannel struct {
	Src, Dst BlendFactor
	Op       BlendOp
}

// BlendMode is a value-level custom blend descriptor, color and alpha
// channels composed separately. Plain struct equality compares descriptors.
type BlendMode struct {
	Color, Alpha BlendChannel
}

// PremultipliedAlphaBlend returns the "straight-alpha source over
// premultiplied destination" composition the GUI tessellator assumes:
//
//	dst.rgb = src.rgb*1 + dst.rgb*(1-src.a)
//	dst.a   = src.a*1   + dst.a*(1-src.a)
//
// The built-in alpha-blend presets of common renderers multiply src.rgb by
// src.a, which double-applies alpha here, so the mode is hand-composed.
func PremultipliedAlphaBlend() BlendMode {
	return BlendMode{
		Color: BlendChannel{Src: BlendOne, Dst: BlendOneMinusSrcAlpha, Op: BlendAdd},
		Alpha: BlendChannel{Src: BlendOneMinusDstAlpha, Dst: BlendOne, Op: BlendAdd},
	}
}

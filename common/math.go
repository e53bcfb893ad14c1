package common

import "image/color"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// LerpColor blends two colors in non-premultiplied space. A nil color is
// treated as opaque black.
func LerpColor(a, b color.Color, t float32) color.NRGBA {
	ca, cb := toNRGBA(a), toNRGBA(b)
	return color.NRGBA{
		R: uint8(Lerp(float32(ca.R), float32(cb.R), t) + 0.5),
		G: uint8(Lerp(float32(ca.G), float32(cb.G), t) + 0.5),
		B: uint8(Lerp(float32(ca.B), float32(cb.B), t) + 0.5),
		A: uint8(Lerp(float32(ca.A), float32(cb.A), t) + 0.5),
	}
}

// Fade scales a color's alpha by f in [0, 1].
func Fade(c color.Color, f float32) color.NRGBA {
	n := toNRGBA(c)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	n.A = uint8(float32(n.A)*f + 0.5)
	return n
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

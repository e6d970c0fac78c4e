package render

import "image/color"

// fillRGBA converts cell colors into RGBA pixels in buf. Cells past the end of
// buf are dropped.
func fillRGBA(buf []byte, cells []color.NRGBA) {
	for i, c := range cells {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// blend composites src over dst with the given opacity in [0, 1].
func blend(dst, src color.NRGBA, opacity float64) color.NRGBA {
	a := opacity * float64(src.A) / 255
	if a <= 0 {
		return dst
	}
	if a >= 1 {
		return color.NRGBA{R: src.R, G: src.G, B: src.B, A: 255}
	}
	mix := func(d, s uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a) + 0.5)
	}
	return color.NRGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}

// Shade returns c with its alpha scaled by opacity.
func Shade(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float64(c.A)*opacity + 0.5)
	return c
}

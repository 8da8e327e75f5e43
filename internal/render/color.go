package render

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/nwatkins/driftloop/internal/domain"
)

// framePalette is the blueprint palette decoded once per frame.
type framePalette struct {
	background color.RGBA
	primary    color.RGBA
	secondary  color.RGBA
	highlight  color.RGBA
}

func resolvePalette(p domain.Palette) framePalette {
	return framePalette{
		background: hexRGBA(p.Background),
		primary:    hexRGBA(p.Primary),
		secondary:  hexRGBA(p.Secondary),
		highlight:  hexRGBA(p.Highlight),
	}
}

func hexRGBA(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// shiftLum scales each RGB channel by (1+amount) and clamps to [0, 255].
// Deliberately not a perceptual blend; visual parity depends on the plain
// channel scaling.
func shiftLum(c color.RGBA, amount float64) color.RGBA {
	scale := func(ch uint8) uint8 {
		v := float64(ch) * (1 + amount)
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}

// blendPixel composites c over the existing pixel with the given alpha.
// The surface is opaque, so this is plain source-over without premultiply
// bookkeeping.
func blendPixel(img *image.RGBA, x, y int, c color.RGBA, alpha float64) {
	if alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	i := img.PixOffset(x, y)
	mix := func(dst uint8, src uint8) uint8 {
		return uint8(float64(dst)*(1-alpha) + float64(src)*alpha)
	}
	img.Pix[i+0] = mix(img.Pix[i+0], c.R)
	img.Pix[i+1] = mix(img.Pix[i+1], c.G)
	img.Pix[i+2] = mix(img.Pix[i+2], c.B)
	img.Pix[i+3] = 255
}

func setRow(img *image.RGBA, y int, c color.RGBA) {
	bounds := img.Bounds()
	i := img.PixOffset(bounds.Min.X, y)
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = 255
		i += 4
	}
}

func fract(v float64) float64 {
	return v - math.Floor(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

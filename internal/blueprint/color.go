package blueprint

import (
	"fmt"
	"strconv"
	"strings"
)

// rgb is a plain 8-bit-per-channel color used for palette math.
type rgb struct {
	r, g, b uint8
}

// parseHex decodes "#rrggbb". Malformed input returns mid gray rather than an
// error; palettes are static catalog data, so this only guards typos.
func parseHex(s string) rgb {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return rgb{r: 128, g: 128, b: 128}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rgb{r: 128, g: 128, b: 128}
	}
	return rgb{r: uint8(v >> 16), g: uint8(v >> 8), b: uint8(v)}
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// shift scales every channel by (1+amount) and clamps to [0, 255]. Negative
// amounts darken. This is the same channel-scaling blend the renderer uses for
// luminance shifts; palette derivation reuses it so both stay in sync.
func (c rgb) shift(amount float64) rgb {
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
	return rgb{r: scale(c.r), g: scale(c.g), b: scale(c.b)}
}

// mix linearly interpolates toward other by t in [0, 1].
func (c rgb) mix(other rgb, t float64) rgb {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return rgb{r: lerp(c.r, other.r), g: lerp(c.g, other.g), b: lerp(c.b, other.b)}
}

package render

import (
	"image"
	"math"

	"github.com/nwatkins/driftloop/internal/domain"
)

// paintBackground fills the surface with a vertical gradient whose stop and
// luminance ride sin(phase*2pi), so frame(0) and frame(1-) meet without a seam.
func paintBackground(img *image.RGBA, pal framePalette, phase float64) {
	bounds := img.Bounds()
	h := bounds.Dy()
	wave := math.Sin(phase * twoPi)
	stop := 0.5 + 0.18*wave

	for y := 0; y < h; y++ {
		t := float64(y) / float64(h-1)
		var c = pal.background
		if t < stop {
			c = lerpRGBA(pal.background, pal.secondary, (t/stop)*0.55)
		} else {
			c = lerpRGBA(pal.secondary, pal.background, (t-stop)/(1-stop))
		}
		setRow(img, bounds.Min.Y+y, shiftLum(c, 0.08*wave))
	}
}

// blobGeometry returns the normalized center, radius, and rotation for blob k
// of n at the given phase. Frequencies are integer multiples of the loop so
// every term is exactly periodic in phase.
func blobGeometry(m domain.MotionProfile, k, n int, phase float64) (cx, cy, radius, rot float64) {
	fk := float64(1 + k%3)
	wobble := math.Sin(twoPi*phase*fk + float64(k))

	radius = (0.16 + 0.05*float64(k%4)) * (1 + 0.12*m.LoopHarmony*wobble)
	cx = 0.5 + math.Sin(twoPi*phase+float64(k))*m.DepthShift*0.18
	cy = 0.18 + 0.64*float64(k)/float64(n) + math.Cos(twoPi*phase+2*float64(k))*m.DepthShift*0.08
	rot = 0.4 * math.Sin(twoPi*phase+float64(k)*0.9)
	return cx, cy, radius, rot
}

// paintBlobs draws the soft elliptical oscillator layers, back to front, each
// filled with a radial highlight→primary→secondary gradient.
func paintBlobs(img *image.RGBA, b *domain.VariantBlueprint, pal framePalette, phase float64) {
	bounds := img.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	n := b.Motion.OscillatorCount
	if n < 3 {
		n = 3
	}

	for k := 0; k < n; k++ {
		ncx, ncy, nr, rot := blobGeometry(b.Motion, k, n, phase)

		cx := ncx * w
		cy := ncy * h
		rx := nr * w
		ry := rx * 0.8
		alpha := clamp01(0.35 + 0.25*math.Sin(twoPi*phase+float64(k)*1.7))

		sin, cos := math.Sin(rot), math.Cos(rot)

		x0 := int(cx - rx - 1)
		x1 := int(cx + rx + 1)
		y0 := int(cy - rx - 1)
		y1 := int(cy + rx + 1)

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				dx := float64(x) - cx
				dy := float64(y) - cy
				u := (dx*cos + dy*sin) / rx
				v := (-dx*sin + dy*cos) / ry
				d := math.Sqrt(u*u + v*v)
				if d >= 1 {
					continue
				}
				var c = pal.primary
				if d < 0.45 {
					c = lerpRGBA(pal.highlight, pal.primary, d/0.45)
				} else {
					c = lerpRGBA(pal.primary, pal.secondary, (d-0.45)/0.55)
				}
				blendPixel(img, x, y, c, alpha*(1-d*d))
			}
		}
	}
}

// strokeOffset returns the normalized vertical offset of stroke i at the given
// phase; the offset cycles through [0,1) so strokes flow downward and re-enter
// at the top.
func strokeOffset(i int, phase float64) float64 {
	return fract(phase + float64(i)/strokeCount)
}

// paintStrokes draws the seven flowing curved strokes.
func paintStrokes(img *image.RGBA, b *domain.VariantBlueprint, pal framePalette, phase float64) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := float64(bounds.Dy())
	thickness := h * 0.004
	if thickness < 1 {
		thickness = 1
	}

	for i := 0; i < strokeCount; i++ {
		yBase := strokeOffset(i, phase) * h
		c := shiftLum(pal.primary, 0.3*math.Sin(phase*2*twoPi+float64(i)))

		for x := 0; x < w; x++ {
			t := float64(x) / float64(w)
			y := yBase + math.Sin(twoPi*t*2+float64(i))*0.02*h
			for dy := 0; dy < int(thickness); dy++ {
				blendPixel(img, bounds.Min.X+x, bounds.Min.Y+int(y)+dy, c, 0.18)
			}
		}
	}
}

// speckleHash is the lightweight deterministic hash placing speckle idx: the
// classic fract(sin(...)*large) construction, seeded only by the index and the
// blueprint's texture parameters so placement reproduces from (index, phase,
// blueprint) alone.
func speckleHash(idx int, tx domain.TextureProfile) (hx, hy float64) {
	hx = fract(math.Sin(float64(idx)*12.9898+tx.Bubble*78.233) * 43758.5453)
	hy = fract(math.Cos(float64(idx)*4.898+tx.Ripple*7.23) * 23421.631)
	return hx, hy
}

// paintSpeckles scatters the grain-sized speckle field. Speckles drift one
// full surface height per loop, which keeps them periodic in phase.
func paintSpeckles(img *image.RGBA, b *domain.VariantBlueprint, pal framePalette, phase float64) {
	bounds := img.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	count := 40 + int(b.Texture.Grain*160)
	size := bounds.Dy() / 480
	if size < 1 {
		size = 1
	}

	for idx := 0; idx < count; idx++ {
		hx, hy := speckleHash(idx, b.Texture)
		x := int(hx * w)
		y := int(fract(hy+phase) * h)
		alpha := 0.25 * (0.5 + 0.5*math.Sin(twoPi*phase+float64(idx)))

		for dy := 0; dy < size; dy++ {
			for dx := 0; dx < size; dx++ {
				blendPixel(img, bounds.Min.X+x+dx, bounds.Min.Y+y+dy, pal.highlight, alpha)
			}
		}
	}
}

// bubbleGeometry returns the normalized center and radius of bubble i at the
// given phase. Bubbles orbit the center once per loop.
func bubbleGeometry(i int, phase float64) (cx, cy, radius float64) {
	ang := twoPi * (phase + float64(i)/bubbleCount)
	cx = 0.5 + math.Cos(ang)*0.32
	cy = 0.5 + math.Sin(ang)*0.38
	radius = (0.012 + 0.005*float64(i%5)) * (1 + 0.3*math.Sin(twoPi*phase+float64(i)))
	return cx, cy, radius
}

// paintBubbles draws the twenty translucent bubbles over everything else.
func paintBubbles(img *image.RGBA, b *domain.VariantBlueprint, pal framePalette, phase float64) {
	bounds := img.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	for i := 0; i < bubbleCount; i++ {
		ncx, ncy, nr := bubbleGeometry(i, phase)
		cx := ncx * w
		cy := ncy * h
		r := nr * w

		x0, x1 := int(cx-r-1), int(cx+r+1)
		y0, y1 := int(cy-r-1), int(cy+r+1)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				dx := float64(x) - cx
				dy := float64(y) - cy
				d := math.Sqrt(dx*dx+dy*dy) / r
				if d >= 1 {
					continue
				}
				// Thin bright rim, faint fill.
				alpha := 0.12
				if d > 0.82 {
					alpha = 0.3
				}
				blendPixel(img, x, y, pal.highlight, alpha)
			}
		}
	}
}

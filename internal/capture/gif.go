package capture

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

// encodeGIF writes the frame sequence as a looping animated GIF. Frames are
// quantized to the Plan9 palette with Floyd-Steinberg dithering; the delay is
// derived from fps in GIF's centisecond units.
func encodeGIF(w io.Writer, frames []*image.RGBA, fps int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	if fps <= 0 {
		fps = 30
	}
	delay := 100 / fps
	if delay < 2 {
		delay = 2 // GIF renderers treat smaller delays as unspecified
	}

	out := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		p := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, frame.Bounds(), frame, image.Point{})
		out.Image = append(out.Image, p)
		out.Delay = append(out.Delay, delay)
	}

	if err := gif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return nil
}

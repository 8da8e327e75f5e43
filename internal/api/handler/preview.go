package handler

import (
	"fmt"
	"image/jpeg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nwatkins/driftloop/internal/blueprint"
	"github.com/nwatkins/driftloop/internal/render"
)

const previewFPS = 12

// Preview handles GET /api/v1/preview. It interprets the prompt, generates
// the requested variant, and streams it as multipart JPEG frames in real time
// until the client disconnects. Nothing is captured or persisted.
func (h *LoopHandler) Preview(c *gin.Context) {
	prompt := c.Query("prompt")
	if prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'prompt' is required"})
		return
	}

	index := 0
	if raw := c.Query("variant"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > blueprint.VariantCount {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("variant must be 1-%d", blueprint.VariantCount),
			})
			return
		}
		index = parsed - 1
	}

	interp := h.pipeline.Interpret(prompt)
	bp := blueprint.Generate(interp)[index]

	c.Header("Content-Type", "multipart/x-mixed-replace; boundary=frame")
	c.Header("Cache-Control", "no-cache")
	c.Status(http.StatusOK)

	flusher, canFlush := c.Writer.(http.Flusher)
	renderer := h.pipeline.Renderer()

	ctx := c.Request.Context()
	sched := render.NewLoopScheduler(previewFPS, bp.DurationSec)
	sched.Start(ctx, func(phase float64) {
		frame := renderer.RenderFrame(bp, phase)
		fmt.Fprintf(c.Writer, "--frame\r\nContent-Type: image/jpeg\r\n\r\n")
		if err := jpeg.Encode(c.Writer, frame, &jpeg.Options{Quality: 80}); err != nil {
			return
		}
		fmt.Fprintf(c.Writer, "\r\n")
		if canFlush {
			flusher.Flush()
		}
	})

	<-ctx.Done()
	sched.Stop()
}

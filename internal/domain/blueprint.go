package domain

// NoiseColor selects the spectral shape of the synthesized soundtrack.
type NoiseColor string

const (
	NoiseWhite NoiseColor = "white"
	NoisePink  NoiseColor = "pink"
	NoiseBrown NoiseColor = "brown"
)

// Palette holds the four colors a frame is composed from, as #rrggbb hex.
type Palette struct {
	Background string `json:"background"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Highlight  string `json:"highlight"`
}

// MotionProfile drives the geometry of the visual loop.
//
// LoopHarmony is in [0, 0.98], Turbulence in [0, 0.5]; DepthShift and Shimmer
// are in [0, 1]. Out-of-range draws are clamped by the generator, never
// rejected.
type MotionProfile struct {
	OscillatorCount int     `json:"oscillator_count"`
	LoopHarmony     float64 `json:"loop_harmony"`
	Turbulence      float64 `json:"turbulence"`
	DepthShift      float64 `json:"depth_shift"`
	Shimmer         float64 `json:"shimmer"`
}

// AudioProfile drives the noise synthesizer. Seed makes the white source
// reproducible from the blueprint alone.
type AudioProfile struct {
	NoiseColor    NoiseColor `json:"noise_color"`
	FilterCutoff  float64    `json:"filter_cutoff_hz"`
	Gain          float64    `json:"gain"`
	TextureAmount float64    `json:"texture_amount"`
	PulseRate     float64    `json:"pulse_rate_hz"`
	Seed          uint32     `json:"seed"`
}

// TextureProfile drives the speckle and bubble overlays, all roughly in [0, 1].
type TextureProfile struct {
	Grain  float64 `json:"grain"`
	Bubble float64 `json:"bubble"`
	Ripple float64 `json:"ripple"`
}

// VariantBlueprint is one complete, immutable loop specification. Exactly three
// are produced per generation; IDs are "<trigger-id>-<index+1>".
type VariantBlueprint struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Trigger     *TriggerDefinition `json:"trigger"`
	DurationSec float64            `json:"duration_sec"` // ~5.2-8.4
	Palette     Palette            `json:"palette"`
	Motion      MotionProfile      `json:"motion"`
	Audio       AudioProfile       `json:"audio"`
	Texture     TextureProfile     `json:"texture"`
	Notes       string             `json:"notes"`
}

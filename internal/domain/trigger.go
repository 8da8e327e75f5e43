package domain

// TriggerDefinition describes one ASMR topic the interpreter can match a prompt
// against. Definitions are static: the catalog owns them and nothing mutates
// them after startup.
type TriggerDefinition struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	VisualHooks []string `json:"visual_hooks"`
	BasePalette []string `json:"base_palette"` // 2-3 hex colors
}

// Interpretation is the deterministic reading of a raw prompt. The trigger is a
// reference into the catalog, never a copy. Seed is a pure function of
// (cleaned prompt, trigger id); it is the single source of all downstream
// randomness.
type Interpretation struct {
	Prompt     string             `json:"prompt"` // cleaned: lower-cased, trimmed
	Trigger    *TriggerDefinition `json:"trigger"`
	FocusWords []string           `json:"focus_words"` // up to 5, input order
	Vibe       string             `json:"vibe"`
	Seed       uint32             `json:"seed"`
}

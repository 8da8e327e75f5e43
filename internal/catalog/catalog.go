// Package catalog holds the static trigger catalog: the topics a prompt can be
// matched against, in a fixed priority order. The catalog is initialized once
// and read-only for the life of the process.
package catalog

import "github.com/nwatkins/driftloop/internal/domain"

// DefaultTriggerID is used when neither the primary scan nor the fallback map
// matches a prompt.
const DefaultTriggerID = "slime"

// triggers is the primary catalog in priority order. The interpreter selects
// the first entry any of whose keywords occurs as a substring of the cleaned
// prompt, so order here is part of the matching contract.
var triggers = []domain.TriggerDefinition{
	{
		ID:          "slime",
		Label:       "Glossy Slime",
		Description: "Stretching, folding, and poking a glossy slime mass.",
		Keywords:    []string{"slime", "goo", "squish", "sticky"},
		VisualHooks: []string{"glossy folds", "stretch and fold", "poke ripples"},
		BasePalette: []string{"#8ef0c6", "#3bb7f0", "#f9f871"},
	},
	{
		ID:          "kinetic-sand",
		Label:       "Kinetic Sand",
		Description: "Knife slices through a packed block of kinetic sand.",
		Keywords:    []string{"kinetic sand", "sand", "crunch", "slice"},
		VisualHooks: []string{"knife slice", "crumbling edge", "soft collapse"},
		BasePalette: []string{"#f0c987", "#d98e5f"},
	},
	{
		ID:          "soap-cutting",
		Label:       "Soap Cutting",
		Description: "Cubes and curls shaved off a bar of dry soap.",
		Keywords:    []string{"soap", "carve", "shave", "cubes"},
		VisualHooks: []string{"cube cascade", "curling shavings"},
		BasePalette: []string{"#f7b2d9", "#b28dff", "#fff3fa"},
	},
	{
		ID:          "liquid",
		Label:       "Slow Liquid",
		Description: "Thick liquid poured in a slow, unbroken ribbon.",
		Keywords:    []string{"liquid", "pour", "honey", "syrup", "drip"},
		VisualHooks: []string{"slow pour", "surface tension beads"},
		BasePalette: []string{"#ffd36e", "#ff9e4f", "#7a3b00"},
	},
	{
		ID:          "tapping",
		Label:       "Tapping",
		Description: "Fingertips and acrylic nails tapping layered rhythms.",
		Keywords:    []string{"tapping", "tap", "nails", "click"},
		VisualHooks: []string{"fingertip drumroll", "acrylic clicks"},
		BasePalette: []string{"#9ad0ec", "#1572a1", "#e3f6ff"},
	},
	{
		ID:          "crackle",
		Label:       "Crackle",
		Description: "Carbonated fizz, static, and crinkling paper textures.",
		Keywords:    []string{"crackle", "fizz", "static", "crinkle"},
		VisualHooks: []string{"carbonated fizz", "paper crinkle"},
		BasePalette: []string{"#cdb4db", "#ffc8dd", "#4a4e69"},
	},
}

// FallbackEntry maps a near-miss keyword to a trigger id. Entries are scanned
// in slice order, which keeps the secondary lookup deterministic.
type FallbackEntry struct {
	Keyword   string
	TriggerID string
}

// fallbacks covers terms that don't belong to any single trigger's keyword set
// but still point at one. Keywords here are disjoint from the primary catalog.
var fallbacks = []FallbackEntry{
	{Keyword: "asmr", TriggerID: "slime"},
	{Keyword: "relax", TriggerID: "liquid"},
	{Keyword: "cut", TriggerID: "soap-cutting"},
	{Keyword: "crunchy", TriggerID: "kinetic-sand"},
	{Keyword: "bubble", TriggerID: "crackle"},
	{Keyword: "rain", TriggerID: "tapping"},
}

// Triggers returns the catalog in priority order.
func Triggers() []domain.TriggerDefinition {
	return triggers
}

// Fallbacks returns the secondary keyword→trigger entries in scan order.
func Fallbacks() []FallbackEntry {
	return fallbacks
}

// ByID returns the trigger with the given id, or nil if unknown.
func ByID(id string) *domain.TriggerDefinition {
	for i := range triggers {
		if triggers[i].ID == id {
			return &triggers[i]
		}
	}
	return nil
}

// Default returns the fallback trigger used for unmatchable prompts.
func Default() *domain.TriggerDefinition {
	return ByID(DefaultTriggerID)
}

// KnownKeywords returns every keyword the catalog understands: all primary
// trigger keywords plus the fallback keys. Used by the interpreter to decide
// whether a short token counts as a focus word.
func KnownKeywords() map[string]bool {
	known := make(map[string]bool)
	for i := range triggers {
		for _, kw := range triggers[i].Keywords {
			known[kw] = true
		}
	}
	for _, f := range fallbacks {
		known[f.Keyword] = true
	}
	return known
}

// Package interpret maps free-form prompt text to a catalog trigger plus the
// derived metadata (focus words, vibe string, seed) the rest of the pipeline
// runs on. Interpret never fails: garbage and empty input fall back to the
// default trigger.
package interpret

import (
	"fmt"
	"strings"

	"github.com/nwatkins/driftloop/internal/catalog"
	"github.com/nwatkins/driftloop/internal/domain"
)

const maxFocusWords = 5

// Interpret produces a deterministic Interpretation for the given prompt.
// The same prompt always yields the same trigger, focus words, and seed.
func Interpret(prompt string) *domain.Interpretation {
	cleaned := strings.ToLower(strings.TrimSpace(prompt))

	trigger := matchTrigger(cleaned)
	focus := focusWords(cleaned)

	return &domain.Interpretation{
		Prompt:     cleaned,
		Trigger:    trigger,
		FocusWords: focus,
		Vibe:       vibe(trigger, focus),
		Seed:       Seed(cleaned, trigger.ID),
	}
}

// matchTrigger scans the primary catalog in priority order for a keyword that
// occurs as a substring of the cleaned prompt, then the fallback map in its
// fixed order, then gives up and returns the default trigger.
func matchTrigger(cleaned string) *domain.TriggerDefinition {
	if cleaned != "" {
		for _, tr := range catalog.Triggers() {
			for _, kw := range tr.Keywords {
				if strings.Contains(cleaned, kw) {
					return catalog.ByID(tr.ID)
				}
			}
		}
		for _, f := range catalog.Fallbacks() {
			if strings.Contains(cleaned, f.Keyword) {
				return catalog.ByID(f.TriggerID)
			}
		}
	}
	return catalog.Default()
}

// focusWords keeps tokens that either exactly equal a known catalog keyword or
// are longer than four characters, capped at five, preserving input order.
func focusWords(cleaned string) []string {
	if cleaned == "" {
		return []string{}
	}
	known := catalog.KnownKeywords()
	focus := make([]string, 0, maxFocusWords)
	for _, tok := range strings.Fields(cleaned) {
		if !known[tok] && len(tok) <= 4 {
			continue
		}
		focus = append(focus, tok)
		if len(focus) == maxFocusWords {
			break
		}
	}
	return focus
}

// vibe builds the short display string shown next to the run.
func vibe(trigger *domain.TriggerDefinition, focus []string) string {
	if len(focus) == 0 {
		return fmt.Sprintf("%s loop", trigger.Label)
	}
	return fmt.Sprintf("%s loop tuned to %q", trigger.Label, focus[0])
}

// Seed computes the 32-bit rolling hash over "<cleaned>|<trigger-id>":
// multiply by 31, add the byte value, let uint32 arithmetic wrap. This single
// value is the source of all downstream randomness, so the exact formula is a
// compatibility contract.
func Seed(cleaned, triggerID string) uint32 {
	var h uint32
	for _, b := range []byte(cleaned + "|" + triggerID) {
		h = h*31 + uint32(b)
	}
	return h
}

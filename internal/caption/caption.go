// Package caption derives the publish metadata (caption text, hashtags,
// keywords) from an interpretation and the winning blueprint. Everything here
// is pure; keyword ordering is insertion-stable on purpose so output is
// reproducible.
package caption

import (
	"fmt"
	"strings"

	"github.com/nwatkins/driftloop/internal/domain"
)

const maxKeywords = 6

// Build assembles the caption payload for the winning blueprint.
func Build(interp *domain.Interpretation, winner *domain.VariantBlueprint) *domain.CaptionPayload {
	trigger := interp.Trigger
	triggerWords := strings.ReplaceAll(trigger.ID, "-", " ")

	keywords := dedupeKeep(append(
		[]string{"asmr", "satisfying", "shorts", triggerWords},
		interp.FocusWords...,
	), maxKeywords)

	accent := accentWord(interp)

	caption := fmt.Sprintf(
		"Dialed in a %s loop built around %s. %s Sound on for the full effect.",
		triggerWords, accent, winner.Notes+".",
	)

	hashtags := []string{
		"#asmr",
		"#satisfying",
		"#" + stripNonAlnum(trigger.ID),
		"#" + stripNonAlnum(accent),
		"#loop",
	}

	return &domain.CaptionPayload{
		Caption:  caption,
		Hashtags: hashtags,
		Keywords: keywords,
	}
}

// accentWord picks the word the caption pivots on: the first focus word with
// non-alphanumeric characters stripped, or the trigger's first visual hook when
// the prompt gave nothing usable.
func accentWord(interp *domain.Interpretation) string {
	if len(interp.FocusWords) > 0 {
		if w := stripNonAlnum(interp.FocusWords[0]); w != "" {
			return w
		}
	}
	return interp.Trigger.VisualHooks[0]
}

// dedupeKeep removes duplicates with set semantics while keeping the first
// occurrence's position, then truncates to limit.
func dedupeKeep(words []string, limit int) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, limit)
	for _, w := range words {
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
		if len(out) == limit {
			break
		}
	}
	return out
}

// stripNonAlnum drops every byte that is not a letter or digit. Hashtags and
// accent words must survive prompts like "s-l-i-m-e!!!".
func stripNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

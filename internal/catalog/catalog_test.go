package catalog

import "testing"

func TestTriggersAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, tr := range Triggers() {
		if tr.ID == "" {
			t.Fatal("trigger with empty id")
		}
		if seen[tr.ID] {
			t.Errorf("duplicate trigger id %q", tr.ID)
		}
		seen[tr.ID] = true

		if len(tr.Keywords) == 0 {
			t.Errorf("trigger %q has no keywords", tr.ID)
		}
		if len(tr.BasePalette) < 2 || len(tr.BasePalette) > 3 {
			t.Errorf("trigger %q has %d palette colors, want 2-3", tr.ID, len(tr.BasePalette))
		}
		if len(tr.VisualHooks) == 0 {
			t.Errorf("trigger %q has no visual hooks", tr.ID)
		}
	}
}

func TestDefaultTriggerExists(t *testing.T) {
	def := Default()
	if def == nil {
		t.Fatal("default trigger not found in catalog")
	}
	if def.ID != DefaultTriggerID {
		t.Errorf("default trigger id = %q, want %q", def.ID, DefaultTriggerID)
	}
}

func TestFallbacksPointAtRealTriggers(t *testing.T) {
	for _, f := range Fallbacks() {
		if ByID(f.TriggerID) == nil {
			t.Errorf("fallback %q points at unknown trigger %q", f.Keyword, f.TriggerID)
		}
	}
}

func TestFallbackKeywordsDisjointFromPrimary(t *testing.T) {
	primary := make(map[string]bool)
	for _, tr := range Triggers() {
		for _, kw := range tr.Keywords {
			primary[kw] = true
		}
	}
	for _, f := range Fallbacks() {
		if primary[f.Keyword] {
			t.Errorf("fallback keyword %q shadows a primary keyword", f.Keyword)
		}
	}
}

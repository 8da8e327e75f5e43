package interpret

import (
	"reflect"
	"testing"

	"github.com/nwatkins/driftloop/internal/catalog"
)

func TestInterpretDeterminism(t *testing.T) {
	prompt := "Crunchy kinetic sand ASMR"

	a := Interpret(prompt)
	b := Interpret(prompt)

	if a.Seed != b.Seed {
		t.Errorf("seed not stable: %d vs %d", a.Seed, b.Seed)
	}
	if a.Trigger.ID != b.Trigger.ID {
		t.Errorf("trigger not stable: %q vs %q", a.Trigger.ID, b.Trigger.ID)
	}
	if !reflect.DeepEqual(a.FocusWords, b.FocusWords) {
		t.Errorf("focus words not stable: %v vs %v", a.FocusWords, b.FocusWords)
	}
}

func TestInterpretTriggerMatching(t *testing.T) {
	tests := []struct {
		name        string
		prompt      string
		wantTrigger string
	}{
		{name: "kinetic sand keyword", prompt: "Crunchy kinetic sand ASMR", wantTrigger: "kinetic-sand"},
		{name: "slime keyword", prompt: "glossy slime poking", wantTrigger: "slime"},
		{name: "soap keyword", prompt: "dry SOAP shavings", wantTrigger: "soap-cutting"},
		{name: "honey maps to liquid", prompt: "thick honey ribbon", wantTrigger: "liquid"},
		{name: "fallback relax", prompt: "something to relax to", wantTrigger: "liquid"},
		{name: "fallback rain", prompt: "rain on a window", wantTrigger: "tapping"},
		{name: "no match falls back to default", prompt: "quarterly revenue forecast", wantTrigger: catalog.DefaultTriggerID},
		{name: "empty prompt", prompt: "", wantTrigger: catalog.DefaultTriggerID},
		{name: "whitespace prompt", prompt: "   \t  ", wantTrigger: catalog.DefaultTriggerID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpret(tt.prompt)
			if got.Trigger == nil {
				t.Fatal("nil trigger")
			}
			if got.Trigger.ID != tt.wantTrigger {
				t.Errorf("trigger = %q, want %q", got.Trigger.ID, tt.wantTrigger)
			}
		})
	}
}

func TestInterpretFocusWords(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   []string
	}{
		{
			name:   "long tokens and exact keywords survive",
			prompt: "Crunchy kinetic sand ASMR",
			want:   []string{"crunchy", "kinetic", "sand", "asmr"},
		},
		{
			name:   "short unknown tokens dropped",
			prompt: "a big wet goo blob now",
			want:   []string{"goo"},
		},
		{
			name:   "capped at five",
			prompt: "shimmering cascading bubbling crackling whispering tingling",
			want:   []string{"shimmering", "cascading", "bubbling", "crackling", "whispering"},
		},
		{
			name:   "empty prompt has none",
			prompt: "",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpret(tt.prompt)
			if !reflect.DeepEqual(got.FocusWords, tt.want) {
				t.Errorf("focus words = %v, want %v", got.FocusWords, tt.want)
			}
		})
	}
}

func TestSeedRollingHash(t *testing.T) {
	// h = h*31 + byte over "ab|slime" style input; spot-check the recurrence.
	var want uint32
	for _, b := range []byte("goo|slime") {
		want = want*31 + uint32(b)
	}
	if got := Seed("goo", "slime"); got != want {
		t.Errorf("Seed = %d, want %d", got, want)
	}

	if Seed("goo", "slime") == Seed("goo", "liquid") {
		t.Error("seed should depend on trigger id")
	}
	if Seed("goo", "slime") == Seed("gel", "slime") {
		t.Error("seed should depend on cleaned prompt")
	}
}

func TestInterpretEmptyPromptNeverFails(t *testing.T) {
	got := Interpret("")
	if got.Trigger.ID != catalog.DefaultTriggerID {
		t.Errorf("trigger = %q, want default %q", got.Trigger.ID, catalog.DefaultTriggerID)
	}
	if len(got.FocusWords) != 0 {
		t.Errorf("focus words = %v, want empty", got.FocusWords)
	}
	if got.Vibe == "" {
		t.Error("vibe should never be empty")
	}
}

package schema

import (
	"strings"
	"testing"
)

func TestFormatCompact(t *testing.T) {
	cfg := validConfig()
	out := cfg.FormatCompact()

	for _, want := range []string{"3 x 4-8 chars (en)", "2 before, 2 after", `"-"`, `"!" x2 before, x2 after`, "alternate"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatCompact() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatDetailed(t *testing.T) {
	cfg := validConfig()
	cfg.Meta = Meta{Name: "default", Description: "Balanced preset"}
	cfg.Separator = " "
	cfg.Padding.ToLength = 63
	cfg.Substitutions = map[string]string{"a": "4", "e": "3"}

	out := cfg.FormatDetailed()

	for _, want := range []string{
		"Name:        default",
		"Description: Balanced preset",
		"(space)",
		"to length 63",
		"a->4, e->3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatDetailed() missing %q in:\n%s", want, out)
		}
	}
}

func TestSummary(t *testing.T) {
	cfg := validConfig()
	if !strings.Contains(cfg.Summary(), "(unnamed)") {
		t.Errorf("Summary() without meta = %q, want unnamed marker", cfg.Summary())
	}

	cfg.Meta.Name = "xkcd"
	if !strings.HasPrefix(cfg.Summary(), "xkcd:") {
		t.Errorf("Summary() = %q, want name prefix", cfg.Summary())
	}
}

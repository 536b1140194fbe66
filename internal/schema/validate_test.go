package schema

import (
	"strings"
	"testing"
)

// validConfig returns a Config that passes every check. Tests mutate a copy.
func validConfig() Config {
	return Config{
		NumWords:         3,
		WordLength:       Range{Min: 4, Max: 8},
		Digits:           Digits{Before: 2, After: 2},
		Separator:        "-",
		Padding:          Padding{Char: "!", Before: 2, After: 2},
		SubstitutionMode: SubstitutionNone,
		CaseTransform:    CaseAlternate,
		Dictionary:       "en",
	}
}

// TestValidate tests the ordered field checks and their messages
func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantErr   bool
		wantMsg   string
		wantShape bool
	}{
		{"Valid: baseline", func(c *Config) {}, false, "", false},
		{"Valid: num_words lower bound", func(c *Config) { c.NumWords = 1 }, false, "", false},
		{"Valid: num_words upper bound", func(c *Config) { c.NumWords = 10 }, false, "", false},
		{"Invalid: num_words zero", func(c *Config) { c.NumWords = 0 }, true, "num_words must be between 1 and 10", false},
		{"Invalid: num_words too high", func(c *Config) { c.NumWords = 11 }, true, "num_words must be between 1 and 10", false},
		{"Valid: word_length fixed", func(c *Config) { c.WordLength = Range{Min: 4, Max: 4} }, false, "", false},
		{"Valid: word_length full span", func(c *Config) { c.WordLength = Range{Min: 4, Max: 10} }, false, "", false},
		{"Invalid: word_length min above max", func(c *Config) { c.WordLength = Range{Min: 6, Max: 5} }, true, "word_length min must be <= max", false},
		{"Invalid: word_length min too low", func(c *Config) { c.WordLength = Range{Min: 3, Max: 8} }, true, "word_length must be between 4 and 10", false},
		{"Invalid: word_length max too high", func(c *Config) { c.WordLength = Range{Min: 4, Max: 11} }, true, "word_length must be between 4 and 10", false},
		{"Valid: digits at bounds", func(c *Config) { c.Digits = Digits{Before: 0, After: 5} }, false, "", false},
		{"Invalid: digits before too high", func(c *Config) { c.Digits = Digits{Before: 6, After: 0} }, true, "digits before must be between 0 and 5", false},
		{"Invalid: digits after too high", func(c *Config) { c.Digits = Digits{Before: 0, After: 6} }, true, "digits after must be between 0 and 5", false},
		{"Invalid: digits negative", func(c *Config) { c.Digits = Digits{Before: -1, After: 0} }, true, "digits before must be between 0 and 5", false},
		{"Valid: empty separator", func(c *Config) { c.Separator = "" }, false, "", false},
		{"Valid: space separator", func(c *Config) { c.Separator = " " }, false, "", false},
		{"Invalid: multi-char separator", func(c *Config) { c.Separator = "--" }, true, "separator must be empty or a single character", true},
		{"Invalid: letter separator", func(c *Config) { c.Separator = "a" }, true, "separator contains invalid symbols", false},
		{"Invalid: padding char missing", func(c *Config) { c.Padding.Char = "" }, true, "padding must have a char key", true},
		{"Invalid: padding char multi-char", func(c *Config) { c.Padding.Char = "!!" }, true, "padding char must be a single character", true},
		{"Invalid: padding char letter", func(c *Config) { c.Padding.Char = "x" }, true, "padding char contains invalid symbols", false},
		{"Invalid: padding before too high", func(c *Config) { c.Padding.Before = 6 }, true, "padding before must be between 0 and 5", false},
		{"Invalid: padding after too high", func(c *Config) { c.Padding.After = 6 }, true, "padding after must be between 0 and 5", false},
		{"Valid: to_length zero", func(c *Config) { c.Padding.ToLength = 0 }, false, "", false},
		{"Valid: to_length lower bound", func(c *Config) { c.Padding.ToLength = 8 }, false, "", false},
		{"Valid: to_length upper bound", func(c *Config) { c.Padding.ToLength = 999 }, false, "", false},
		{"Invalid: to_length just below bound", func(c *Config) { c.Padding.ToLength = 7 }, true, "padding to_length must be 0 or between 8 and 999", false},
		{"Invalid: to_length just above bound", func(c *Config) { c.Padding.ToLength = 1000 }, true, "padding to_length must be 0 or between 8 and 999", false},
		{"Valid: substitutions single chars", func(c *Config) { c.Substitutions = map[string]string{"a": "4", "e": "3"} }, false, "", false},
		{"Invalid: substitution key too long", func(c *Config) { c.Substitutions = map[string]string{"ab": "4"} }, true, "substitutions keys must be a single character", true},
		{"Invalid: substitution value too long", func(c *Config) { c.Substitutions = map[string]string{"a": "42"} }, true, "substitutions values must be a single character", true},
		{"Invalid: substitution_mode unknown", func(c *Config) { c.SubstitutionMode = "sometimes" }, true, "substitution_mode must be one of none, always, random", false},
		{"Invalid: case_transform unknown", func(c *Config) { c.CaseTransform = "title" }, true, "case_transform must be one of none, alternate, capitalize, invert, lower, upper, random", false},
		{"Invalid: dictionary empty", func(c *Config) { c.Dictionary = "" }, true, "dictionary must be an identifier", true},
		{"Invalid: dictionary with spaces", func(c *Config) { c.Dictionary = "english words" }, true, "dictionary must be an identifier", true},
		{"Invalid: dictionary leading digit", func(c *Config) { c.Dictionary = "9lives" }, true, "dictionary must be an identifier", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Validate() message = %q, want %q", err.Error(), tt.wantMsg)
			}
			if !IsValidationError(err) {
				t.Errorf("Expected ValidationError, got %T", err)
			}
			if tt.wantShape && !IsShapeError(err) {
				t.Errorf("Expected shape error, got range error: %v", err)
			}
			if !tt.wantShape && !IsRangeError(err) {
				t.Errorf("Expected range error, got shape error: %v", err)
			}
		})
	}
}

// TestValidateFirstFailureWins tests that validation short-circuits in field
// order rather than aggregating errors
func TestValidateFirstFailureWins(t *testing.T) {
	cfg := validConfig()
	cfg.NumWords = 0
	cfg.Padding.ToLength = 7

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	if !strings.Contains(err.Error(), "num_words") {
		t.Errorf("Validate() = %q, want the num_words failure first", err.Error())
	}
}

func TestAllowedSymbols(t *testing.T) {
	symbols := AllowedSymbols()

	for _, r := range []rune{'-', '!', '@', '.', ' '} {
		if !strings.ContainsRune(symbols, r) {
			t.Errorf("AllowedSymbols() should contain %q", r)
		}
		if !IsAllowedSymbol(r) {
			t.Errorf("IsAllowedSymbol(%q) = false, want true", r)
		}
	}

	for _, r := range []rune{'a', 'Z', '0', '"'} {
		if IsAllowedSymbol(r) {
			t.Errorf("IsAllowedSymbol(%q) = true, want false", r)
		}
	}
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(validConfig())
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	if cfg.NumWords != 3 {
		t.Errorf("NewConfig().NumWords = %d, want 3", cfg.NumWords)
	}

	bad := validConfig()
	bad.NumWords = 0
	if _, err := NewConfig(bad); err == nil {
		t.Error("NewConfig() should reject an invalid config")
	}
}

func TestCloneIndependence(t *testing.T) {
	cfg := validConfig()
	cfg.Substitutions = map[string]string{"a": "4"}

	clone := cfg.Clone()
	clone.Substitutions["e"] = "3"

	if len(cfg.Substitutions) != 1 {
		t.Errorf("Clone() should not share the substitution map; original has %d entries", len(cfg.Substitutions))
	}
}

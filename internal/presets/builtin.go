package presets

import "github.com/muurk/phrasegen/internal/schema"

// BuiltinNames lists the built-in presets in their canonical order.
var BuiltinNames = []string{
	"default",
	"xkcd",
	"wifi",
	"web32",
	"web16",
	"apple_id",
	"security",
}

// builtins is the fixed preset catalog, constructed once at process start.
// MustConfig panics on an invalid literal, so a broken built-in is caught
// the first time the package is exercised.
var builtins = map[string]schema.Config{
	"default": schema.MustConfig(schema.Config{
		NumWords:         3,
		WordLength:       schema.Range{Min: 4, Max: 8},
		Digits:           schema.Digits{Before: 2, After: 2},
		Separator:        "-",
		Padding:          schema.Padding{Char: "!", Before: 2, After: 2},
		SubstitutionMode: schema.SubstitutionNone,
		CaseTransform:    schema.CaseAlternate,
		Dictionary:       "en",
		Meta: schema.Meta{
			Name:        "default",
			Description: "Balanced general-purpose passphrase: three words with digit groups and symbol padding.",
		},
	}),
	"xkcd": schema.MustConfig(schema.Config{
		NumWords:         5,
		WordLength:       schema.Range{Min: 4, Max: 8},
		Digits:           schema.Digits{Before: 0, After: 0},
		Separator:        "-",
		Padding:          schema.Padding{Char: "!"},
		SubstitutionMode: schema.SubstitutionNone,
		CaseTransform:    schema.CaseNone,
		Dictionary:       "en",
		Meta: schema.Meta{
			Name:        "xkcd",
			Description: "Five plain hyphen-separated words, no digits or padding.",
		},
	}),
	"wifi": schema.MustConfig(schema.Config{
		NumWords:         6,
		WordLength:       schema.Range{Min: 4, Max: 8},
		Digits:           schema.Digits{Before: 2, After: 2},
		Separator:        "-",
		Padding:          schema.Padding{Char: "!", ToLength: 63},
		SubstitutionMode: schema.SubstitutionNone,
		CaseTransform:    schema.CaseAlternate,
		Dictionary:       "en",
		Meta: schema.Meta{
			Name:        "wifi",
			Description: "Padded to the 63-character WPA2 maximum for router configuration.",
		},
	}),
	"web32": schema.MustConfig(schema.Config{
		NumWords:         4,
		WordLength:       schema.Range{Min: 4, Max: 5},
		Digits:           schema.Digits{Before: 2, After: 2},
		Separator:        "-",
		Padding:          schema.Padding{Char: "*", Before: 1, After: 1},
		SubstitutionMode: schema.SubstitutionNone,
		CaseTransform:    schema.CaseAlternate,
		Dictionary:       "en",
		Meta: schema.Meta{
			Name:        "web32",
			Description: "Four short words for sites that accept up to 32 characters.",
		},
	}),
	"web16": schema.MustConfig(schema.Config{
		NumWords:         3,
		WordLength:       schema.Range{Min: 4, Max: 4},
		Digits:           schema.Digits{Before: 0, After: 2},
		Separator:        "!",
		Padding:          schema.Padding{Char: "!"},
		SubstitutionMode: schema.SubstitutionNone,
		CaseTransform:    schema.CaseLower,
		Dictionary:       "short",
		Meta: schema.Meta{
			Name:        "web16",
			Description: "Three fixed-length words for sites that accept at most 16 characters.",
		},
	}),
	"apple_id": schema.MustConfig(schema.Config{
		NumWords:         3,
		WordLength:       schema.Range{Min: 5, Max: 7},
		Digits:           schema.Digits{Before: 2, After: 2},
		Separator:        "-",
		Padding:          schema.Padding{Char: "-", Before: 1, After: 1},
		SubstitutionMode: schema.SubstitutionNone,
		CaseTransform:    schema.CaseRandom,
		Dictionary:       "en",
		Meta: schema.Meta{
			Name:        "apple_id",
			Description: "Mixed-case words with digits, shaped for Apple ID password rules.",
		},
	}),
	"security": schema.MustConfig(schema.Config{
		NumWords:         6,
		WordLength:       schema.Range{Min: 4, Max: 8},
		Digits:           schema.Digits{Before: 0, After: 0},
		Separator:        " ",
		Padding:          schema.Padding{Char: ".", After: 1},
		SubstitutionMode: schema.SubstitutionNone,
		CaseTransform:    schema.CaseNone,
		Dictionary:       "en",
		Meta: schema.Meta{
			Name:        "security",
			Description: "Space-separated words ending in a period, for security question answers.",
		},
	}),
}

// builtin looks up a built-in preset by interned name.
func builtin(key string) (schema.Config, bool) {
	cfg, ok := builtins[key]
	if !ok {
		return schema.Config{}, false
	}
	return cfg.Clone(), true
}

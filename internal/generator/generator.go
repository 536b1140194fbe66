package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/muurk/phrasegen/internal/dictionary"
	"github.com/muurk/phrasegen/internal/logging"
	"github.com/muurk/phrasegen/internal/schema"
)

var titleCaser = cases.Title(language.Und)

// Generator produces passphrases from Config values.
type Generator struct {
	// randInt returns a uniform value in [0, n). Replaceable in tests.
	randInt func(n int) int
}

// New creates a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{randInt: cryptoRandInt}
}

func cryptoRandInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails if the platform entropy source is
		// broken; there is no meaningful recovery for a password tool.
		panic(fmt.Sprintf("generator: entropy source unavailable: %v", err))
	}
	return int(v.Int64())
}

// Generate assembles a single passphrase from cfg. The Config is validated
// first and rejected if invalid.
func (g *Generator) Generate(cfg schema.Config) (string, error) {
	if err := schema.Validate(cfg); err != nil {
		return "", fmt.Errorf("invalid config: %w", err)
	}

	pool, err := dictionary.WordsInRange(cfg.Dictionary, cfg.WordLength.Min, cfg.WordLength.Max)
	if err != nil {
		return "", err
	}
	if len(pool) == 0 {
		return "", fmt.Errorf("dictionary %q has no words between %d and %d characters",
			cfg.Dictionary, cfg.WordLength.Min, cfg.WordLength.Max)
	}

	parts := make([]string, 0, cfg.NumWords+2)
	if cfg.Digits.Before > 0 {
		parts = append(parts, g.digitGroup(cfg.Digits.Before))
	}
	for i := 0; i < cfg.NumWords; i++ {
		word := pool[g.randInt(len(pool))]
		word = g.transformCase(word, i, cfg.CaseTransform)
		word = g.substitute(word, cfg.Substitutions, cfg.SubstitutionMode)
		parts = append(parts, word)
	}
	if cfg.Digits.After > 0 {
		parts = append(parts, g.digitGroup(cfg.Digits.After))
	}

	phrase := strings.Join(parts, cfg.Separator)
	phrase = applyPadding(phrase, cfg.Padding)

	logging.Debug("Passphrase generated",
		zap.String("preset", cfg.Meta.Name),
		zap.Int("words", cfg.NumWords),
		zap.Int("length", len(phrase)),
	)

	return phrase, nil
}

// digitGroup returns n random decimal digits as a string.
func (g *Generator) digitGroup(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + g.randInt(10)))
	}
	return b.String()
}

// transformCase applies the configured capitalization policy to a single
// word. The word index drives the alternating transform.
func (g *Generator) transformCase(word string, index int, transform schema.CaseTransform) string {
	switch transform {
	case schema.CaseLower:
		return strings.ToLower(word)
	case schema.CaseUpper:
		return strings.ToUpper(word)
	case schema.CaseCapitalize:
		return titleCaser.String(word)
	case schema.CaseInvert:
		return invertCase(word)
	case schema.CaseAlternate:
		if index%2 == 0 {
			return strings.ToLower(word)
		}
		return strings.ToUpper(word)
	case schema.CaseRandom:
		switch g.randInt(3) {
		case 0:
			return strings.ToLower(word)
		case 1:
			return strings.ToUpper(word)
		default:
			return titleCaser.String(word)
		}
	default:
		return word
	}
}

// invertCase lowercases the first letter and uppercases the rest, the
// mirror image of capitalize.
func invertCase(word string) string {
	runes := []rune(strings.ToUpper(word))
	if len(runes) == 0 {
		return word
	}
	first := strings.ToLower(string(runes[0]))
	return first + string(runes[1:])
}

// substitute applies the configured character substitutions to a word.
// In always mode every occurrence is replaced; in random mode each
// candidate character is replaced with probability 1/2.
func (g *Generator) substitute(word string, subs map[string]string, mode schema.SubstitutionMode) string {
	if mode == schema.SubstitutionNone || len(subs) == 0 {
		return word
	}

	var b strings.Builder
	for _, r := range word {
		replacement, ok := subs[string(r)]
		if !ok {
			b.WriteRune(r)
			continue
		}
		if mode == schema.SubstitutionAlways || g.randInt(2) == 1 {
			b.WriteString(replacement)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// applyPadding decorates the assembled phrase with the padding symbol.
// A nonzero ToLength pads (or truncates) to an exact final length;
// otherwise fixed counts are applied to each side.
func applyPadding(phrase string, p schema.Padding) string {
	if p.ToLength > 0 {
		runes := []rune(phrase)
		if len(runes) >= p.ToLength {
			return string(runes[:p.ToLength])
		}
		return phrase + strings.Repeat(p.Char, p.ToLength-len(runes))
	}

	return strings.Repeat(p.Char, p.Before) + phrase + strings.Repeat(p.Char, p.After)
}

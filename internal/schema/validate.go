package schema

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Absolute bounds for Config fields. These are part of the validation
// contract and shared with the CLI help text.
const (
	MinWords = 1
	MaxWords = 10

	MinWordLength = 4
	MaxWordLength = 10

	MaxDigitGroup = 5

	MaxPaddingCount = 5

	MinPadToLength = 8
	MaxPadToLength = 999
)

// allowedSymbols is the alphabet of characters usable as separators and
// padding. The space character is included so sentence-style separators
// validate.
const allowedSymbols = "!@$%^&*-_+=:|~?/.; "

var identPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// AllowedSymbols returns the alphabet of characters permitted as separator
// and padding characters.
func AllowedSymbols() string {
	return allowedSymbols
}

// IsAllowedSymbol reports whether r may be used as a separator or padding
// character.
func IsAllowedSymbol(r rune) bool {
	return strings.ContainsRune(allowedSymbols, r)
}

// Validate checks a Config field by field in a fixed order and returns the
// first violation found, or nil if the Config is valid. Fields are checked
// independently of each other.
func Validate(c Config) error {
	if err := validateNumWords(c.NumWords); err != nil {
		return err
	}
	if err := validateWordLength(c.WordLength); err != nil {
		return err
	}
	if err := validateDigits(c.Digits); err != nil {
		return err
	}
	if err := validateSeparator(c.Separator); err != nil {
		return err
	}
	if err := validatePadding(c.Padding); err != nil {
		return err
	}
	if err := validateSubstitutions(c.Substitutions); err != nil {
		return err
	}
	if err := validateSubstitutionMode(c.SubstitutionMode); err != nil {
		return err
	}
	if err := validateCaseTransform(c.CaseTransform); err != nil {
		return err
	}
	return validateDictionary(c.Dictionary)
}

func validateNumWords(n int) error {
	if n < MinWords || n > MaxWords {
		return newRangeError("num_words", "num_words must be between %d and %d", MinWords, MaxWords)
	}
	return nil
}

func validateWordLength(r Range) error {
	if r.Min > r.Max {
		return newRangeError("word_length", "word_length min must be <= max")
	}
	if r.Min < MinWordLength || r.Max > MaxWordLength {
		return newRangeError("word_length", "word_length must be between %d and %d", MinWordLength, MaxWordLength)
	}
	return nil
}

func validateDigits(d Digits) error {
	if d.Before < 0 || d.Before > MaxDigitGroup {
		return newRangeError("digits", "digits before must be between 0 and %d", MaxDigitGroup)
	}
	if d.After < 0 || d.After > MaxDigitGroup {
		return newRangeError("digits", "digits after must be between 0 and %d", MaxDigitGroup)
	}
	return nil
}

func validateSeparator(s string) error {
	if s == "" {
		return nil
	}
	if utf8.RuneCountInString(s) > 1 {
		return newShapeError("separator", "separator must be empty or a single character")
	}
	for _, r := range s {
		if !IsAllowedSymbol(r) {
			return newRangeError("separator", "separator contains invalid symbols")
		}
	}
	return nil
}

func validatePadding(p Padding) error {
	if p.Char == "" {
		return newShapeError("padding", "padding must have a char key")
	}
	if utf8.RuneCountInString(p.Char) > 1 {
		return newShapeError("padding", "padding char must be a single character")
	}
	for _, r := range p.Char {
		if !IsAllowedSymbol(r) {
			return newRangeError("padding", "padding char contains invalid symbols")
		}
	}
	if p.Before < 0 || p.Before > MaxPaddingCount {
		return newRangeError("padding", "padding before must be between 0 and %d", MaxPaddingCount)
	}
	if p.After < 0 || p.After > MaxPaddingCount {
		return newRangeError("padding", "padding after must be between 0 and %d", MaxPaddingCount)
	}
	// ToLength of exactly 0 disables length padding and is always valid.
	if p.ToLength != 0 && (p.ToLength < MinPadToLength || p.ToLength > MaxPadToLength) {
		return newRangeError("padding", "padding to_length must be 0 or between %d and %d", MinPadToLength, MaxPadToLength)
	}
	return nil
}

func validateSubstitutions(subs map[string]string) error {
	for k, v := range subs {
		if utf8.RuneCountInString(k) != 1 {
			return newShapeError("substitutions", "substitutions keys must be a single character")
		}
		if utf8.RuneCountInString(v) != 1 {
			return newShapeError("substitutions", "substitutions values must be a single character")
		}
	}
	return nil
}

func validateSubstitutionMode(m SubstitutionMode) error {
	if !m.IsValid() {
		return newRangeError("substitution_mode", "substitution_mode must be one of none, always, random")
	}
	return nil
}

func validateCaseTransform(c CaseTransform) error {
	if !c.IsValid() {
		return newRangeError("case_transform", "case_transform must be one of none, alternate, capitalize, invert, lower, upper, random")
	}
	return nil
}

func validateDictionary(name string) error {
	if !identPattern.MatchString(name) {
		return newShapeError("dictionary", "dictionary must be an identifier")
	}
	return nil
}

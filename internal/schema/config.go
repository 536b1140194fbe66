package schema

// SubstitutionMode controls whether character substitutions are applied
// during generation.
type SubstitutionMode string

const (
	SubstitutionNone   SubstitutionMode = "none"
	SubstitutionAlways SubstitutionMode = "always"
	SubstitutionRandom SubstitutionMode = "random"
)

// IsValid reports whether the mode is one of the known values.
func (m SubstitutionMode) IsValid() bool {
	switch m {
	case SubstitutionNone, SubstitutionAlways, SubstitutionRandom:
		return true
	}
	return false
}

// CaseTransform is the capitalization policy applied to each word.
type CaseTransform string

const (
	CaseNone       CaseTransform = "none"
	CaseAlternate  CaseTransform = "alternate"
	CaseCapitalize CaseTransform = "capitalize"
	CaseInvert     CaseTransform = "invert"
	CaseLower      CaseTransform = "lower"
	CaseUpper      CaseTransform = "upper"
	CaseRandom     CaseTransform = "random"
)

// IsValid reports whether the transform is one of the known values.
func (c CaseTransform) IsValid() bool {
	switch c {
	case CaseNone, CaseAlternate, CaseCapitalize, CaseInvert, CaseLower, CaseUpper, CaseRandom:
		return true
	}
	return false
}

// Range is an inclusive integer range.
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Digits describes the digit groups placed before and after the word block.
type Digits struct {
	Before int `yaml:"before" json:"before"`
	After  int `yaml:"after" json:"after"`
}

// Padding describes the symbol padding applied to the assembled passphrase.
// ToLength of 0 means no length padding; a nonzero value pads (or truncates)
// the final string to exactly that length.
type Padding struct {
	Char     string `yaml:"char" json:"char"`
	Before   int    `yaml:"before" json:"before"`
	After    int    `yaml:"after" json:"after"`
	ToLength int    `yaml:"to_length" json:"to_length"`
}

// Meta carries descriptive metadata for a Config. It is not validated for
// generation correctness.
type Meta struct {
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Config describes how a passphrase is assembled. Values are treated as
// immutable: composition and registry operations work on copies, never in
// place.
type Config struct {
	NumWords         int               `yaml:"num_words" json:"num_words"`
	WordLength       Range             `yaml:"word_length" json:"word_length"`
	Digits           Digits            `yaml:"digits" json:"digits"`
	Separator        string            `yaml:"separator" json:"separator"`
	Padding          Padding           `yaml:"padding" json:"padding"`
	Substitutions    map[string]string `yaml:"substitutions,omitempty" json:"substitutions,omitempty"`
	SubstitutionMode SubstitutionMode  `yaml:"substitution_mode" json:"substitution_mode"`
	CaseTransform    CaseTransform     `yaml:"case_transform" json:"case_transform"`
	Dictionary       string            `yaml:"dictionary" json:"dictionary"`
	Meta             Meta              `yaml:"meta,omitempty" json:"meta,omitempty"`
}

// Clone returns a deep copy of the Config. The substitution map is the only
// reference field.
func (c Config) Clone() Config {
	out := c
	if c.Substitutions != nil {
		out.Substitutions = make(map[string]string, len(c.Substitutions))
		for k, v := range c.Substitutions {
			out.Substitutions[k] = v
		}
	}
	return out
}

// NewConfig is the validated construction entry point. It returns a copy of
// the given Config after it passes Validate.
func NewConfig(c Config) (Config, error) {
	if err := Validate(c); err != nil {
		return Config{}, err
	}
	return c.Clone(), nil
}

// MustConfig is the trust-and-store constructor for pre-validated values
// such as compile-time preset literals. It panics if the Config is invalid.
func MustConfig(c Config) Config {
	cfg, err := NewConfig(c)
	if err != nil {
		panic("schema: invalid config literal: " + err.Error())
	}
	return cfg
}

package presets

import "github.com/muurk/phrasegen/internal/schema"

// Overrides selects the Config fields to replace when composing a preset
// from a base. A nil field (or nil Substitutions map) means "keep the base
// value".
type Overrides struct {
	NumWords         *int
	WordLength       *schema.Range
	Digits           *schema.Digits
	Separator        *string
	Padding          *schema.Padding
	Substitutions    map[string]string
	SubstitutionMode *schema.SubstitutionMode
	CaseTransform    *schema.CaseTransform
	Dictionary       *string
	Meta             *schema.Meta
}

// Apply returns a new Config equal to base in every field not present in
// the overrides, and equal to the override in every field that is. The base
// is never modified.
func (o Overrides) Apply(base schema.Config) schema.Config {
	cfg := base.Clone()

	if o.NumWords != nil {
		cfg.NumWords = *o.NumWords
	}
	if o.WordLength != nil {
		cfg.WordLength = *o.WordLength
	}
	if o.Digits != nil {
		cfg.Digits = *o.Digits
	}
	if o.Separator != nil {
		cfg.Separator = *o.Separator
	}
	if o.Padding != nil {
		cfg.Padding = *o.Padding
	}
	if o.Substitutions != nil {
		subs := make(map[string]string, len(o.Substitutions))
		for k, v := range o.Substitutions {
			subs[k] = v
		}
		cfg.Substitutions = subs
	}
	if o.SubstitutionMode != nil {
		cfg.SubstitutionMode = *o.SubstitutionMode
	}
	if o.CaseTransform != nil {
		cfg.CaseTransform = *o.CaseTransform
	}
	if o.Dictionary != nil {
		cfg.Dictionary = *o.Dictionary
	}
	if o.Meta != nil {
		cfg.Meta = *o.Meta
	}

	return cfg
}

package schema

// DecodeMap builds a Config from untyped input such as a parsed YAML or JSON
// document. Keys present in the map replace the corresponding field of base;
// absent keys keep the base value. Structural problems (wrong type, missing
// sub-key) are reported as shape errors with messages that distinguish an
// absent key from a malformed present one. DecodeMap performs no range
// checking; pass the result through Validate before trusting it.
func DecodeMap(base Config, m map[string]any) (Config, error) {
	cfg := base.Clone()

	for key, raw := range m {
		var err error
		switch key {
		case "num_words":
			cfg.NumWords, err = decodeInt("num_words", raw)
		case "word_length":
			cfg.WordLength, err = decodeRange(raw)
		case "digits":
			cfg.Digits, err = decodeDigits(raw)
		case "separator":
			cfg.Separator, err = decodeString("separator", raw)
		case "padding":
			cfg.Padding, err = decodePadding(raw)
		case "substitutions":
			cfg.Substitutions, err = decodeSubstitutions(raw)
		case "substitution_mode":
			var s string
			s, err = decodeString("substitution_mode", raw)
			cfg.SubstitutionMode = SubstitutionMode(s)
		case "case_transform":
			var s string
			s, err = decodeString("case_transform", raw)
			cfg.CaseTransform = CaseTransform(s)
		case "dictionary":
			cfg.Dictionary, err = decodeString("dictionary", raw)
		case "meta":
			cfg.Meta, err = decodeMeta(raw)
		default:
			err = newShapeError(key, "unknown field %q", key)
		}
		if err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// asInt accepts the integer representations produced by the YAML and JSON
// decoders.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func decodeInt(field string, v any) (int, error) {
	n, ok := asInt(v)
	if !ok {
		return 0, newShapeError(field, "%s must be an integer", field)
	}
	return n, nil
}

func decodeString(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", newShapeError(field, "%s must be a string", field)
	}
	return s, nil
}

func decodeRange(v any) (Range, error) {
	m, ok := asMap(v)
	if !ok {
		return Range{}, newShapeError("word_length", "word_length must be a range")
	}
	rawMin, okMin := m["min"]
	rawMax, okMax := m["max"]
	if !okMin || !okMax {
		return Range{}, newShapeError("word_length", "word_length must have min and max keys")
	}
	min, ok := asInt(rawMin)
	if !ok {
		return Range{}, newShapeError("word_length", "word_length min must be an integer")
	}
	max, ok := asInt(rawMax)
	if !ok {
		return Range{}, newShapeError("word_length", "word_length max must be an integer")
	}
	return Range{Min: min, Max: max}, nil
}

func decodeDigits(v any) (Digits, error) {
	m, ok := asMap(v)
	if !ok {
		return Digits{}, newShapeError("digits", "digits must be a pair of integers")
	}
	rawBefore, okBefore := m["before"]
	rawAfter, okAfter := m["after"]
	if !okBefore || !okAfter {
		return Digits{}, newShapeError("digits", "digits must have before and after keys")
	}
	before, ok := asInt(rawBefore)
	if !ok {
		return Digits{}, newShapeError("digits", "digits before must be an integer")
	}
	after, ok := asInt(rawAfter)
	if !ok {
		return Digits{}, newShapeError("digits", "digits after must be an integer")
	}
	return Digits{Before: before, After: after}, nil
}

func decodePadding(v any) (Padding, error) {
	m, ok := asMap(v)
	if !ok {
		return Padding{}, newShapeError("padding", "padding must be a map")
	}

	rawChar, okChar := m["char"]
	if !okChar {
		return Padding{}, newShapeError("padding", "padding must have a char key")
	}
	char, ok := rawChar.(string)
	if !ok {
		return Padding{}, newShapeError("padding", "padding char must be a string")
	}

	var p Padding
	p.Char = char

	for _, f := range []struct {
		key string
		dst *int
	}{
		{"before", &p.Before},
		{"after", &p.After},
		{"to_length", &p.ToLength},
	} {
		raw, present := m[f.key]
		if !present {
			return Padding{}, newShapeError("padding", "padding must have a %s key", f.key)
		}
		n, ok := asInt(raw)
		if !ok {
			return Padding{}, newShapeError("padding", "padding %s must be an integer", f.key)
		}
		*f.dst = n
	}

	return p, nil
}

func decodeSubstitutions(v any) (map[string]string, error) {
	m, ok := asMap(v)
	if !ok {
		return nil, newShapeError("substitutions", "substitutions must be a map")
	}
	subs := make(map[string]string, len(m))
	for k, raw := range m {
		s, ok := raw.(string)
		if !ok {
			return nil, newShapeError("substitutions", "substitutions values must be strings")
		}
		subs[k] = s
	}
	return subs, nil
}

func decodeMeta(v any) (Meta, error) {
	m, ok := asMap(v)
	if !ok {
		return Meta{}, newShapeError("meta", "meta must be a map")
	}
	var meta Meta
	if raw, present := m["name"]; present {
		s, ok := raw.(string)
		if !ok {
			return Meta{}, newShapeError("meta", "meta name must be a string")
		}
		meta.Name = s
	}
	if raw, present := m["description"]; present {
		s, ok := raw.(string)
		if !ok {
			return Meta{}, newShapeError("meta", "meta description must be a string")
		}
		meta.Description = s
	}
	return meta, nil
}

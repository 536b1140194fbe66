package cfgfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/muurk/phrasegen/internal/presets"
	"github.com/muurk/phrasegen/internal/schema"
)

// presetKey names the base preset inside an override file. It is not a
// Config field and is stripped before decoding.
const presetKey = "preset"

// Load reads a YAML override file and returns the composed Config. The
// result is not validated.
func Load(path string) (schema.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML override content against its base preset.
func Parse(data []byte) (schema.Config, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return schema.Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	baseName := "default"
	if raw, ok := doc[presetKey]; ok {
		name, ok := raw.(string)
		if !ok {
			return schema.Config{}, fmt.Errorf("preset must be a string")
		}
		baseName = name
		delete(doc, presetKey)
	}

	base, ok := presets.Load().Get(baseName)
	if !ok {
		return schema.Config{}, fmt.Errorf("unknown base preset %q", baseName)
	}

	cfg, err := schema.DecodeMap(base, doc)
	if err != nil {
		return schema.Config{}, err
	}

	// The file is a one-shot override, so its identity metadata should not
	// masquerade as the base preset's.
	if _, ok := doc["meta"]; !ok {
		cfg.Meta = schema.Meta{}
	}

	return cfg, nil
}

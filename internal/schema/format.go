package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Summary returns a one-line summary of the configuration.
func (c Config) Summary() string {
	name := c.Meta.Name
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("%s: %d words (%d-%d chars), dictionary %q", name, c.NumWords, c.WordLength.Min, c.WordLength.Max, c.Dictionary)
}

// FormatCompact returns a compact multi-line format suitable for terminal
// display.
func (c Config) FormatCompact() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Words:     %d x %d-%d chars (%s)\n", c.NumWords, c.WordLength.Min, c.WordLength.Max, c.Dictionary))
	b.WriteString(fmt.Sprintf("Digits:    %d before, %d after\n", c.Digits.Before, c.Digits.After))
	b.WriteString(fmt.Sprintf("Separator: %s\n", formatChar(c.Separator)))
	b.WriteString(fmt.Sprintf("Padding:   %s\n", c.formatPadding()))
	b.WriteString(fmt.Sprintf("Case:      %s\n", c.CaseTransform))

	return b.String()
}

// FormatDetailed returns a comprehensive formatted string with all
// configuration details.
func (c Config) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("=== Preset ===\n")
	if c.Meta.Name != "" {
		b.WriteString(fmt.Sprintf("Name:        %s\n", c.Meta.Name))
	}
	if c.Meta.Description != "" {
		b.WriteString(fmt.Sprintf("Description: %s\n", c.Meta.Description))
	}
	b.WriteString("\n")

	b.WriteString("=== Words ===\n")
	b.WriteString(fmt.Sprintf("Count:       %d\n", c.NumWords))
	b.WriteString(fmt.Sprintf("Length:      %d-%d characters\n", c.WordLength.Min, c.WordLength.Max))
	b.WriteString(fmt.Sprintf("Dictionary:  %s\n", c.Dictionary))
	b.WriteString(fmt.Sprintf("Case:        %s\n", c.CaseTransform))
	b.WriteString("\n")

	b.WriteString("=== Decoration ===\n")
	b.WriteString(fmt.Sprintf("Separator:   %s\n", formatChar(c.Separator)))
	b.WriteString(fmt.Sprintf("Digits:      %d before, %d after\n", c.Digits.Before, c.Digits.After))
	b.WriteString(fmt.Sprintf("Padding:     %s\n", c.formatPadding()))
	b.WriteString("\n")

	b.WriteString("=== Substitutions ===\n")
	b.WriteString(fmt.Sprintf("Mode:        %s\n", c.SubstitutionMode))
	if len(c.Substitutions) > 0 {
		keys := make([]string, 0, len(c.Substitutions))
		for k := range c.Substitutions {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = fmt.Sprintf("%s->%s", k, c.Substitutions[k])
		}
		b.WriteString(fmt.Sprintf("Map:         %s\n", strings.Join(pairs, ", ")))
	} else {
		b.WriteString("Map:         (none)\n")
	}

	return b.String()
}

func (c Config) formatPadding() string {
	if c.Padding.ToLength > 0 {
		return fmt.Sprintf("%s to length %d", formatChar(c.Padding.Char), c.Padding.ToLength)
	}
	if c.Padding.Before == 0 && c.Padding.After == 0 {
		return "(none)"
	}
	return fmt.Sprintf("%s x%d before, x%d after", formatChar(c.Padding.Char), c.Padding.Before, c.Padding.After)
}

func formatChar(s string) string {
	switch s {
	case "":
		return "(none)"
	case " ":
		return "(space)"
	default:
		return fmt.Sprintf("%q", s)
	}
}

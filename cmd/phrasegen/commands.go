package main

import (
	"encoding/json"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/muurk/phrasegen/internal/cfgfile"
	"github.com/muurk/phrasegen/internal/generator"
	"github.com/muurk/phrasegen/internal/logging"
	"github.com/muurk/phrasegen/internal/presets"
	"github.com/muurk/phrasegen/internal/schema"
	"github.com/muurk/phrasegen/internal/ui"
)

// Command flags
var (
	outputFormat string
	presetName   string
	configPath   string
	count        int
	numWords     int
	separator    string
	caseMode     string
	dictName     string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")

	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(pickCmd)
}

// presetsCmd lists the preset catalog
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available presets",
	Long: `List every preset in the catalog.

Built-in presets are shown with their descriptions. Presets registered at
runtime appear by name only.`,
	RunE: runPresets,
}

func runPresets(cmd *cobra.Command, args []string) error {
	registry := presets.Load()

	fmt.Printf("Built-in presets:\n\n")
	for _, cfg := range registry.All() {
		fmt.Printf("  %-10s %s\n", cfg.Meta.Name, cfg.Meta.Description)
	}

	builtin := make(map[string]struct{}, len(presets.BuiltinNames))
	for _, name := range presets.BuiltinNames {
		builtin[name] = struct{}{}
	}
	var custom []string
	for _, name := range registry.List() {
		if _, ok := builtin[name]; !ok {
			custom = append(custom, name)
		}
	}
	if len(custom) > 0 {
		fmt.Printf("\nCustom presets:\n\n")
		for _, name := range custom {
			fmt.Printf("  %s\n", name)
		}
	}

	fmt.Println("\nUse 'phrasegen show <preset>' to view a preset's configuration")
	fmt.Println("Use 'phrasegen generate --preset <preset>' to generate a passphrase")

	return nil
}

// showCmd displays a preset configuration
var showCmd = &cobra.Command{
	Use:   "show <preset>",
	Short: "Show a preset configuration",
	Long: `Display the full configuration of a named preset.

Shows the word scheme, digit groups, separator, padding, and substitution
settings that the preset would apply during generation.`,
	Example: `  # Detailed view
  phrasegen show wifi

  # Compact output format
  phrasegen show wifi --format compact

  # JSON output for scripting
  phrasegen show wifi --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	registry := presets.Load()

	cfg, ok := registry.Get(args[0])
	logging.LogPresetLookup(args[0], ok)
	if !ok {
		return fmt.Errorf("preset %q not found (see 'phrasegen presets')", args[0])
	}

	switch outputFormat {
	case "compact":
		fmt.Print(cfg.FormatCompact())
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "detailed":
		fallthrough
	default:
		fmt.Print(cfg.FormatDetailed())
	}

	return nil
}

// checkCmd validates a configuration override file
var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a configuration file",
	Long: `Load a YAML configuration override file and validate the result.

The file may name a base preset with a top-level "preset" key; other keys
override the corresponding fields of the base. The composed configuration
is checked against the schema and the first violation is reported.`,
	Example: `  # Validate an override file
  phrasegen check my-config.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := cfgfile.Load(args[0])
	if err != nil {
		logging.LogValidationFailure(args[0], err)
		fmt.Printf("✗ %s: %v\n", args[0], err)
		return fmt.Errorf("configuration file is invalid")
	}

	if err := schema.Validate(cfg); err != nil {
		logging.LogValidationFailure(args[0], err)
		fmt.Printf("✗ %s: %v\n", args[0], err)
		return fmt.Errorf("configuration file is invalid")
	}

	fmt.Printf("✓ %s is valid\n", args[0])
	fmt.Print(cfg.FormatCompact())
	return nil
}

// generateCmd generates passphrases
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate passphrases",
	Long: `Generate one or more passphrases.

The scheme comes from a named preset, a configuration file, or the built-in
default, optionally adjusted with override flags. The composed configuration
is validated before any passphrase is produced.`,
	Example: `  # Generate with the default preset
  phrasegen generate

  # Three WiFi keys
  phrasegen generate --preset wifi --count 3

  # Override parts of a preset
  phrasegen generate --preset xkcd --words 4 --separator "."

  # Generate from a configuration file
  phrasegen generate --config my-config.yaml`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&presetName, "preset", "default", "Preset to generate from")
	generateCmd.Flags().StringVar(&configPath, "config", "", "Configuration override file (YAML)")
	generateCmd.Flags().IntVar(&count, "count", 1, "Number of passphrases to generate")
	generateCmd.Flags().IntVar(&numWords, "words", 0, "Override the number of words")
	generateCmd.Flags().StringVar(&separator, "separator", "", "Override the separator character")
	generateCmd.Flags().StringVar(&caseMode, "case", "", "Override the case transform")
	generateCmd.Flags().StringVar(&dictName, "dictionary", "", "Override the dictionary")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	overrides, err := overridesFromFlags(cmd)
	if err != nil {
		return err
	}
	cfg = overrides.Apply(cfg)

	if err := schema.Validate(cfg); err != nil {
		logging.LogValidationFailure("flags", err)
		return fmt.Errorf("invalid configuration: %w", err)
	}

	gen := generator.New()
	for i := 0; i < count; i++ {
		phrase, err := gen.Generate(cfg)
		if err != nil {
			return err
		}
		fmt.Println(phrase)
	}

	return nil
}

// resolveConfig picks the base configuration from --config or --preset.
func resolveConfig(cmd *cobra.Command) (schema.Config, error) {
	if configPath != "" {
		if cmd.Flags().Changed("preset") {
			return schema.Config{}, fmt.Errorf("--preset and --config are mutually exclusive")
		}
		return cfgfile.Load(configPath)
	}

	registry := presets.Load()
	cfg, ok := registry.Get(presetName)
	logging.LogPresetLookup(presetName, ok)
	if !ok {
		return schema.Config{}, fmt.Errorf("preset %q not found (see 'phrasegen presets')", presetName)
	}
	return cfg, nil
}

// overridesFromFlags converts override flags into a composition overlay.
// Separator characters are rejected against the schema symbol alphabet
// before any Config is built.
func overridesFromFlags(cmd *cobra.Command) (presets.Overrides, error) {
	var o presets.Overrides

	if cmd.Flags().Changed("words") {
		n := numWords
		o.NumWords = &n
	}
	if cmd.Flags().Changed("separator") {
		for _, r := range separator {
			if !schema.IsAllowedSymbol(r) {
				return presets.Overrides{}, fmt.Errorf("separator %q not allowed (allowed symbols: %s)", separator, schema.AllowedSymbols())
			}
		}
		s := separator
		o.Separator = &s
	}
	if cmd.Flags().Changed("case") {
		c := schema.CaseTransform(caseMode)
		o.CaseTransform = &c
	}
	if cmd.Flags().Changed("dictionary") {
		d := dictName
		o.Dictionary = &d
	}

	return o, nil
}

// symbolsCmd prints the allowed symbol alphabet
var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "Print the allowed separator and padding symbols",
	Run: func(cmd *cobra.Command, args []string) {
		for _, r := range schema.AllowedSymbols() {
			name := string(r)
			if r == ' ' {
				name = "(space)"
			}
			fmt.Println(name)
		}
	},
}

// pickCmd launches the interactive preset picker
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Launch the interactive preset picker",
	Long: `Launch an interactive picker over the preset catalog.

The picker lists every preset with its description, supports incremental
filtering, and generates a passphrase preview for the selected preset.`,
	Example: `  # Launch the picker
  phrasegen pick
  # Or simply (picker is default):
  phrasegen`,
	RunE: runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	model := ui.NewPickerModel(presets.Load())

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	return nil
}

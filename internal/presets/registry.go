package presets

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/muurk/phrasegen/internal/logging"
	"github.com/muurk/phrasegen/internal/schema"
)

// maxNameLen bounds preset names so arbitrarily long caller input cannot be
// interned as a lookup key.
const maxNameLen = 255

var (
	// Global registry instance (created lazily)
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
)

// Registry holds the runtime preset catalog. Built-in presets are static
// package data and shared by every Registry; only custom registrations are
// per-instance state.
type Registry struct {
	mu     sync.RWMutex
	custom map[string]schema.Config
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		custom: make(map[string]schema.Config),
	}
}

// Load returns the process-wide registry, creating it on first use.
// Thread-safe - multiple calls will return the same instance.
func Load() *Registry {
	globalRegistryOnce.Do(func() {
		globalRegistry = NewRegistry()
	})
	return globalRegistry
}

// internName converts caller input into a lookup key. It accepts the plain
// identifier form ("default") and the textual atom form (":default").
// Names that are empty, too long, or contain characters outside
// [A-Za-z0-9_] cannot become keys; lookup treats them as a miss.
func internName(name string) (string, bool) {
	name = strings.TrimPrefix(strings.TrimSpace(name), ":")
	if name == "" || len(name) > maxNameLen {
		return "", false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return "", false
		}
	}
	return strings.ToLower(name), true
}

// Get looks up a preset by name. Built-ins always win over a runtime
// registration of the same name. A name that cannot be interned, or that
// matches no preset, is a soft miss.
func (r *Registry) Get(name string) (schema.Config, bool) {
	key, ok := internName(name)
	if !ok {
		return schema.Config{}, false
	}

	if cfg, ok := builtin(key); ok {
		return cfg, true
	}

	r.mu.RLock()
	cfg, ok := r.custom[key]
	r.mu.RUnlock()
	if !ok {
		return schema.Config{}, false
	}
	return cfg.Clone(), true
}

// Register stores cfg under name in the runtime catalog, overwriting any
// prior runtime entry. Registering under a built-in name succeeds, but Get
// keeps returning the built-in.
//
// The stored Config is not validated; run schema.Validate before using it
// for generation.
func (r *Registry) Register(name string, cfg schema.Config) error {
	return r.store(name, cfg, false)
}

func (r *Registry) store(name string, cfg schema.Config, derived bool) error {
	key, ok := internName(name)
	if !ok {
		return fmt.Errorf("invalid preset name %q", name)
	}

	r.mu.Lock()
	r.custom[key] = cfg.Clone()
	r.mu.Unlock()

	logging.LogPresetRegistration(key, derived)
	return nil
}

// RegisterFrom composes a new preset from a named base plus overrides and
// stores it as Register does. The base resolves with Get semantics
// (built-in or runtime); an unresolvable base is the only failure besides
// an unusable name.
func (r *Registry) RegisterFrom(name, base string, overrides Overrides) error {
	baseCfg, ok := r.Get(base)
	if !ok {
		return fmt.Errorf("unknown base preset %q", base)
	}
	return r.store(name, overrides.Apply(baseCfg), true)
}

// List returns the sorted union of built-in and runtime preset names, each
// name appearing exactly once.
func (r *Registry) List() []string {
	seen := make(map[string]struct{}, len(builtins))
	for name := range builtins {
		seen[name] = struct{}{}
	}

	r.mu.RLock()
	for name := range r.custom {
		seen[name] = struct{}{}
	}
	r.mu.RUnlock()

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the built-in preset configs only, in canonical order, each
// carrying populated metadata.
func (r *Registry) All() []schema.Config {
	configs := make([]schema.Config, 0, len(BuiltinNames))
	for _, name := range BuiltinNames {
		cfg, _ := builtin(name)
		configs = append(configs, cfg)
	}
	return configs
}

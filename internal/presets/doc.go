// Package presets manages the catalog of named passphrase configurations.
//
// The catalog has two tiers. Built-in presets are compile-time data,
// validated once at startup and never mutated. Custom presets are registered
// at runtime and live only for the lifetime of the process. Lookups check
// built-ins first: a built-in name always wins over a runtime registration
// of the same name, so well-known presets cannot be shadowed. Registering
// under a built-in name still succeeds silently; the entry is simply never
// returned by Get.
//
// Registration does not validate the stored Config. Callers are expected to
// run schema.Validate before using a freshly registered preset for
// generation.
//
// # Thread Safety
//
// The global registry is initialized behind sync.Once, so startup is
// idempotent across goroutines. Runtime mutation is guarded by an RWMutex:
// Register is atomic with respect to concurrent Get and List calls, and
// reads never observe a partially written entry. Built-ins need no locking.
package presets

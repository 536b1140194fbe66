// Package cfgfile loads user-supplied configuration override files.
//
// An override file is a YAML document whose keys mirror the schema.Config
// fields. An optional top-level "preset" key names the base preset the file
// overrides; when absent, the built-in default preset is the base. Only the
// keys present in the file replace base values.
//
// Loading does not validate the resulting configuration; callers run
// schema.Validate before trusting it, matching the registry's
// validate-before-use policy.
package cfgfile

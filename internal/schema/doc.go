// Package schema defines the passphrase generation configuration and its
// validation contract.
//
// A Config describes every knob of passphrase assembly: word count, word
// length bounds, digit groups, separator, symbol padding, character
// substitutions, and capitalization. Validate checks a Config field by field
// in a fixed order and reports the first violation with a message naming the
// field and the broken constraint. DecodeMap builds a Config from untyped
// input (such as a parsed YAML document) and reports structural problems
// before any range checking happens.
//
// # Error Taxonomy
//
// Validation failures are either shape errors (wrong structural type,
// missing key, not a single character) or range errors (value outside its
// bounds or not in an enumerated set). Both are reported as a
// *ValidationError; use IsShapeError and IsRangeError to distinguish them.
//
// # Allowed Symbols
//
// Separator and padding characters must come from a fixed symbol alphabet.
// AllowedSymbols exposes the alphabet so flag parsers and other input
// layers can reject characters before constructing a Config.
package schema

// Package generator assembles passphrase strings from validated
// configurations.
//
// Generation draws words from the configured dictionary, applies the case
// transform and character substitutions, attaches digit groups before and
// after the word block, joins everything with the separator, and finally
// applies symbol padding. All randomness comes from crypto/rand.
//
// A Config is validated before any work happens; an invalid Config is
// always rejected, never coerced.
package generator

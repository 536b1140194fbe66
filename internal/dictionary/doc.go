// Package dictionary provides the word sources passphrases are drawn from.
//
// Word lists are compiled into the binary and addressed by the identifier a
// Config carries in its dictionary field. Two lists ship today: "en", a
// general English list with words of 4 to 10 letters, and "short", a subset
// limited to 4-6 letter words for length-constrained presets.
package dictionary

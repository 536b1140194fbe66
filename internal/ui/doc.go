// Package ui implements the interactive terminal interface for phrasegen.
//
// The picker is a bubbletea program that lists the preset catalog, supports
// incremental name filtering, and generates a passphrase preview for the
// selected preset without leaving the terminal.
package ui

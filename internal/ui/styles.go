package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for the picker UI
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - generated output
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60 // Minimum supported terminal width
	MaxContentWidth  = 90 // Maximum content width before capping
)

// Shared styles for the picker UI
var (
	// TitleStyle is for the picker header
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			PaddingLeft(2)

	// SubtitleStyle is for the line under the header
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(2)

	// SelectedItemStyle is for the preset under the cursor
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// ItemStyle is for non-selected presets
	ItemStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// ItemDescStyle is for preset descriptions
	ItemDescStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// CustomTagStyle marks runtime-registered presets
	CustomTagStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// GeneratedStyle is for the generated passphrase
	GeneratedStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// ErrorStyle is for generation errors
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// Cursor markers
const (
	CursorMarker = "›"
	BlankMarker  = " "
)

// GeneratedBoxStyle returns the border style for the passphrase preview box
func GeneratedBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SuccessColor).
		Width(width - 2).
		Padding(0, 1)
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

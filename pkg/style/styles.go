// Package style holds the lipgloss styles used by the shell's interactive
// output. Non-interactive output (piped stdin/stdout) bypasses these.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PromptStyle renders the "(path) $" prompt
	PromptStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// ErrorStyle renders command error lines
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// DirectoryStyle renders directory names in listings
	DirectoryStyle = lipgloss.NewStyle().
			Foreground(DirectoryColor).
			Bold(true)

	// BannerStyle renders the startup banner
	BannerStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/radicle-dev/rad-tui/internal/config"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen   = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed     = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff5555"}
	colorYellow  = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorMagenta = lipgloss.AdaptiveColor{Light: "#8b008b", Dark: "#ff79c6"}
	colorGray    = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan    = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Theme bundles the styles the browsers render with. Border colors come
// from the settings file, picked by terminal background.
type Theme struct {
	Border      lipgloss.Style
	FocusBorder lipgloss.Style

	Selected lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style
	Error    lipgloss.Style

	// Item state colors, matching the conventional rad CLI palette.
	Open     lipgloss.Style
	Closed   lipgloss.Style
	Solved   lipgloss.Style
	Draft    lipgloss.Style
	Merged   lipgloss.Style
	Archived lipgloss.Style
	Seen     lipgloss.Style
	Unseen   lipgloss.Style
}

// NewTheme builds the theme from settings, choosing the light or dark
// variant based on the terminal background.
func NewTheme(settings config.Settings) Theme {
	variant := settings.DarkTheme
	if !termenv.HasDarkBackground() {
		variant = settings.LightTheme
	}
	if variant == nil {
		variant = config.DefaultSettings().DarkTheme
	}

	return Theme{
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color(variant.BorderColor)),
		FocusBorder: lipgloss.NewStyle().Foreground(lipgloss.Color(variant.FocusBorderColor)),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}),
		Subtle: lipgloss.NewStyle().Foreground(colorGray),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
		Error:  lipgloss.NewStyle().Foreground(colorRed),

		Open:     lipgloss.NewStyle().Foreground(colorGreen),
		Closed:   lipgloss.NewStyle().Foreground(colorRed),
		Solved:   lipgloss.NewStyle().Foreground(colorCyan),
		Draft:    lipgloss.NewStyle().Foreground(colorGray),
		Merged:   lipgloss.NewStyle().Foreground(colorMagenta),
		Archived: lipgloss.NewStyle().Foreground(colorYellow),
		Seen:     lipgloss.NewStyle().Foreground(colorGray),
		Unseen:   lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
	}
}

// StateStyle returns the style for an item state label.
func (t Theme) StateStyle(state string) lipgloss.Style {
	switch state {
	case "open", "created":
		return t.Open
	case "closed", "deleted":
		return t.Closed
	case "solved":
		return t.Solved
	case "draft":
		return t.Draft
	case "merged":
		return t.Merged
	case "archived":
		return t.Archived
	case "updated":
		return t.Subtle
	default:
		return t.Subtle
	}
}

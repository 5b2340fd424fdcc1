package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette of the terminal layout. Each color has a light and
// a dark background variant.
type Theme struct {
	Heading lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Path    lipgloss.AdaptiveColor
	Hint    lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Bullet  lipgloss.AdaptiveColor

	// Rule names, paths entering the store and paths leaving it
	Rule    lipgloss.AdaptiveColor
	Added   lipgloss.AdaptiveColor
	Removed lipgloss.AdaptiveColor
}

// DefaultTheme is used by NewTerminalRenderer
var DefaultTheme = Theme{
	Heading: lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"},
	Muted:   lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"},
	Path:    lipgloss.AdaptiveColor{Light: "#495057", Dark: "#CED4DA"},
	Hint:    lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"},

	Success: lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"},
	Warning: lipgloss.AdaptiveColor{Light: "#D39E00", Dark: "#FFD54F"},
	Error:   lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"},
	Bullet:  lipgloss.AdaptiveColor{Light: "#17A2B8", Dark: "#4DD0E1"},

	Rule:    lipgloss.AdaptiveColor{Light: "#8B5CF6", Dark: "#A78BFA"},
	Added:   lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#34D399"},
	Removed: lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"},
}

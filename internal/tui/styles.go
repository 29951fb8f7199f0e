package tui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/agrimitra/agrimitra/internal/advisor"
	"github.com/agrimitra/agrimitra/internal/i18n"
)

// Leaf green for AgriMitra branding
const leafGreen = "#34A853"

// MITRA ASCII art (filled block style)
var mitraArt = []string{
	"    ███╗   ███╗██╗████████╗██████╗  █████╗ ",
	"    ████╗ ████║██║╚══██╔══╝██╔══██╗██╔══██╗",
	"    ██╔████╔██║██║   ██║   ██████╔╝███████║",
	"    ██║╚██╔╝██║██║   ██║   ██╔══██╗██╔══██║",
	"    ██║ ╚═╝ ██║██║   ██║   ██║  ██║██║  ██║",
	"    ╚═╝     ╚═╝╚═╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝",
}

// Sprout ASCII art shown beside the wordmark
var sproutArt = []string{
	"  ▄▀▄▀  ",
	"  ▀█▀   ",
	"   █    ",
	"   █    ",
	"  ▄█▄   ",
	"        ",
}

// Styles contains all lipgloss styles for the TUI.
type Styles struct {
	Banner    lipgloss.Style
	User      lipgloss.Style
	Assistant lipgloss.Style
	System    lipgloss.Style
	Tips      lipgloss.Style
	Error     lipgloss.Style
	Prompt    lipgloss.Style
	Separator lipgloss.Style
	StatusBar lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Banner:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(leafGreen)),
		User:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Assistant: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		System:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("240")),
		Tips:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}

// RenderBanner returns the MITRA ASCII art banner as a styled string.
func (s Styles) RenderBanner() string {
	var b strings.Builder
	for i := range mitraArt {
		_, _ = b.WriteString(s.Banner.Render(sproutArt[i]))
		_, _ = b.WriteString(s.Banner.Render(mitraArt[i]))
		_, _ = b.WriteString("\n")
	}
	return b.String()
}

// RenderWelcomeTips returns styled getting-started tips for a surface,
// including its suggested questions.
func (s Styles) RenderWelcomeTips(surface advisor.Surface, lang string) string {
	prefix := botPrefix(surface)
	tips := []string{
		i18n.T(lang, prefix+".subtitle"),
		"",
		i18n.T(lang, prefix+".suggestedQuestions"),
		"  • " + i18n.T(lang, prefix+".question1"),
		"  • " + i18n.T(lang, prefix+".question2"),
		"  • " + i18n.T(lang, prefix+".question3"),
		"",
		"Use /help to see available commands.",
	}

	var b strings.Builder
	for _, tip := range tips {
		_, _ = b.WriteString(s.Tips.Render(tip))
		_, _ = b.WriteString("\n")
	}
	return b.String()
}

// botPrefix maps a surface to its i18n message namespace.
func botPrefix(surface advisor.Surface) string {
	switch surface {
	case advisor.SurfaceMarket:
		return "marketBot"
	case advisor.SurfaceDisease:
		return "diseaseBot"
	default:
		return "cropBot"
	}
}

// inputPlaceholder returns the localized textarea placeholder for a surface.
func inputPlaceholder(surface advisor.Surface, lang string) string {
	return i18n.T(lang, botPrefix(surface)+".inputPlaceholder")
}

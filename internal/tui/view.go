package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/agrimitra/agrimitra/internal/conversation"
)

// View implements tea.Model.
// Uses AltScreen with viewport for scrollable message history.
func (m *Model) View() tea.View {
	var b strings.Builder

	_, _ = b.WriteString(m.viewport.View())
	_, _ = b.WriteString("\n")

	_, _ = b.WriteString(m.renderSeparator())
	_, _ = b.WriteString("\n")

	// Input prompt stays visible so the next message can be typed while
	// a reply is pending.
	_, _ = b.WriteString(m.styles.Prompt.Render("> "))
	_, _ = b.WriteString(m.input.View())
	_, _ = b.WriteString("\n")

	_, _ = b.WriteString(m.renderSeparator())
	_, _ = b.WriteString("\n")

	_, _ = b.WriteString(m.renderStatusBar())

	v := tea.NewView(b.String())
	v.AltScreen = true
	return v
}

// rebuildViewportContent reconstructs the viewport content from the
// session transcript and current state.
func (m *Model) rebuildViewportContent() {
	var b strings.Builder

	_, _ = b.WriteString(m.styles.RenderBanner())
	_, _ = b.WriteString("\n")

	// Getting-started tips stay until the first exchange.
	if m.orch.Session().Len() <= 1 {
		_, _ = b.WriteString(m.styles.RenderWelcomeTips(m.orch.Surface(), m.lang))
		_, _ = b.WriteString("\n")
	}

	for _, turn := range m.orch.Session().Turns() {
		switch turn.Role {
		case conversation.RoleUser:
			_, _ = b.WriteString(m.styles.User.Render("You> "))
			_, _ = b.WriteString(turn.Content)
		case conversation.RoleAssistant:
			_, _ = b.WriteString(m.styles.Assistant.Render("Mitra> "))
			_, _ = b.WriteString(m.markdown.Render(turn.Content))
		}
		_, _ = b.WriteString("\n\n")
	}

	if m.notice != "" {
		_, _ = b.WriteString(m.styles.System.Render(m.notice))
		_, _ = b.WriteString("\n\n")
	}

	if m.state == StateThinking {
		_, _ = b.WriteString(m.spinner.View())
		_, _ = b.WriteString(" Thinking...\n\n")
	}

	m.viewport.SetContent(b.String())
}

// renderSeparator returns a horizontal line separator.
func (m *Model) renderSeparator() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	return m.styles.Separator.Render(strings.Repeat("─", width))
}

// renderStatusBar returns state-appropriate keyboard shortcut help.
func (m *Model) renderStatusBar() string {
	var bindings []key.Binding
	switch m.state {
	case StateInput:
		bindings = []key.Binding{
			m.keys.Submit, m.keys.NewLine, m.keys.History,
			m.keys.Cancel, m.keys.Quit, m.keys.ScrollUp,
		}
	case StateThinking:
		bindings = []key.Binding{
			m.keys.EscCancel, m.keys.Cancel,
			m.keys.ScrollUp, m.keys.ScrollDown,
		}
	}
	return m.help.ShortHelpView(bindings)
}

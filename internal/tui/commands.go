package tui

import (
	"context"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"

	"github.com/agrimitra/agrimitra/internal/conversation"
)

// replyMsg carries the result of an orchestrator call back to Update.
type replyMsg struct {
	turn conversation.Turn
	err  error
}

// beginRequest creates a cancellable context for one request and stores
// its cancel func so Esc can abort it.
func (m *Model) beginRequest() context.Context {
	ctx, cancel := context.WithCancel(m.ctx)
	m.reqCancel = cancel
	return ctx
}

// sendCmd submits a chat message in the background.
func (m *Model) sendCmd(text string) tea.Cmd {
	ctx := m.beginRequest()
	return func() tea.Msg {
		turn, err := m.orch.Send(ctx, text)
		return replyMsg{turn: turn, err: err}
	}
}

// recommendCmd requests a smart crop recommendation.
func (m *Model) recommendCmd() tea.Cmd {
	ctx := m.beginRequest()
	return func() tea.Msg {
		turn, err := m.orch.SmartRecommend(ctx)
		return replyMsg{turn: turn, err: err}
	}
}

// uploadCmd reads an image file and submits it for disease analysis.
func (m *Model) uploadCmd(path string) tea.Cmd {
	ctx := m.beginRequest()
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return replyMsg{err: err}
		}
		turn, err := m.orch.AnalyzeImage(ctx, filepath.Base(path), data, "")
		return replyMsg{turn: turn, err: err}
	}
}

// cancelRequest aborts the in-flight request, if any.
func (m *Model) cancelRequest() {
	if m.reqCancel != nil {
		m.reqCancel()
		m.reqCancel = nil
	}
}

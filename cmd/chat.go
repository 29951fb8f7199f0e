package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/agrimitra/agrimitra/internal/advisor"
	"github.com/agrimitra/agrimitra/internal/client"
	"github.com/agrimitra/agrimitra/internal/config"
	"github.com/agrimitra/agrimitra/internal/conversation"
	"github.com/agrimitra/agrimitra/internal/i18n"
	"github.com/agrimitra/agrimitra/internal/log"
	"github.com/agrimitra/agrimitra/internal/orchestrator"
	"github.com/agrimitra/agrimitra/internal/tui"
)

// runChat starts the interactive terminal chat against a running server.
// An optional positional argument selects the surface: crop (default),
// market or disease.
func runChat() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	surface := advisor.SurfaceCrop
	if len(os.Args) >= 3 {
		surface = advisor.ParseSurface(os.Args[2])
	}
	lang := i18n.Normalize(cfg.Language)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// TUI has its own transcript; keep chat logs out of the terminal.
	logger := log.NewNop()

	gw := client.New(cfg.APIBaseURL, logger)
	session := conversation.NewSession(welcomeMessage(surface, lang))
	orch := orchestrator.New(session, gw, surface, lang, logger)

	model, err := tui.New(ctx, orch, lang)
	if err != nil {
		return fmt.Errorf("creating TUI: %w", err)
	}

	program := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI exited: %w", err)
	}
	return nil
}

// welcomeMessage picks the localized greeting for a surface.
func welcomeMessage(surface advisor.Surface, lang string) string {
	var key string
	switch surface {
	case advisor.SurfaceMarket:
		key = "marketBot.welcomeMessage"
	case advisor.SurfaceDisease:
		key = "diseaseBot.welcomeMessage"
	default:
		key = "cropBot.welcomeMessage"
	}
	return i18n.T(lang, key)
}

// Package cmd provides CLI commands for AgriMitra.
//
// Commands:
//   - serve: HTTP API server for the farming assistant
//   - chat: Interactive terminal chat with Bubble Tea TUI
//
// Signal handling and graceful shutdown are implemented for all
// commands via context cancellation.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/agrimitra/agrimitra/internal/log"
)

// Execute is the main entry point for the AgriMitra CLI application.
func Execute() error {
	logger := log.New(log.Config{
		Level: logLevel(),
		JSON:  os.Getenv("AGRIMITRA_LOG_JSON") != "",
	})
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		runHelp()
		return nil
	}

	switch os.Args[1] {
	case "serve":
		return runServe()
	case "chat":
		return runChat()
	case "version", "--version", "-v":
		runVersion()
		return nil
	case "help", "--help", "-h":
		runHelp()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

func logLevel() slog.Level {
	if os.Getenv("DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// runHelp displays the help message.
func runHelp() {
	fmt.Println("AgriMitra - Your AI-powered farming companion")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  agrimitra serve [addr]    Start HTTP API server (default: 127.0.0.1:3001)")
	fmt.Println("  agrimitra chat [surface]  Start interactive chat (crop, market, disease)")
	fmt.Println("  agrimitra --version       Show version information")
	fmt.Println("  agrimitra --help          Show this help")
	fmt.Println()
	fmt.Println("Chat Commands (in interactive mode):")
	fmt.Println("  /help                     Show available commands")
	fmt.Println("  /recommend                Smart crop recommendation from your location")
	fmt.Println("  /upload <path>            Analyze a plant image for disease")
	fmt.Println("  /clear                    Clear conversation history")
	fmt.Println("  /exit, /quit              Exit AgriMitra")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  GEMINI_API_KEY            Optional: Gemini API key (fallback mode without it)")
	fmt.Println("  WEATHER_API_KEY           Optional: weatherapi.com key")
	fmt.Println("  AGRIMITRA_LANG            Optional: chat language (en, ml)")
	fmt.Println("  DEBUG                     Optional: enable debug logging")
}

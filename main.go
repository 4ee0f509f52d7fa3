package main

import (
	"fmt"
	"os"

	"skylight/src/app"
	"skylight/src/services/assistant"
	"skylight/src/services/config"
	"skylight/src/services/logging"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg := config.Load()

	logger := logging.NewFileLogger(cfg.LogFilePath)
	defer logger.Sync()

	backend := assistant.NewClient(cfg.ChatWebhookURL, cfg.RequestTimeout, logger)

	program := tea.NewProgram(
		app.New(cfg, backend, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := program.Run(); err != nil {
		fmt.Printf("GUI error: %v\n", err)
		os.Exit(1)
	}
}

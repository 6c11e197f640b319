package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/intervald/internal/audio"
	"github.com/sandeepkv93/intervald/internal/logging"
	"github.com/sandeepkv93/intervald/internal/storage"
	"github.com/sandeepkv93/intervald/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "intervald failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := update.LoadRuntimeConfig()
	if err != nil {
		return err
	}
	log, closer, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	deps := update.Deps{Logger: log}
	if cfg.DesktopNotifications {
		deps.Notifier = update.ExecDesktopNotifier{}
	}

	if cfg.HistoryPath != "" {
		repo, err := storage.OpenSQLite(cfg.HistoryPath)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer repo.Close()
		deps.Repo = repo
	}

	if cfg.AlertSound {
		player, err := audio.LoadPlayer(cfg.AlertSoundPath, log.With().Str("component", "audio").Logger())
		if err != nil {
			return err
		}
		go func() {
			if err := player.Init(); err != nil {
				log.Warn().Err(err).Msg("audio unavailable, alerts will be silent")
			}
		}()
		deps.Alert = player
	}

	m := update.NewModelWithConfig(deps, cfg)
	defer m.Engine.Close()

	log.Info().Str("history", cfg.HistoryPath).Bool("sound", cfg.AlertSound).Msg("starting")
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

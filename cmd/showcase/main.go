package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/showcase/internal/config"
	"github.com/jask/showcase/internal/dataset"
	"github.com/jask/showcase/internal/logger"
	"github.com/jask/showcase/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "config file (default $SHOWCASE_CONFIG or ~/.config/showcase/config.toml)")
	initConfig := flag.Bool("init", false, "write the default config file and exit")
	flag.Parse()

	if *configPath != "" {
		if err := os.Setenv("SHOWCASE_CONFIG", *configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if *initConfig {
		if err := config.WriteDefault(config.Path()); err != nil {
			log.Fatalf("init config: %v", err)
		}
		fmt.Println("wrote", config.Path())
		return
	}

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logr, closer, err := logger.OpenFile(cfg.Log.Path, cfg.Log.Level, cfg.Log.Format,
		logger.WithAttr(slog.String("service", "showcase")))
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer closer.Close()

	records, err := dataset.Load(ctx, cfg, logr)
	if err != nil {
		logr.Error("load dataset", "source", cfg.Dataset.Source, "err", err)
		log.Fatalf("dataset: %v", err)
	}

	app, err := tui.New(cfg, records, logr)
	if err != nil {
		log.Fatalf("ui: %v", err)
	}
	logr.Info("starting", "source", cfg.Dataset.Source, "records", len(records), "view", cfg.UI.StartView)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logr.Error("program exited", "err", err)
		fmt.Printf("error: %v\n", err)
	}
}

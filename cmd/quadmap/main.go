package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"quadmap/internal/config"
	"quadmap/internal/tui"
)

func main() {
	cfgPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	var m tea.Model
	switch {
	case flag.NArg() > 0:
		m = tui.NewWithPath(cfg, flag.Arg(0))
	case cfg.File != "":
		m = tui.NewWithPath(cfg, cfg.File)
	default:
		m = tui.New(cfg)
	}
	if err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Start(); err != nil {
		log.Fatal(err)
	}
}

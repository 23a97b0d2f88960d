// main.go
package main

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"gophermaze/config"
	"gophermaze/level"
	"gophermaze/logger"
)

//go:embed assets/*
var assets embed.FS

const defaultMaze = "assets/maze.txt"

func main() {
	flags := pflag.NewFlagSet("gophermaze", pflag.ExitOnError)
	configPath := flags.String("config", "", "path to a config file (default ./config.yaml if present)")
	flags.String("maze", "", "maze file to play instead of the built-in one")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Int("workers", 0, "goroutines used to cast a frame (0 = one per CPU)")
	printConfig := flags.Bool("print-config", false, "print the effective config and exit")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath, flags)
	if err != nil {
		logger.Log.WithError(err).Fatal("could not load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Log.WithError(err).Fatal("invalid config")
	}
	if err := logger.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		logger.Log.WithError(err).Fatal("could not set up logging")
	}

	if *printConfig {
		if err := cfg.Dump(os.Stdout); err != nil {
			logger.Log.WithError(err).Fatal("could not print config")
		}
		return
	}

	lvl, err := loadMaze(cfg.World.MazeFile)
	if err != nil {
		logger.Log.WithError(err).Fatal("could not load maze")
	}

	game, err := NewGame(cfg, lvl)
	if err != nil {
		logger.Log.WithError(err).Fatal("could not start game")
	}

	ebiten.SetWindowSize(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	ebiten.SetVsyncEnabled(cfg.Display.VSync)

	logger.Log.WithFields(logrus.Fields{
		"width":  cfg.Display.ScreenWidth,
		"height": cfg.Display.ScreenHeight,
	}).Info("starting game")

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.WithError(err).Fatal("game exited")
	}
}

// loadMaze reads path from disk, or the embedded maze when path is empty.
func loadMaze(path string) (*level.Level, error) {
	var fsys fs.FS = assets
	name := defaultMaze
	if path != "" {
		fsys = os.DirFS(filepath.Dir(path))
		name = filepath.Base(path)
	}

	return level.LoadFS(fsys, name)
}

package main

import (
	"embed"
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"mazecaster/config"
)

//go:embed assets/maze.txt
var assets embed.FS

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a YAML config file")
	mazePath := pflag.StringP("maze", "m", "", "maze to load (.txt or .png), overrides the config")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *mazePath != "" {
		cfg.Maze.Path = *mazePath
	}

	g, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := g.Run(); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

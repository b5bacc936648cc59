package main

import (
	"flag"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/wastesorter/levels"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", levels.Tutorial, "level name in levels/ (basename, .json optional)")
	skipSurvey := flag.Bool("skip-survey", false, "go straight to play and straight to results")
	seed := flag.Int64("seed", 1, "random seed for enemy volleys and effects")
	device := flag.String("device", "desktop", "device name written to the session row")
	outDir := flag.String("out", "sessions", "directory session CSVs are saved under")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	lvl, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal("bad -log-level", "value", *logLevel, "err", err)
	}
	log.SetLevel(lvl)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("wastesorter")

	game, err := NewGame(GameOptions{
		Level:      *levelName,
		Debug:      *debug,
		SkipSurvey: *skipSurvey,
		Seed:       *seed,
		Device:     *device,
		OutDir:     *outDir,
	})
	if err != nil {
		log.Fatal("start game", "level", *levelName, "err", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("run game", "err", err)
	}
	if game.savedTo != "" {
		log.Info("session written", "path", game.savedTo)
	}
}

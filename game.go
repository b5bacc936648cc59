package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"

	"github.com/milk9111/wastesorter/common"
	"github.com/milk9111/wastesorter/ecs/draw"
	"github.com/milk9111/wastesorter/prefabs"
	"github.com/milk9111/wastesorter/score"
	"github.com/milk9111/wastesorter/session"
	"github.com/milk9111/wastesorter/sim"
)

type mode int

const (
	modeSurveyBefore mode = iota
	modePlay
	modePaused
	modeSurveyAfter
	modeResults
)

type GameOptions struct {
	Level      string
	Debug      bool
	SkipSurvey bool
	Seed       int64
	Device     string
	OutDir     string
}

type Game struct {
	frames int
	mode   mode
	debug  bool
	quit   bool

	opts    GameOptions
	session *sim.Session
	visuals prefabs.VisualsSpec
	render  *draw.RenderSystem
	watcher *prefabs.Watcher

	pauseUI   *ebitenui.UI
	surveyUI  *surveyUI
	resultsUI *resultsUI

	clipboardOK bool
	savedTo     string
}

func NewGame(opts GameOptions) (*Game, error) {
	visuals, err := prefabs.LoadVisuals()
	if err != nil {
		return nil, err
	}
	s, err := sim.New(sim.Options{Level: opts.Level, Visuals: &visuals, Seed: opts.Seed})
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:   opts.Debug,
		opts:    opts,
		session: s,
		visuals: visuals,
		render:  draw.NewRenderSystem(visuals.Flash.Or(colornames.White)),
	}
	g.pauseUI = NewPauseUI(g)

	if err := clipboard.Init(); err != nil {
		log.Warn("clipboard unavailable", "err", err)
	} else {
		g.clipboardOK = true
	}

	if info, err := os.Stat(prefabs.OverrideDir); err == nil && info.IsDir() {
		w, err := prefabs.NewWatcher(prefabs.OverrideDir)
		if err != nil {
			log.Warn("hot reload disabled", "dir", prefabs.OverrideDir, "err", err)
		} else {
			g.watcher = w
			log.Info("watching prefabs", "dir", prefabs.OverrideDir)
		}
	}

	if opts.SkipSurvey {
		g.mode = modePlay
	} else {
		g.openSurvey(score.BeforePlay)
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	g.hotReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}

	switch g.mode {
	case modeSurveyBefore, modeSurveyAfter:
		g.surveyUI.ui.Update()
	case modePaused:
		if pausePressed() {
			g.resume()
		}
		g.pauseUI.Update()
	case modeResults:
		g.resultsUI.ui.Update()
	case modePlay:
		if pausePressed() {
			g.pause()
			break
		}
		g.session.Tick(ReadKeyboard(), time.Second/common.TPS)
		if g.session.Finished() {
			g.finish()
		}
	}

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) pause() {
	g.session.Pause()
	g.mode = modePaused
}

func (g *Game) resume() {
	g.session.Resume()
	g.mode = modePlay
}

func (g *Game) finish() {
	if g.opts.SkipSurvey {
		g.openResults()
		return
	}
	g.openSurvey(score.AfterPlay)
}

func (g *Game) openSurvey(phase score.Phase) {
	g.surveyUI = NewSurveyUI(g.session.Survey(), phase, func() {
		if phase == score.BeforePlay {
			g.mode = modePlay
			return
		}
		g.openResults()
	})
	if phase == score.BeforePlay {
		g.mode = modeSurveyBefore
	} else {
		g.mode = modeSurveyAfter
	}
}

func (g *Game) openResults() {
	g.resultsUI = NewResultsUI(g)
	g.mode = modeResults
}

// hotReload applies edited tuning files. A file that fails to parse keeps
// the previous tuning.
func (g *Game) hotReload() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Warn("prefab watcher", "err", err)
	default:
	}

	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	specs := false
	for _, name := range changed {
		if filepath.Ext(name) == ".tengo" {
			log.Debug("script changed", "file", name)
			continue
		}
		specs = true
	}
	if !specs || (g.mode != modePlay && g.mode != modePaused) {
		return
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Error("reload tuning", "files", changed, "err", err)
		return
	}
	visuals, err := prefabs.LoadVisuals()
	if err != nil {
		log.Error("reload visuals", "files", changed, "err", err)
		return
	}
	g.session.SetTuning(tuning)
	g.session.SetVisuals(visuals)
	g.visuals = visuals
	g.render.Flash = visuals.Flash.Or(colornames.White)
	if err := g.session.Reload(); err != nil {
		log.Error("reload level", "level", g.session.LevelName(), "err", err)
		return
	}
	log.Info("prefabs reloaded", "files", changed)
}

// saveRecord writes the session row under OutDir.
func (g *Game) saveRecord() (string, error) {
	rec := g.session.Record(g.opts.Device, time.Now())
	return session.Save(g.opts.OutDir, rec)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.visuals.Background.Or(color.NRGBA{R: 0x1d, G: 0x23, B: 0x2b, A: 0xff}))

	w := g.session.World()
	g.render.Draw(w, screen)
	if g.debug {
		draw.Physics(g.session.Physics().Space(), w, screen)
		draw.PlayerState(w, screen)
	}

	acc := g.session.Accumulator()
	ctrl := g.session.Player()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Level: %s    Score: %d    Health: %d/%d    FPS: %.2f",
		g.session.LevelName(), acc.Score(), ctrl.Health(), ctrl.MaxHealth(), ebiten.ActualFPS()))

	switch g.mode {
	case modeSurveyBefore, modeSurveyAfter:
		g.surveyUI.ui.Draw(screen)
	case modePaused:
		g.pauseUI.Draw(screen)
	case modeResults:
		g.resultsUI.ui.Draw(screen)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

package main

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"golang.design/x/clipboard"

	"github.com/milk9111/wastesorter/combat"
	"github.com/milk9111/wastesorter/session"
)

// resultsUI is shown once the session is over: the grade, a satisfaction
// rating and the export buttons.
type resultsUI struct {
	ui     *ebitenui.UI
	rating *widget.Text
	status *widget.Text
}

func NewResultsUI(g *Game) *resultsUI {
	face := uiFace()
	ui, panel := newPanelUI()
	r := &resultsUI{ui: ui}

	acc := g.session.Accumulator()
	panel.AddChild(newLabel(face, "Level complete", white))
	panel.AddChild(newLabel(face, fmt.Sprintf("Score: %d    Grade: %.1f    Time: %s",
		acc.Score(), acc.FinalGrade(), acc.Elapsed().Round(time.Second)), white))

	for _, c := range combat.Categories {
		panel.AddChild(newLabel(face, fmt.Sprintf("%s: %d of %d", c, acc.Hits(c), acc.Attempts(c)), dimWhite))
	}
	panel.AddChild(newLabel(face, fmt.Sprintf("Hurt %d times, died %d times", acc.Hurt(), acc.Deaths()), dimWhite))

	panel.AddChild(newLabel(face, "How much did you enjoy it?", white))
	stars := newRow(6)
	for i := 1; i <= 5; i++ {
		stars.AddChild(newButton(face, strconv.Itoa(i), func() {
			g.session.SetSatisfaction(float64(i))
			r.rating.Label = fmt.Sprintf("You said %d", i)
		}))
	}
	panel.AddChild(stars)
	r.rating = newLabel(face, "-", dimWhite)
	panel.AddChild(r.rating)

	actions := newRow(8)
	if g.clipboardOK {
		actions.AddChild(newButton(face, "Copy CSV", func() { r.copyRow(g) }))
	}
	actions.AddChild(newButton(face, "Save", func() { r.save(g) }))
	actions.AddChild(newButton(face, "Quit", func() { g.quit = true }))
	panel.AddChild(actions)

	r.status = newLabel(face, "", dimWhite)
	panel.AddChild(r.status)
	return r
}

func (r *resultsUI) copyRow(g *Game) {
	var buf bytes.Buffer
	if err := session.Write(&buf, g.session.Record(g.opts.Device, time.Now())); err != nil {
		log.Error("copy session row", "err", err)
		r.status.Label = "copy failed"
		return
	}
	clipboard.Write(clipboard.FmtText, bytes.TrimRight(buf.Bytes(), "\r\n"))
	r.status.Label = "row copied"
}

func (r *resultsUI) save(g *Game) {
	path, err := g.saveRecord()
	if err != nil {
		log.Error("save session", "err", err)
		r.status.Label = "save failed"
		return
	}
	g.savedTo = path
	log.Info("session saved", "path", path)
	r.status.Label = "saved to " + path
}

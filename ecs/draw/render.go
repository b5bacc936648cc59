// Package draw renders the world as debug rectangles with ebiten.
package draw

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/wastesorter/ecs"
	"github.com/milk9111/wastesorter/ecs/component"
	"github.com/milk9111/wastesorter/ecs/system"
)

// RenderSystem draws every Render component centred on its transform, with
// y pointing up, followed by popups.
type RenderSystem struct {
	// Flash replaces the colour of entities whose WhiteFlash is on.
	Flash color.Color

	face *ebtext.GoXFace
}

func NewRenderSystem(flash color.Color) *RenderSystem {
	if flash == nil {
		flash = colornames.White
	}
	return &RenderSystem{Flash: flash, face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	camX, camY, zoom := system.CameraView(w)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	v := view{camX: camX, camY: camY, zoom: zoom, halfW: float64(sw) / 2, halfH: float64(sh) / 2}

	entities := w.Query(component.TransformComponent.Kind(), component.RenderComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := 0, 0
		if rc, ok := ecs.Get(w, entities[i], component.RenderComponent.Kind()); ok {
			li = rc.Layer
		}
		if rc, ok := ecs.Get(w, entities[j], component.RenderComponent.Kind()); ok {
			lj = rc.Layer
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		rc, _ := ecs.Get(w, e, component.RenderComponent.Kind())
		if rc.Hidden || rc.Color == nil {
			continue
		}
		col := rc.Color
		if flash, ok := ecs.Get(w, e, component.WhiteFlashComponent.Kind()); ok && flash.On {
			col = r.Flash
		}
		x, y := v.toScreen(t.X-rc.Width/2, t.Y+rc.Height/2)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(rc.Width*zoom), float32(rc.Height*zoom), col, false)
	}

	ecs.ForEach2(w, component.PopupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Popup, t *component.Transform) {
		x, y := v.toScreen(t.X, t.Y)
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.LayoutOptions.PrimaryAlign = ebtext.AlignCenter
		if p.Color != nil {
			op.ColorScale.ScaleWithColor(p.Color)
		}
		if l, ok := ecs.Get(w, e, component.LifetimeComponent.Kind()); ok {
			op.ColorScale.ScaleAlpha(float32(min(1, 2*l.Fraction())))
		}
		ebtext.Draw(screen, p.Text, r.face, op)
	})
}

type view struct {
	camX, camY   float64
	zoom         float64
	halfW, halfH float64
}

// toScreen maps a y-up world point to screen pixels with the camera at the
// centre of the screen.
func (v view) toScreen(x, y float64) (float64, float64) {
	return (x-v.camX)*v.zoom + v.halfW, v.halfH - (y-v.camY)*v.zoom
}

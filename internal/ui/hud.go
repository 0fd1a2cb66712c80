//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"convchain/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
)

// HUD renders the parameter panel to the right of the field and lets the
// user nudge adjustable parameters with +/- buttons.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls    []control
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	offsetX     int
}

type control struct {
	core.ParameterControl
	value float64
	shown string
	minus image.Rectangle
	plus  image.Rectangle
}

// NewHUD constructs a HUD for sim with the given panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: width, pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		for i, c := range p.ParameterControls() {
			top := controlsTop + i*lineHeight
			plus := image.Rect(width-panelPadding-buttonSize, top, width-panelPadding, top+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.controls = append(h.controls, control{ParameterControl: c, minus: minus, plus: plus})
		}
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Update refreshes the snapshot and applies clicks. offsetX is the panel's
// left edge in screen coordinates.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	if p, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = p.Parameters()
	}
	for i := range h.controls {
		c := &h.controls[i]
		c.shown = "--"
		if p, ok := h.snapshot.Lookup(c.Key); ok {
			if v, err := strconv.ParseFloat(p.Value, 64); err == nil {
				c.value = v
				c.shown = p.Value
			}
		}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case pt.In(c.minus):
			h.adjust(c, -1)
		case pt.In(c.plus):
			h.adjust(c, 1)
		}
	}
}

func (h *HUD) adjust(c *control, direction float64) {
	target := c.Clamp(c.value + direction*c.Step)
	switch c.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil {
			h.intSetter.SetIntParameter(c.Key, int(target))
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil {
			h.floatSetter.SetFloatParameter(c.Key, target)
		}
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * scale
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.sim.Name(), face, panelPadding, panelPadding+headerBaseline, titleColor)
	for _, c := range h.controls {
		y := c.minus.Min.Y + labelBaseline
		text.Draw(h.panel, c.Label+": "+c.shown, face, panelPadding, y, labelColor)
		h.button(c.minus, "-")
		h.button(c.plus, "+")
	}

	// Read-only values follow the controls.
	y := controlsTop + len(h.controls)*lineHeight + headerBaseline
	for _, g := range h.snapshot.Groups {
		text.Draw(h.panel, g.Name, face, panelPadding, y, titleColor)
		y += infoSpacing
		for _, p := range g.Params {
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, mutedColor)
			y += infoSpacing
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) button(r image.Rectangle, label string) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(buttonColor)
	h.panel.DrawImage(h.pixel, op)
	text.Draw(h.panel, label, basicfont.Face7x13, r.Min.X+buttonSize/2-3, r.Min.Y+labelBaseline, labelColor)
}

const (
	panelPadding   = 12
	lineHeight     = 32
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 14
	labelBaseline  = 16
	infoSpacing    = 16
	controlsTop    = panelPadding + headerBaseline + 12
)

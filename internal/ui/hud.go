//go:build ebiten

package ui

import (
	"image/color"

	"github.com/emjomi/life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor       = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	editColor       = color.RGBA{R: 51, G: 209, B: 122, A: 255}
	helpBackground  = color.RGBA{R: 0, G: 0, B: 0, A: 200}
)

// HUD renders the status panel to the right of the grid and the shortcut
// overlay on top of it.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	showHelp   bool
	help       *ebiten.Image
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int { return h.width }

// ToggleHelp shows or hides the shortcut overlay.
func (h *HUD) ToggleHelp() { h.showHelp = !h.showHelp }

// Draw paints the panel at offsetX and, when enabled, the help overlay over
// the whole screen.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, snapshot core.ParameterSnapshot, editor *RuleEditor) {
	if h.width > 0 && height > 0 {
		if h.panel == nil || h.lastHeight != height {
			if h.panel != nil {
				h.panel.Deallocate()
			}
			h.panel = ebiten.NewImage(h.width, height)
			h.lastHeight = height
		}
		h.panel.Fill(panelBackground)
		h.drawPanel(snapshot, editor)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(offsetX), 0)
		screen.DrawImage(h.panel, op)
	}
	if h.showHelp {
		h.drawHelp(screen)
	}
}

func (h *HUD) drawPanel(snapshot core.ParameterSnapshot, editor *RuleEditor) {
	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	for _, line := range PanelLines(snapshot) {
		clr := textColor
		if len(line) > 0 && line[0] != ' ' {
			clr = headerColor
		}
		text.Draw(h.panel, line, face, panelPadding, y, clr)
		y += lineHeight
	}
	y += lineHeight
	if editor != nil && editor.Active() {
		text.Draw(h.panel, "Rule: "+editor.Text()+"_", face, panelPadding, y, editColor)
		y += lineHeight
		text.Draw(h.panel, "Enter apply, Esc cancel", face, panelPadding, y, headerColor)
		return
	}
	text.Draw(h.panel, "? for shortcuts", face, panelPadding, y, headerColor)
}

func (h *HUD) drawHelp(screen *ebiten.Image) {
	bounds := screen.Bounds()
	if h.help == nil || h.help.Bounds() != bounds {
		if h.help != nil {
			h.help.Deallocate()
		}
		h.help = ebiten.NewImage(bounds.Dx(), bounds.Dy())
		h.help.Fill(helpBackground)
		face := basicfont.Face7x13
		y := panelPadding + lineHeight
		for _, line := range HelpLines() {
			text.Draw(h.help, line, face, panelPadding, y, textColor)
			y += lineHeight
		}
	}
	screen.DrawImage(h.help, nil)
}

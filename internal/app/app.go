//go:build ebiten

package app

import (
	"log/slog"

	"github.com/emjomi/life/internal/core"
	"github.com/emjomi/life/internal/render"
	"github.com/emjomi/life/internal/session"
	"github.com/emjomi/life/internal/ui"
	"github.com/emjomi/life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	panelWidth = 220
	speedDelta = 5
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	editor  ui.RuleEditor
	ticker  *core.FixedStep
	log     *slog.Logger

	view  int
	cells []life.Cell
	chars []rune
}

// New constructs a Game drawing the grid in a view × view pixel area.
func New(sess *session.Session, view int, logger *slog.Logger) *Game {
	return &Game{
		sess:    sess,
		painter: render.NewGridPainter(),
		hud:     ui.NewHUD(panelWidth),
		ticker:  core.NewFixedStep(sess.TPS()),
		log:     logger,
		view:    view,
	}
}

// WindowSize returns the outer size the window should open with.
func (g *Game) WindowSize() (int, int) {
	return g.view + g.hud.Width(), g.view
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if g.editor.Active() {
		g.updateEditor()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.sess.ToggleRunning()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.sess.Step()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.sess.Randomize()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyE):
		g.sess.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		g.editor.Open(g.sess.Rule().String())
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		g.sess.AdjustTPS(speedDelta)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		g.sess.AdjustTPS(-speedDelta)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		g.sess.Resize(g.sess.Size() + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		g.sess.Resize(g.sess.Size() - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeySlash):
		g.hud.ToggleHelp()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.sess.ToggleAt(x, y, g.view, g.view)
	}

	if tps := g.sess.TPS(); tps != g.ticker.TPS() {
		g.ticker.SetTPS(tps)
	}
	if g.ticker.ShouldStep() {
		g.sess.Tick()
	}
	return nil
}

func (g *Game) updateEditor() {
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	g.editor.Insert(g.chars...)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.editor.Backspace()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		text := g.editor.Commit()
		if rule, err := g.sess.SetRuleText(text); err == nil {
			g.log.Info("rule changed", "rule", rule.String())
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.editor.Cancel()
	}
}

// Draw renders the grid and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.DeadColor)
	var size int
	g.cells, size = g.sess.Cells(g.cells)
	g.painter.Blit(screen, g.cells, size, render.LiveColor, render.DeadColor, g.view, g.view)
	g.hud.Draw(screen, g.view, g.view, g.sess.Parameters(), &g.editor)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

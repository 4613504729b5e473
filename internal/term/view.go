package term

import (
	"context"
	"log/slog"
	"time"

	"github.com/emjomi/life/internal/session"
	"github.com/emjomi/life/internal/ui"
	"github.com/emjomi/life/pkg/life"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

const speedDelta = 5

var (
	liveStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(51, 209, 122))
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	editStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(51, 209, 122))
	helpStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
)

// View is the interactive terminal front-end. Each cell is two columns wide
// so the grid looks square in most fonts.
type View struct {
	screen   tcell.Screen
	sess     *session.Session
	log      *slog.Logger
	editor   ui.RuleEditor
	showHelp bool
	cells    []life.Cell
	buttons  tcell.ButtonMask
}

// NewView wraps an initialised screen.
func NewView(screen tcell.Screen, sess *session.Session, logger *slog.Logger) *View {
	screen.EnableMouse()
	return &View{screen: screen, sess: sess, log: logger}
}

// Run processes input and ticks the session until the user quits or ctx is
// cancelled.
func (v *View) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})

	g.Go(func() error {
		v.screen.ChannelEvents(events, quit)
		return nil
	})
	g.Go(func() error {
		defer close(quit)
		return v.loop(ctx, events)
	})
	return g.Wait()
}

func (v *View) loop(ctx context.Context, events <-chan tcell.Event) error {
	tps := v.sess.TPS()
	ticker := time.NewTicker(interval(tps))
	defer ticker.Stop()

	v.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || v.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			v.sess.Tick()
		}
		if current := v.sess.TPS(); current != tps {
			tps = current
			ticker.Reset(interval(tps))
		}
		v.draw()
	}
}

// handleEvent applies one input event and reports whether to quit.
func (v *View) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventMouse:
		// Motion events repeat the held buttons; only a press toggles.
		buttons := ev.Buttons()
		if buttons&tcell.Button1 != 0 && v.buttons&tcell.Button1 == 0 {
			x, y := ev.Position()
			v.sess.Toggle(y, x/2)
		}
		v.buttons = buttons
	case *tcell.EventKey:
		if v.editor.Active() {
			v.handleEditorKey(ev)
			return false
		}
		return v.handleKey(ev)
	}
	return false
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRight:
		v.sess.Step()
	case tcell.KeyCtrlR:
		v.sess.Randomize()
	case tcell.KeyCtrlE:
		v.sess.Clear()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case ' ':
			v.sess.ToggleRunning()
		case '+', '=':
			v.sess.AdjustTPS(speedDelta)
		case '-':
			v.sess.AdjustTPS(-speedDelta)
		case ']':
			v.sess.Resize(v.sess.Size() + 1)
		case '[':
			v.sess.Resize(v.sess.Size() - 1)
		case 'e', 'E':
			v.editor.Open(v.sess.Rule().String())
		case '?':
			v.showHelp = !v.showHelp
		}
	}
	return false
}

func (v *View) handleEditorKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		v.editor.Insert(ev.Rune())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		v.editor.Backspace()
	case tcell.KeyEnter:
		if rule, err := v.sess.SetRuleText(v.editor.Commit()); err == nil {
			v.log.Info("rule changed", "rule", rule.String())
		}
	case tcell.KeyEscape:
		v.editor.Cancel()
	}
}

func (v *View) draw() {
	v.screen.Clear()
	var size int
	v.cells, size = v.sess.Cells(v.cells)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			style := deadStyle
			if v.cells[row*size+col] == life.Live {
				style = liveStyle
			}
			v.screen.SetContent(col*2, row, ' ', nil, style)
			v.screen.SetContent(col*2+1, row, ' ', nil, style)
		}
	}

	_, height := v.screen.Size()
	y := size
	if y > height-2 {
		y = height - 2
	}
	if y < 0 {
		y = 0
	}
	v.drawText(0, y, ui.StatusLine(v.sess.Parameters()), statusStyle)
	if v.editor.Active() {
		v.drawText(0, y+1, "Rule: "+v.editor.Text()+"_  (Enter apply, Esc cancel)", editStyle)
	} else {
		v.drawText(0, y+1, "? shortcuts  q quit", statusStyle)
	}
	if v.showHelp {
		for i, line := range ui.HelpLines() {
			v.drawText(1, 1+i, line, helpStyle)
		}
	}
	v.screen.Show()
}

func (v *View) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

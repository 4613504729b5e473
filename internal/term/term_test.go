package term

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/emjomi/life/internal/config"
	"github.com/emjomi/life/internal/logging"
	"github.com/emjomi/life/internal/session"
	"github.com/emjomi/life/pkg/life"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func blinkerSession(t *testing.T, paused bool) *session.Session {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Size = 5
	cfg.TPS = config.MaxTPS
	cfg.Paused = paused
	cfg.Pattern = []string{
		"...",
		"@@@",
		"...",
	}
	s, err := session.New(cfg, logging.Discard())
	require.NoError(t, err)
	return s
}

func newTestView(t *testing.T, sess *session.Session) (*View, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 12)
	t.Cleanup(screen.Fini)
	return NewView(screen, sess, logging.Discard()), screen
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestRunTextPrintsFrames(t *testing.T) {
	sess := blinkerSession(t, true)
	var out bytes.Buffer
	require.NoError(t, RunText(context.Background(), &out, sess, 2))

	frames := strings.Split(out.String(), clearScreen)[1:]
	require.Len(t, frames, 3)
	require.True(t, strings.HasPrefix(frames[0], "     \n     \n @@@ \n"))
	require.True(t, strings.HasPrefix(frames[1], "     \n  @  \n  @  \n  @  \n"))
	require.True(t, strings.HasPrefix(frames[2], frames[0][:30]))
	require.Contains(t, frames[2], "gen 2")
	require.Equal(t, 2, sess.Generation())
}

func TestRunTextStopsOnCancel(t *testing.T) {
	sess := blinkerSession(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	require.NoError(t, RunText(ctx, &out, sess, 0))
	require.Equal(t, 1, strings.Count(out.String(), clearScreen))
}

func TestHandleKeys(t *testing.T) {
	sess := blinkerSession(t, true)
	v, _ := newTestView(t, sess)

	require.False(t, v.handleEvent(key(tcell.KeyRight, 0)))
	require.Equal(t, 1, sess.Generation())

	v.handleEvent(key(tcell.KeyRune, ']'))
	require.Equal(t, 6, sess.Size())
	v.handleEvent(key(tcell.KeyRune, '['))
	require.Equal(t, 5, sess.Size())

	v.handleEvent(key(tcell.KeyRune, '-'))
	require.Equal(t, config.MaxTPS-speedDelta, sess.TPS())
	v.handleEvent(key(tcell.KeyRune, '+'))
	require.Equal(t, config.MaxTPS, sess.TPS())

	v.handleEvent(key(tcell.KeyCtrlE, 0))
	require.Equal(t, 0, sess.Generation())
	cells, _ := sess.Cells(nil)
	require.Equal(t, make([]life.Cell, 25), cells)

	v.handleEvent(key(tcell.KeyRune, ' '))
	require.True(t, sess.Running())

	require.True(t, v.handleEvent(key(tcell.KeyRune, 'q')))
	require.True(t, v.handleEvent(key(tcell.KeyEscape, 0)))
}

func TestRuleEditor(t *testing.T) {
	sess := blinkerSession(t, true)
	v, _ := newTestView(t, sess)

	v.handleEvent(key(tcell.KeyRune, 'e'))
	require.True(t, v.editor.Active())
	require.Equal(t, "B3/S23", v.editor.Text())

	for range "B3/S23" {
		v.handleEvent(key(tcell.KeyBackspace2, 0))
	}
	for _, r := range "highlife" {
		require.False(t, v.handleEvent(key(tcell.KeyRune, r)), "runes go to the editor while it is open")
	}
	v.handleEvent(key(tcell.KeyEnter, 0))
	require.False(t, v.editor.Active())
	require.Equal(t, "B36/S23", sess.Rule().String())

	v.handleEvent(key(tcell.KeyRune, 'e'))
	v.handleEvent(key(tcell.KeyRune, 'x'))
	require.False(t, v.handleEvent(key(tcell.KeyEscape, 0)), "escape closes the editor first")
	require.False(t, v.editor.Active())
	require.Equal(t, "B36/S23", sess.Rule().String())
}

func TestMouseTogglesCell(t *testing.T) {
	sess := blinkerSession(t, true)
	v, _ := newTestView(t, sess)

	v.handleEvent(tcell.NewEventMouse(3, 1, tcell.Button1, tcell.ModNone))
	c, ok := sess.Cell(1, 1)
	require.True(t, ok)
	require.Equal(t, life.Live, c)

	v.handleEvent(tcell.NewEventMouse(3, 1, tcell.ButtonNone, tcell.ModNone))
	v.handleEvent(tcell.NewEventMouse(30, 1, tcell.Button1, tcell.ModNone))
	pop, ok := sess.Parameters().Lookup("population")
	require.True(t, ok)
	require.Equal(t, "4", pop.Value, "clicks right of the grid are ignored")
}

func TestMouseDragTogglesOnlyOnPress(t *testing.T) {
	sess := blinkerSession(t, true)
	v, _ := newTestView(t, sess)

	for _, x := range []int{0, 2, 4, 2, 0} {
		v.handleEvent(tcell.NewEventMouse(x, 0, tcell.Button1, tcell.ModNone))
	}
	for col, want := range []life.Cell{life.Live, life.Dead, life.Dead} {
		c, _ := sess.Cell(0, col)
		require.Equal(t, want, c, "col %d", col)
	}

	v.handleEvent(tcell.NewEventMouse(4, 0, tcell.ButtonNone, tcell.ModNone))
	v.handleEvent(tcell.NewEventMouse(4, 0, tcell.Button1, tcell.ModNone))
	c, _ := sess.Cell(0, 2)
	require.Equal(t, life.Live, c)
}

func TestDrawPaintsGrid(t *testing.T) {
	sess := blinkerSession(t, true)
	v, screen := newTestView(t, sess)
	v.draw()

	bgAt := func(x, y int) tcell.Color {
		_, _, style, _ := screen.GetContent(x, y)
		_, bg, _ := style.Decompose()
		return bg
	}
	_, live, _ := liveStyle.Decompose()
	_, dead, _ := deadStyle.Decompose()
	require.Equal(t, live, bgAt(2, 2))
	require.Equal(t, live, bgAt(3, 2))
	require.Equal(t, dead, bgAt(0, 0))

	var status strings.Builder
	for x := 0; x < 12; x++ {
		r, _, _, _ := screen.GetContent(x, 5)
		status.WriteRune(r)
	}
	require.Equal(t, "B3/S23  gen ", status.String())
}

func TestRunQuitsOnKey(t *testing.T) {
	sess := blinkerSession(t, true)
	v, screen := newTestView(t, sess)

	done := make(chan error, 1)
	go func() { done <- v.Run(context.Background()) }()
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
	require.True(t, sess.Running())
}

func TestRunStopsOnCancel(t *testing.T) {
	sess := blinkerSession(t, false)
	v, _ := newTestView(t, sess)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.NoError(t, v.Run(ctx))
}

package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/emjomi/life/internal/config"
	"github.com/emjomi/life/internal/logging"
	"github.com/emjomi/life/pkg/life"
	"github.com/stretchr/testify/require"
)

func blinkerConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Size = 5
	cfg.Paused = true
	cfg.Pattern = []string{
		"...",
		"@@@",
		"...",
	}
	return cfg
}

func newSession(t *testing.T, cfg *config.Config) *Session {
	t.Helper()
	s, err := New(cfg, logging.Discard())
	require.NoError(t, err)
	return s
}

func TestNewEngineCentresPattern(t *testing.T) {
	engine, err := NewEngine(blinkerConfig())
	require.NoError(t, err)
	require.Equal(t, 5, engine.Size())
	require.Equal(t, "     \n     \n @@@ \n     \n     \n", engine.String())
}

func TestNewEngineRandomIsSeeded(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Seed = 99
	a, err := NewEngine(cfg)
	require.NoError(t, err)
	b, err := NewEngine(cfg)
	require.NoError(t, err)
	require.Equal(t, a.String(), b.String())
	require.Equal(t, 30, a.Size())
}

func TestNewEngineRejectsBadRule(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Rule = "B3/Q23"
	_, err := NewEngine(cfg)
	require.ErrorIs(t, err, life.ErrInvalidFormat)
}

func TestStepOnlyWhilePaused(t *testing.T) {
	s := newSession(t, blinkerConfig())
	require.False(t, s.Running())
	require.False(t, s.Tick(), "tick must not advance a paused session")

	require.True(t, s.Step())
	require.Equal(t, 1, s.Generation())
	c, ok := s.Cell(1, 2)
	require.True(t, ok)
	require.Equal(t, life.Live, c)

	require.True(t, s.ToggleRunning())
	require.False(t, s.Step(), "manual step is disabled while running")
	require.True(t, s.Tick())
	require.Equal(t, 2, s.Generation())
}

func TestToggleOnlyWhilePaused(t *testing.T) {
	s := newSession(t, blinkerConfig())
	require.True(t, s.Toggle(0, 0))
	c, _ := s.Cell(0, 0)
	require.Equal(t, life.Live, c)
	require.False(t, s.Toggle(9, 9))

	s.ToggleRunning()
	require.False(t, s.Toggle(0, 0))
	c, _ = s.Cell(0, 0)
	require.Equal(t, life.Live, c)
}

func TestCellAt(t *testing.T) {
	s := newSession(t, blinkerConfig())
	row, col, ok := s.CellAt(0, 0, 100, 100)
	require.True(t, ok)
	require.Equal(t, [2]int{0, 0}, [2]int{row, col})

	row, col, ok = s.CellAt(99, 41, 100, 100)
	require.True(t, ok)
	require.Equal(t, [2]int{2, 4}, [2]int{row, col})

	_, _, ok = s.CellAt(100, 0, 100, 100)
	require.False(t, ok)
	_, _, ok = s.CellAt(-1, 0, 100, 100)
	require.False(t, ok)

	require.True(t, s.ToggleAt(50, 50, 100, 100))
	c, _ := s.Cell(2, 2)
	require.Equal(t, life.Dead, c)
}

func TestSetRuleTextFallsBackToDefault(t *testing.T) {
	s := newSession(t, blinkerConfig())

	rule, err := s.SetRuleText("seeds")
	require.NoError(t, err)
	require.Equal(t, "B2/S", rule.String())
	require.Equal(t, rule, s.Rule())

	rule, err = s.SetRuleText("B3x/S23")
	require.True(t, errors.Is(err, life.ErrInvalidNumber))
	require.Equal(t, life.DefaultRule(), rule)
	require.Equal(t, life.DefaultRule(), s.Rule())
}

func TestResizeClamps(t *testing.T) {
	s := newSession(t, blinkerConfig())
	require.Equal(t, 3, s.Resize(3))
	require.Equal(t, "   \n@@@\n   \n", s.String())
	require.Equal(t, config.MaxSize, s.Resize(10_000))
	require.Equal(t, 0, s.Resize(-4))
	require.Equal(t, 0, s.Size())
}

func TestClearAndRandomizeResetGeneration(t *testing.T) {
	s := newSession(t, blinkerConfig())
	s.Step()
	s.Clear()
	require.Equal(t, 0, s.Generation())
	cells, size := s.Cells(nil)
	require.Equal(t, 5, size)
	require.Equal(t, make([]life.Cell, 25), cells)

	s.Step()
	s.Randomize()
	require.Equal(t, 0, s.Generation())
	require.Equal(t, 5, s.Size())
}

func TestTPSClamp(t *testing.T) {
	s := newSession(t, blinkerConfig())
	require.Equal(t, 30, s.TPS())
	require.Equal(t, config.MaxTPS, s.SetTPS(1000))
	require.Equal(t, config.MinTPS, s.AdjustTPS(-500))
	require.Equal(t, config.MinTPS+5, s.AdjustTPS(5))
}

func TestParameters(t *testing.T) {
	s := newSession(t, blinkerConfig())
	p := s.Parameters()
	pop, ok := p.Lookup("population")
	require.True(t, ok)
	require.Equal(t, "3", pop.Value)
	rule, ok := p.Lookup("rule")
	require.True(t, ok)
	require.Equal(t, "B3/S23", rule.Value)
	running, ok := p.Lookup("running")
	require.True(t, ok)
	require.Equal(t, "false", running.Value)
}

func TestConcurrentAccess(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Seed = 3
	s := newSession(t, cfg)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			s.Tick()
		}
	}()
	go func() {
		defer wg.Done()
		var buf []life.Cell
		for i := 0; i < 50; i++ {
			var size int
			buf, size = s.Cells(buf)
			if len(buf) != size*size {
				t.Errorf("snapshot of %d cells for size %d", len(buf), size)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			s.Resize(20 + i)
		}
	}()
	wg.Wait()
}

func TestConcurrentAdjustTPS(t *testing.T) {
	s := newSession(t, blinkerConfig())
	s.SetTPS(config.MinTPS)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AdjustTPS(1)
		}()
	}
	wg.Wait()
	require.Equal(t, config.MinTPS+50, s.TPS())
}

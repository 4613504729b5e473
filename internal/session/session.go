// Package session couples a life.Engine with the playback state a front-end
// needs (running flag, speed, generation counter) and serializes every engine
// call behind one mutex so renderers and input handlers can share it.
package session

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/emjomi/life/internal/config"
	"github.com/emjomi/life/internal/core"
	"github.com/emjomi/life/pkg/life"
)

// Session is a mutex-guarded engine plus playback state.
type Session struct {
	mu         sync.Mutex
	engine     *life.Engine
	running    bool
	tps        int
	generation int
	log        *slog.Logger
}

// NewEngine builds the engine described by cfg. A pattern is centred in a
// cfg.Size board; otherwise the board starts random.
func NewEngine(cfg *config.Config) (*life.Engine, error) {
	rule, err := life.LookupRule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	b := life.NewBuilder().Rule(rule).Source(life.NewSource(cfg.Seed))
	if len(cfg.Pattern) == 0 {
		return b.RandomGrid(cfg.Size).Build(), nil
	}
	rows, err := life.ParsePattern(cfg.Pattern)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	gb, err := b.Grid(rows)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	engine := gb.Build()
	if engine.Size() != cfg.Size {
		engine.Resize(cfg.Size)
	}
	return engine, nil
}

// New creates a session from cfg.
func New(cfg *config.Config, logger *slog.Logger) (*Session, error) {
	engine, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	s := Wrap(engine, logger)
	s.running = !cfg.Paused
	s.tps = clamp(cfg.TPS, config.MinTPS, config.MaxTPS)
	s.log.Info("session created", "size", engine.Size(), "rule", engine.Rule().String(), "running", s.running, "tps", s.tps)
	return s, nil
}

// Wrap creates a running session around an existing engine.
func Wrap(engine *life.Engine, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{engine: engine, running: true, tps: 30, log: logger}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Running reports whether timer ticks advance the grid.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// ToggleRunning flips between running and paused and returns the new state.
func (s *Session) ToggleRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = !s.running
	s.log.Debug("running toggled", "running", s.running)
	return s.running
}

// Tick advances one generation if the session is running.
func (s *Session) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return false
	}
	s.evolveLocked()
	return true
}

// Step advances one generation manually. It only works while paused.
func (s *Session) Step() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.evolveLocked()
	return true
}

func (s *Session) evolveLocked() {
	s.engine.Evolve()
	s.generation++
}

// Randomize refills the grid with random cells.
func (s *Session) Randomize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Randomize()
	s.generation = 0
}

// Clear kills every cell.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Clear()
	s.generation = 0
}

// Resize changes the grid side, clamped to [0, config.MaxSize], and returns
// the size applied.
func (s *Session) Resize(size int) int {
	size = clamp(size, 0, config.MaxSize)
	s.mu.Lock()
	defer s.mu.Unlock()
	if size == s.engine.Size() {
		return size
	}
	s.log.Debug("grid resized", "from", s.engine.Size(), "to", size)
	s.engine.Resize(size)
	return size
}

// Toggle flips one cell. Editing is only allowed while paused.
func (s *Session) Toggle(row, col int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	if _, ok := s.engine.Cell(row, col); !ok {
		return false
	}
	s.engine.Toggle(row, col)
	return true
}

// CellAt maps a point inside a width × height view onto grid coordinates.
func (s *Session) CellAt(x, y, width, height int) (row, col int, ok bool) {
	s.mu.Lock()
	size := s.engine.Size()
	s.mu.Unlock()
	if size == 0 || width <= 0 || height <= 0 || x < 0 || y < 0 || x >= width || y >= height {
		return 0, 0, false
	}
	return y * size / height, x * size / width, true
}

// ToggleAt toggles the cell under a point of a width × height view.
func (s *Session) ToggleAt(x, y, width, height int) bool {
	row, col, ok := s.CellAt(x, y, width, height)
	if !ok {
		return false
	}
	return s.Toggle(row, col)
}

// SetRuleText parses text as a preset or B/S rule and applies it. An invalid
// text applies the default rule and returns the parse error.
func (s *Session) SetRuleText(text string) (life.Rule, error) {
	rule, err := life.LookupRule(text)
	if err != nil {
		s.log.Warn("rule rejected, using default", "rule", text, "err", err)
		rule = life.DefaultRule()
	}
	s.SetRule(rule)
	return rule, err
}

// SetRule replaces the active rule.
func (s *Session) SetRule(rule life.Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetRule(rule)
	s.log.Debug("rule applied", "rule", rule.String())
}

// TPS returns the playback speed in generations per second.
func (s *Session) TPS() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tps
}

// SetTPS sets the playback speed, clamped to the configured limits, and
// returns the applied value.
func (s *Session) SetTPS(tps int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tps = clamp(tps, config.MinTPS, config.MaxTPS)
	return s.tps
}

// AdjustTPS changes the speed by delta.
func (s *Session) AdjustTPS(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tps = clamp(s.tps+delta, config.MinTPS, config.MaxTPS)
	return s.tps
}

// Size returns the grid side length.
func (s *Session) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Size()
}

// Rule returns the active rule.
func (s *Session) Rule() life.Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Rule()
}

// Generation returns the number of generations since the last reset.
func (s *Session) Generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Cells copies the current generation into dst[:0] and returns it with the
// grid side length.
func (s *Session) Cells(dst []life.Cell) ([]life.Cell, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.AppendCells(dst[:0]), s.engine.Size()
}

// Cell reads one cell.
func (s *Session) Cell(row, col int) (life.Cell, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Cell(row, col)
}

// String renders the grid as text.
func (s *Session) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.String()
}

// Parameters describes the session for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("size", "Size", s.engine.Size()),
				core.TextParam("rule", "Rule", s.engine.Rule().String()),
				core.IntParam("population", "Population", s.engine.Population()),
			},
		},
		{
			Name: "Playback",
			Params: []core.Parameter{
				core.BoolParam("running", "Running", s.running),
				core.IntParam("tps", "Speed", s.tps),
				core.IntParam("generation", "Generation", s.generation),
			},
		},
	}}
}

package life

import (
	"errors"
	"math/rand/v2"
)

// ErrNotSquare is returned when an explicit grid is not size × size.
var ErrNotSquare = errors.New("life: grid is not square")

// Builder configures an Engine that does not have a grid yet. It has no Build
// method; supplying a grid turns it into a GridBuilder. Start from NewBuilder.
type Builder struct {
	rule    Rule
	hasRule bool
	src     rand.Source
}

// NewBuilder returns a builder using the default rule.
func NewBuilder() Builder {
	return Builder{}
}

// Rule sets the rule the engine will start with.
func (b Builder) Rule(rule Rule) Builder {
	b.rule, b.hasRule = rule, true
	return b
}

func (b Builder) startRule() Rule {
	if !b.hasRule {
		return DefaultRule()
	}
	return b.rule
}

// Source sets the random source used by RandomGrid and Engine.Randomize.
func (b Builder) Source(src rand.Source) Builder {
	b.src = src
	return b
}

func (b Builder) random() *rand.Rand {
	if b.src == nil {
		return rand.New(NewSource(0))
	}
	return rand.New(b.src)
}

// Grid uses rows as the initial generation. The side length is len(rows) and
// every row must have that many cells.
func (b Builder) Grid(rows [][]Cell) (GridBuilder, error) {
	size := len(rows)
	grid := make([]Cell, 0, size*size)
	for _, row := range rows {
		if len(row) != size {
			return GridBuilder{}, ErrNotSquare
		}
		grid = append(grid, row...)
	}
	return GridBuilder{size: size, grid: grid, rule: b.startRule(), hasRule: true, rng: b.random()}, nil
}

// RandomGrid starts from a size × size grid of random cells.
func (b Builder) RandomGrid(size int) GridBuilder {
	if size < 0 {
		size = 0
	}
	rng := b.random()
	grid := make([]Cell, size*size)
	fillRandom(rng, grid)
	return GridBuilder{size: size, grid: grid, rule: b.startRule(), hasRule: true, rng: rng}
}

// GridBuilder configures an Engine whose initial grid is already known. It
// is obtained from Builder.Grid or Builder.RandomGrid; the zero value builds
// an empty engine with the default rule.
type GridBuilder struct {
	size    int
	grid    []Cell
	rule    Rule
	hasRule bool
	rng     *rand.Rand
}

// Rule overrides the rule the engine will start with.
func (g GridBuilder) Rule(rule Rule) GridBuilder {
	g.rule, g.hasRule = rule, true
	return g
}

// Source overrides the random source used by Engine.Randomize. A nil source
// picks a randomly seeded one.
func (g GridBuilder) Source(src rand.Source) GridBuilder {
	if src == nil {
		src = NewSource(0)
	}
	g.rng = rand.New(src)
	return g
}

// Build returns the configured engine. The builder's grid is copied, so one
// GridBuilder can build several independent engines.
func (g GridBuilder) Build() *Engine {
	cells := make([]Cell, len(g.grid))
	copy(cells, g.grid)
	rng := g.rng
	if rng == nil {
		rng = rand.New(NewSource(0))
	}
	rule := g.rule
	if !g.hasRule {
		rule = DefaultRule()
	}
	return &Engine{
		size: g.size,
		cur:  cells,
		nxt:  make([]Cell, len(cells)),
		rule: rule,
		rng:  rng,
	}
}

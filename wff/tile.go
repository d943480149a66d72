package wff

import (
	"fmt"
	"strconv"

	"go.uber.org/atomic"
)

// A Tile is a formula as handed to the learner: a unique identifier, the formula and its cached display string.
// Apart from the Dragging flag, which belongs to the user interface, a tile is never modified once created.
type Tile struct {
	ID       string
	Display  string
	Formula  Formula
	Dragging bool
}

// ValidTile indicates whether t can be used as an operand: it must have an id, a display string and a formula.
func ValidTile(t *Tile) bool {
	return t != nil && t.ID != "" && t.Display != "" && t.Formula != nil
}

// A Factory creates tiles.
// Each tile it creates gets an id of the form "tile-n", n being incremented each time.
// A Factory can safely be used by several goroutines.
type Factory struct {
	last atomic.Uint64
}

// NewFactory returns a factory whose first tile will be "tile-1".
func NewFactory() *Factory {
	return &Factory{}
}

func (fa *Factory) nextID() string {
	return "tile-" + strconv.FormatUint(fa.last.Inc(), 10)
}

// NewTile wraps f in a new tile.
func (fa *Factory) NewTile(f Formula) (*Tile, error) {
	if err := Check(f); err != nil {
		return nil, fmt.Errorf("could not create tile: %w", err)
	}
	return &Tile{ID: fa.nextID(), Display: Display(f), Formula: f}, nil
}

// AtomicTile returns a new tile made of the atomic formula l.
func (fa *Factory) AtomicTile(l Letter) (*Tile, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("could not create tile: %w: %q", ErrInvalidLetter, string(l))
	}
	return &Tile{ID: fa.nextID(), Display: string(l), Formula: atom(l)}, nil
}

// Forge applies the connective k to the formulas of the operand tiles and returns the resulting new tile.
// Operand tiles are left untouched and can be used again.
func (fa *Factory) Forge(k Kind, operands ...*Tile) (*Tile, error) {
	subs := make([]Formula, len(operands))
	for i, t := range operands {
		if !ValidTile(t) {
			return nil, fmt.Errorf("could not forge %v: operand %d: %w", k, i, ErrInvalidTile)
		}
		subs[i] = t.Formula
	}
	f, err := Connect(k, subs...)
	if err != nil {
		return nil, fmt.Errorf("could not forge %v: %w", k, err)
	}
	return fa.NewTile(f)
}

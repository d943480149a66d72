// Package workshop holds the state of a formula factory session: the tiles of the workspace,
// and the forges whose slots receive the formulas of these tiles.
//
// A Workshop is not safe for concurrent use.
package workshop

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/crillab/formulafactory/wff"
)

var (
	// ErrUnknownForge is returned when a forge is asked for a kind that is not a connective.
	ErrUnknownForge = errors.New("unknown forge")
	// ErrSlotRange is returned when a slot index does not exist in a forge.
	ErrSlotRange = errors.New("no such slot")
	// ErrSlotOccupied is returned when a formula is put in a slot that is not empty.
	ErrSlotOccupied = errors.New("slot already holds a formula")
	// ErrForgeNotReady is returned when a forge is pressed while one of its slots is empty.
	ErrForgeNotReady = errors.New("forge slots are not all filled")
	// ErrUnknownTile is returned when no workspace tile has the given id.
	ErrUnknownTile = errors.New("unknown tile")
)

// Slot indices of binary forges.
const (
	Left  = 0
	Right = 1
)

// A Forge is a connective rule together with the formulas put in its slots.
type Forge struct {
	Config wff.ForgeConfig
	slots  []wff.Formula
}

func newForge(cfg wff.ForgeConfig) *Forge {
	return &Forge{Config: cfg, slots: make([]wff.Formula, cfg.Slots)}
}

// Slot returns the formula in slot i, or nil if the slot is empty.
func (f *Forge) Slot(i int) wff.Formula {
	if i < 0 || i >= len(f.slots) {
		return nil
	}
	return f.slots[i]
}

// Ready indicates whether all slots of f are filled, i.e whether it can be pressed.
func (f *Forge) Ready() bool {
	for _, s := range f.slots {
		if s == nil {
			return false
		}
	}
	return true
}

func (f *Forge) clear() {
	for i := range f.slots {
		f.slots[i] = nil
	}
}

// String displays the forge template, with the content of its slots, "_" standing for empty slots.
func (f *Forge) String() string {
	display := make([]string, len(f.slots))
	for i, s := range f.slots {
		if s == nil {
			display[i] = "_"
		} else {
			display[i] = wff.Display(s)
		}
	}
	if len(display) == 1 {
		return strings.NewReplacer("[DROP_SLOT]", display[0]).Replace(f.Config.Template)
	}
	return strings.NewReplacer("[DROP_SLOT_LEFT]", display[Left], "[DROP_SLOT_RIGHT]", display[Right]).Replace(f.Config.Template)
}

// A Workshop holds the workspace tiles and the forges.
type Workshop struct {
	factory *wff.Factory
	logger  *zap.Logger
	tiles   []*wff.Tile
	byID    map[string]*wff.Tile
	forges  map[wff.Kind]*Forge
}

// New returns an empty workshop creating its tiles with factory.
// If logger is nil, nothing is logged.
func New(factory *wff.Factory, logger *zap.Logger) *Workshop {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Workshop{
		factory: factory,
		logger:  logger,
		byID:    make(map[string]*wff.Tile),
		forges:  make(map[wff.Kind]*Forge),
	}
	for _, cfg := range wff.Forges() {
		w.forges[cfg.Kind] = newForge(cfg)
	}
	return w
}

func (w *Workshop) add(t *wff.Tile) {
	w.tiles = append(w.tiles, t)
	w.byID[t.ID] = t
}

// PickAtom creates an atomic tile in the workspace.
func (w *Workshop) PickAtom(l wff.Letter) (*wff.Tile, error) {
	t, err := w.factory.AtomicTile(l)
	if err != nil {
		return nil, err
	}
	w.add(t)
	w.logger.Debug("Atomic tile created", zap.String("id", t.ID), zap.String("letter", string(l)))
	return t, nil
}

// Tiles returns the workspace tiles, in creation order.
func (w *Workshop) Tiles() []*wff.Tile {
	res := make([]*wff.Tile, len(w.tiles))
	copy(res, w.tiles)
	return res
}

// Tile returns the workspace tile with the given id.
func (w *Workshop) Tile(id string) (*wff.Tile, error) {
	t, ok := w.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTile, id)
	}
	return t, nil
}

// Forge returns the forge of connective k.
func (w *Workshop) Forge(k wff.Kind) (*Forge, error) {
	f, ok := w.forges[k]
	if !ok {
		return nil, fmt.Errorf("%w %v", ErrUnknownForge, k)
	}
	return f, nil
}

// Forges returns all forges, in display order.
func (w *Workshop) Forges() []*Forge {
	res := make([]*Forge, 0, len(w.forges))
	for _, k := range wff.Connectives() {
		res = append(res, w.forges[k])
	}
	return res
}

func (w *Workshop) put(k wff.Kind, slot int, f wff.Formula) error {
	forge, err := w.Forge(k)
	if err != nil {
		return err
	}
	if slot < 0 || slot >= len(forge.slots) {
		return fmt.Errorf("%w %d in %v forge", ErrSlotRange, slot, k)
	}
	if forge.slots[slot] != nil {
		return fmt.Errorf("%w: slot %d of %v forge", ErrSlotOccupied, slot, k)
	}
	forge.slots[slot] = f
	return nil
}

// Place puts the formula of the workspace tile id in the given slot of the forge of k.
// The tile stays in the workspace.
func (w *Workshop) Place(k wff.Kind, slot int, id string) error {
	t, err := w.Tile(id)
	if err != nil {
		return err
	}
	if err := w.put(k, slot, t.Formula); err != nil {
		return err
	}
	w.logger.Debug("Tile placed", zap.String("id", id), zap.Stringer("forge", k), zap.Int("slot", slot))
	return nil
}

// Drop puts the formula carried by a drag payload in the given slot of the forge of k.
// It returns false, and leaves the workshop unchanged, if the payload cannot be decoded,
// or if the slot cannot receive it.
func (w *Workshop) Drop(k wff.Kind, slot int, payload []byte) bool {
	f, err := wff.Unmarshal(payload)
	if err != nil {
		w.logger.Debug("Ignoring invalid drop payload", zap.Error(err))
		return false
	}
	if err := w.put(k, slot, f); err != nil {
		w.logger.Debug("Ignoring drop", zap.Error(err))
		return false
	}
	return true
}

// Ready indicates whether the forge of k can be pressed.
func (w *Workshop) Ready(k wff.Kind) bool {
	forge, err := w.Forge(k)
	return err == nil && forge.Ready()
}

// Press builds a new tile from the slots of the forge of k and adds it to the workspace.
// The forge is then emptied.
func (w *Workshop) Press(k wff.Kind) (*wff.Tile, error) {
	forge, err := w.Forge(k)
	if err != nil {
		return nil, err
	}
	if !forge.Ready() {
		return nil, fmt.Errorf("could not press %v forge: %w", k, ErrForgeNotReady)
	}
	f, err := wff.Connect(k, forge.slots...)
	if err != nil {
		return nil, err
	}
	t, err := w.factory.NewTile(f)
	if err != nil {
		return nil, err
	}
	forge.clear()
	w.add(t)
	w.logger.Debug("Formula forged", zap.String("id", t.ID), zap.String("formula", t.Display))
	return t, nil
}

// Clear empties the slots of the forge of k.
func (w *Workshop) Clear(k wff.Kind) error {
	forge, err := w.Forge(k)
	if err != nil {
		return err
	}
	forge.clear()
	return nil
}

// DragStart marks the tile id as being dragged and returns the payload carrying its formula.
func (w *Workshop) DragStart(id string) ([]byte, error) {
	t, err := w.Tile(id)
	if err != nil {
		return nil, err
	}
	payload, err := wff.Marshal(t.Formula)
	if err != nil {
		return nil, err
	}
	t.Dragging = true
	return payload, nil
}

// DragEnd marks the tile id as not being dragged anymore.
func (w *Workshop) DragEnd(id string) error {
	t, err := w.Tile(id)
	if err != nil {
		return err
	}
	t.Dragging = false
	return nil
}

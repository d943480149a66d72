package wff

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicTile(t *testing.T) {
	fa := NewFactory()
	for i, l := range Alphabet() {
		tile, err := fa.AtomicTile(l)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("tile-%d", i+1), tile.ID)
		assert.Equal(t, string(l), tile.Display)
		assert.True(t, Equal(Atom(l), tile.Formula))
		assert.False(t, tile.Dragging)
		assert.True(t, ValidTile(tile))
	}
	_, err := fa.AtomicTile("Z")
	assert.ErrorIs(t, err, ErrInvalidLetter)
	next, err := fa.AtomicTile("A")
	require.NoError(t, err)
	assert.Equal(t, "tile-11", next.ID, "rejected letters must not consume ids")
}

func TestFactoriesAreIndependent(t *testing.T) {
	t1, err := NewFactory().AtomicTile("P")
	require.NoError(t, err)
	t2, err := NewFactory().AtomicTile("Q")
	require.NoError(t, err)
	assert.Equal(t, "tile-1", t1.ID)
	assert.Equal(t, "tile-1", t2.ID)
}

func TestFactoryConcurrentIDs(t *testing.T) {
	const nbWorkers, nbTiles = 8, 250
	fa := NewFactory()
	ids := make(chan string, nbWorkers*nbTiles)
	var wg sync.WaitGroup
	for i := 0; i < nbWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < nbTiles; j++ {
				tile, err := fa.AtomicTile("A")
				if err != nil {
					panic(err)
				}
				ids <- tile.ID
			}
		}()
	}
	wg.Wait()
	close(ids)
	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, nbWorkers*nbTiles)
}

func TestForgeConjunction(t *testing.T) {
	fa := NewFactory()
	a, err := fa.AtomicTile("A")
	require.NoError(t, err)
	b, err := fa.AtomicTile("B")
	require.NoError(t, err)
	ab, err := fa.Forge(Conjunction, a, b)
	require.NoError(t, err)
	assert.Equal(t, "(A ∧ B)", ab.Display)
	assert.Equal(t, Conjunction, ab.Formula.Kind())
	assert.True(t, Equal(And(Atom("A"), Atom("B")), ab.Formula))
	assert.Equal(t, "tile-3", ab.ID)
	// Operands are still usable.
	assert.True(t, ValidTile(a))
	assert.Equal(t, "A", a.Display)
	nab, err := fa.Forge(Negation, ab)
	require.NoError(t, err)
	assert.Equal(t, "¬(A ∧ B)", nab.Display)
	aab, err := fa.Forge(Biconditional, a, ab)
	require.NoError(t, err)
	assert.Equal(t, "(A ↔ (A ∧ B))", aab.Display)
}

func TestForgeErrors(t *testing.T) {
	fa := NewFactory()
	a, err := fa.AtomicTile("A")
	require.NoError(t, err)
	_, err = fa.Forge(Conjunction, a)
	assert.ErrorIs(t, err, ErrArity)
	_, err = fa.Forge(Negation, a, a)
	assert.ErrorIs(t, err, ErrArity)
	_, err = fa.Forge(Disjunction, a, nil)
	assert.ErrorIs(t, err, ErrInvalidTile)
	_, err = fa.Forge(Disjunction, a, &Tile{ID: "x", Display: "B"})
	assert.ErrorIs(t, err, ErrInvalidTile)
	_, err = fa.Forge(Atomic, a)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNewTile(t *testing.T) {
	fa := NewFactory()
	tile, err := fa.NewTile(Implies(Atom("P"), Atom("Q")))
	require.NoError(t, err)
	assert.Equal(t, "(P → Q)", tile.Display)
	_, err = fa.NewTile(Not(nil))
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = fa.NewTile(Atom("p"))
	assert.ErrorIs(t, err, ErrInvalidLetter)
}

func TestValidTile(t *testing.T) {
	assert.False(t, ValidTile(nil))
	assert.False(t, ValidTile(&Tile{}))
	assert.False(t, ValidTile(&Tile{ID: "tile-1", Display: "A"}))
	assert.False(t, ValidTile(&Tile{ID: "tile-1", Formula: Atom("A")}))
	assert.False(t, ValidTile(&Tile{Display: "A", Formula: Atom("A")}))
	assert.True(t, ValidTile(&Tile{ID: "tile-1", Display: "A", Formula: Atom("A")}))
}

func TestForges(t *testing.T) {
	forges := Forges()
	require.Len(t, forges, 5)
	for i, k := range Connectives() {
		cfg, ok := ForgeFor(k)
		require.True(t, ok)
		assert.Equal(t, cfg, forges[i])
		assert.Equal(t, k, cfg.Kind)
		assert.Equal(t, k.Arity(), cfg.Slots)
		assert.Equal(t, k.Symbol(), cfg.Symbol)
		assert.Contains(t, cfg.RuleText, cfg.Symbol)
	}
	neg, _ := ForgeFor(Negation)
	assert.Equal(t, 1, neg.Slots)
	assert.Equal(t, "If P is a sentence, then ¬P is a sentence.", neg.RuleText)
	_, ok := ForgeFor(Atomic)
	assert.False(t, ok)
}

func ExampleFactory_Forge() {
	fa := NewFactory()
	a, _ := fa.AtomicTile("A")
	b, _ := fa.AtomicTile("B")
	ab, err := fa.Forge(Conjunction, a, b)
	if err != nil {
		fmt.Printf("could not forge: %v", err)
		return
	}
	fmt.Println(ab.ID, ab.Display)
	// Output: tile-3 (A ∧ B)
}

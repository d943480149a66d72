package wff

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		f        Formula
		expected string
	}{
		{Atom("A"), "A"},
		{Not(Atom("A")), "¬A"},
		{And(Atom("A"), Atom("B")), "(A ∧ B)"},
		{Not(And(Atom("A"), Atom("B"))), "¬(A ∧ B)"},
		{Iff(Not(Atom("A")), Or(Atom("B"), Atom("C"))), "(¬A ↔ (B ∨ C))"},
		{Implies(Atom("P"), Not(Not(Atom("Q")))), "(P → ¬¬Q)"},
		{Not(Implies(And(Atom("R"), Atom("S")), Atom("T"))), "¬((R ∧ S) → T)"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, Display(test.f))
		assert.Equal(t, test.expected, test.f.String())
	}
}

func TestDisplayMalformed(t *testing.T) {
	assert.Equal(t, Sentinel, Display(nil))
	assert.Equal(t, "¬"+Sentinel, Display(Not(nil)))
	assert.Equal(t, Sentinel, Display(binary{kind: Negation, left: Atom("A"), right: Atom("B")}))
	assert.Equal(t, "(A ∧ "+Sentinel+")", Display(And(Atom("A"), nil)))
}

func TestDisplayDeterministic(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))
	for i := 0; i < 100; i++ {
		f := g.Random(4)
		assert.Equal(t, Display(f), Display(f))
	}
}

func TestEqual(t *testing.T) {
	a, b := Atom("A"), Atom("B")
	tests := []struct {
		f1, f2   Formula
		expected bool
	}{
		{a, Atom("A"), true},
		{a, b, false},
		{Atom("a"), a, false},
		{Not(a), Not(Atom("A")), true},
		{Not(a), a, false},
		{Not(a), Not(b), false},
		{And(a, b), And(Atom("A"), Atom("B")), true},
		{And(a, b), And(b, a), false},
		{Or(a, b), Or(b, a), false},
		{And(a, b), Or(a, b), false},
		{Implies(a, b), Iff(a, b), false},
		{Not(And(a, b)), Not(And(a, b)), true},
		{Iff(Not(a), Or(b, Atom("C"))), Iff(Not(a), Or(b, Atom("C"))), true},
		{Iff(Not(a), Or(b, Atom("C"))), Iff(Not(a), Or(b, Atom("D"))), false},
		{nil, nil, false},
		{a, nil, false},
		{nil, a, false},
		{Not(nil), Not(nil), false},
		{binary{kind: Atomic, left: a, right: b}, binary{kind: Atomic, left: a, right: b}, false},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, Equal(test.f1, test.f2), "Equal(%v, %v)", Display(test.f1), Display(test.f2))
		assert.Equal(t, test.expected, Equal(test.f2, test.f1), "Equal(%v, %v)", Display(test.f2), Display(test.f1))
	}
}

func TestEqualGenerated(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(42)))
	prev := g.Random(3)
	for i := 0; i < 200; i++ {
		f := g.Random(3)
		assert.True(t, Equal(f, f), "%v is not equal to itself", f)
		assert.Equal(t, Equal(f, prev), Equal(prev, f))
		// Equal formulas have the same display string, and conversely.
		assert.Equal(t, Equal(f, prev), Display(f) == Display(prev), "%v vs %v", f, prev)
		prev = f
	}
}

func TestConnect(t *testing.T) {
	f, err := Connect(Conjunction, Atom("A"), Atom("B"))
	require.NoError(t, err)
	assert.True(t, Equal(And(Atom("A"), Atom("B")), f))
	f, err = Connect(Negation, Atom("A"))
	require.NoError(t, err)
	assert.True(t, Equal(Not(Atom("A")), f))

	_, err = Connect(Negation, Atom("A"), Atom("B"))
	assert.ErrorIs(t, err, ErrArity)
	_, err = Connect(Biconditional, Atom("A"))
	assert.ErrorIs(t, err, ErrArity)
	_, err = Connect(Atomic, Atom("A"))
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = Connect(Kind(42))
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = Connect(Disjunction, Atom("A"), nil)
	assert.ErrorIs(t, err, ErrMalformed)

	f, err = Connect(Negation, negations(MaxNesting-1))
	require.NoError(t, err)
	assert.Equal(t, MaxNesting, Depth(f))
	_, err = Connect(Negation, negations(MaxNesting))
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = Connect(Conditional, Atom("B"), negations(MaxNesting))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestKind(t *testing.T) {
	for _, k := range append([]Kind{Atomic}, Connectives()...) {
		k2, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, k2)
	}
	_, err := ParseKind("xor")
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, "Kind(-1)", Kind(-1).String())
	assert.Equal(t, -1, Kind(12).Arity())
	assert.False(t, Negation.IsBinary())
	assert.True(t, Conditional.IsBinary())
}

func TestAlphabet(t *testing.T) {
	letters := Alphabet()
	require.Len(t, letters, 10)
	for _, l := range letters {
		assert.True(t, l.Valid())
	}
	letters[0] = "Z"
	assert.Equal(t, Letter("A"), Alphabet()[0], "Alphabet must return a copy")
	for _, l := range []Letter{"a", "F", "", "AB", "¬"} {
		assert.False(t, l.Valid(), "%q should not be valid", l)
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(Iff(Not(Atom("A")), Or(Atom("B"), Atom("C")))))
	assert.ErrorIs(t, Check(nil), ErrMalformed)
	assert.ErrorIs(t, Check(Not(nil)), ErrMalformed)
	assert.ErrorIs(t, Check(And(Atom("A"), Atom("x"))), ErrInvalidLetter)
	assert.ErrorIs(t, Check(binary{kind: Negation, left: Atom("A"), right: Atom("B")}), ErrMalformed)
	assert.NoError(t, Check(negations(MaxNesting)))
	assert.ErrorIs(t, Check(negations(MaxNesting+1)), ErrMalformed)
	assert.ErrorIs(t, Check(And(Atom("A"), negations(MaxNesting))), ErrMalformed)
}

// negations returns A negated n times.
func negations(n int) Formula {
	f := Atom("A")
	for i := 0; i < n; i++ {
		f = Not(f)
	}
	return f
}

func TestMetrics(t *testing.T) {
	f := Iff(Not(Atom("A")), Or(Atom("B"), Atom("A")))
	assert.Equal(t, 2, Depth(f))
	assert.Equal(t, 6, Size(f))
	assert.Equal(t, []Letter{"A", "B"}, Letters(f))
	assert.Equal(t, 0, Depth(Atom("C")))
	assert.Equal(t, 3, Depth(Not(Not(Not(Atom("C"))))))
	assert.Equal(t, 0, Size(nil))
	assert.Empty(t, Letters(nil))
}

func TestEval(t *testing.T) {
	a, b := Atom("A"), Atom("B")
	tests := []struct {
		f        Formula
		model    Model
		expected bool
	}{
		{Not(a), Model{"A": true}, false},
		{And(a, b), Model{"A": true, "B": false}, false},
		{Or(a, b), Model{"A": true, "B": false}, true},
		{Implies(a, b), Model{"A": true, "B": false}, false},
		{Implies(a, b), Model{"A": false, "B": false}, true},
		{Iff(a, b), Model{"A": false, "B": false}, true},
		{Iff(a, b), Model{"A": true, "B": false}, false},
	}
	for _, test := range tests {
		res, err := Eval(test.f, test.model)
		require.NoError(t, err)
		assert.Equal(t, test.expected, res, "%v under %v", test.f, test.model)
	}
	_, err := Eval(And(a, b), Model{"A": true})
	assert.Error(t, err)
	_, err = Eval(nil, Model{})
	assert.True(t, errors.Is(err, ErrMalformed))
}

func ExampleDisplay() {
	f := Iff(Not(Atom("A")), Or(Atom("B"), Atom("C")))
	fmt.Println(Display(f))
	fmt.Println(Display(Not(f)))
	// Output:
	// (¬A ↔ (B ∨ C))
	// ¬(¬A ↔ (B ∨ C))
}

func ExampleEqual() {
	f1 := And(Atom("A"), Atom("B"))
	f2 := And(Atom("B"), Atom("A"))
	fmt.Println(Equal(f1, f1), Equal(f1, f2))
	// Output: true false
}

package wff

import (
	"fmt"
	"sort"
	"strconv"
)

// Sentinel is the display string of a structure that is not a well-formed formula.
const Sentinel = "[?]"

// MaxNesting is the maximum depth of a formula.
// Deeper structures are malformed: they cannot be wrapped in tiles, forged, generated or decoded,
// so that every tile can be encoded and decoded back.
const MaxNesting = 64

// A Letter is an atomic sentence letter.
type Letter string

var alphabet = [...]Letter{"A", "B", "C", "D", "E", "P", "Q", "R", "S", "T"}

// Alphabet returns the sentence letters atomic tiles can be made of, in display order.
func Alphabet() []Letter {
	res := make([]Letter, len(alphabet))
	copy(res, alphabet[:])
	return res
}

// Valid indicates whether l belongs to the Alphabet.
func (l Letter) Valid() bool {
	for _, l2 := range alphabet {
		if l == l2 {
			return true
		}
	}
	return false
}

// A Kind is the tag of a formula: atomic, or the connective at its root.
type Kind int

const (
	Atomic Kind = iota
	Negation
	Conjunction
	Disjunction
	Conditional
	Biconditional
)

var kindNames = [...]string{
	Atomic:        "atomic",
	Negation:      "negation",
	Conjunction:   "conjunction",
	Disjunction:   "disjunction",
	Conditional:   "conditional",
	Biconditional: "biconditional",
}

var connectives = [...]Kind{Negation, Conjunction, Disjunction, Conditional, Biconditional}

// Connectives returns the five connectives, in the order their forges are displayed.
func Connectives() []Kind {
	res := make([]Kind, len(connectives))
	copy(res, connectives[:])
	return res
}

// String returns the name of the kind, as used in the interchange format.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrMalformed, name)
}

// Arity is the number of operands of the kind: 0 for atomic formulas, 1 for negations, 2 for binary connectives.
// It returns -1 for unknown kinds.
func (k Kind) Arity() int {
	switch k {
	case Atomic:
		return 0
	case Negation:
		return 1
	case Conjunction, Disjunction, Conditional, Biconditional:
		return 2
	default:
		return -1
	}
}

// IsBinary indicates whether k is one of the four binary connectives.
func (k Kind) IsBinary() bool {
	return k.Arity() == 2
}

// Symbol is the operator symbol of the connective, or "" for atomic and unknown kinds.
func (k Kind) Symbol() string {
	switch k {
	case Negation:
		return "¬"
	case Conjunction:
		return "∧"
	case Disjunction:
		return "∨"
	case Conditional:
		return "→"
	case Biconditional:
		return "↔"
	default:
		return ""
	}
}

// A Formula is a well-formed formula: an atomic letter, a negation or a binary connective.
// The set of implementations is closed: formulas are only built by the functions of this package.
type Formula interface {
	Kind() Kind
	String() string
	eval(model Model) bool
}

// A Model associates sentence letters with a truth value.
type Model map[Letter]bool

// Atom returns the atomic formula made of the letter l.
func Atom(l Letter) Formula {
	return atom(l)
}

type atom Letter

func (a atom) Kind() Kind            { return Atomic }
func (a atom) String() string        { return string(a) }
func (a atom) eval(model Model) bool { return model[Letter(a)] }

// Not returns the negation of f.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) Kind() Kind { return Negation }

func (n not) String() string {
	return Negation.Symbol() + Display(n[0])
}

func (n not) eval(model Model) bool {
	return !n[0].eval(model)
}

// And returns the conjunction of left and right.
func And(left, right Formula) Formula {
	return binary{kind: Conjunction, left: left, right: right}
}

// Or returns the disjunction of left and right.
func Or(left, right Formula) Formula {
	return binary{kind: Disjunction, left: left, right: right}
}

// Implies returns the conditional whose antecedent is left and whose consequent is right.
func Implies(left, right Formula) Formula {
	return binary{kind: Conditional, left: left, right: right}
}

// Iff returns the biconditional of left and right.
func Iff(left, right Formula) Formula {
	return binary{kind: Biconditional, left: left, right: right}
}

type binary struct {
	kind        Kind
	left, right Formula
}

func (b binary) Kind() Kind { return b.kind }

func (b binary) String() string {
	if !b.kind.IsBinary() {
		return Sentinel
	}
	return "(" + Display(b.left) + " " + b.kind.Symbol() + " " + Display(b.right) + ")"
}

func (b binary) eval(model Model) bool {
	l, r := b.left.eval(model), b.right.eval(model)
	switch b.kind {
	case Conjunction:
		return l && r
	case Disjunction:
		return l || r
	case Conditional:
		return !l || r
	case Biconditional:
		return l == r
	default:
		panic("invalid binary connective")
	}
}

// Connect applies the connective k to the given operands.
// The number of operands must match the arity of k, and none of them may be nil.
// The resulting formula may not be deeper than MaxNesting.
func Connect(k Kind, operands ...Formula) (Formula, error) {
	if k == Atomic || k.Arity() < 0 {
		return nil, fmt.Errorf("%w: %v is not a connective", ErrMalformed, k)
	}
	if len(operands) != k.Arity() {
		return nil, fmt.Errorf("%w: %v expects %d operand(s), got %d", ErrArity, k, k.Arity(), len(operands))
	}
	for i, op := range operands {
		if op == nil {
			return nil, fmt.Errorf("%w: operand %d of %v is missing", ErrMalformed, i, k)
		}
		if Depth(op) >= MaxNesting {
			return nil, fmt.Errorf("%w: operand %d of %v: nesting deeper than %d", ErrMalformed, i, k, MaxNesting)
		}
	}
	if k == Negation {
		return not{operands[0]}, nil
	}
	return binary{kind: k, left: operands[0], right: operands[1]}, nil
}

// Operands returns the direct subformulas of f, left to right.
// It returns nil for atomic and malformed formulas.
func Operands(f Formula) []Formula {
	switch f := f.(type) {
	case not:
		return []Formula{f[0]}
	case binary:
		return []Formula{f.left, f.right}
	default:
		return nil
	}
}

// Display returns the canonical display string of f.
// Binary formulas are enclosed in parentheses, negations are not:
// the negation of (A ∧ B) is displayed as ¬(A ∧ B).
// A nil or malformed structure is displayed as Sentinel.
func Display(f Formula) string {
	if f == nil {
		return Sentinel
	}
	return f.String()
}

// Equal indicates whether a and b are the same formula, i.e whether they have exactly the same shape.
// Operands are never commuted: (A ∧ B) and (B ∧ A) are not equal.
// A nil or malformed structure is never equal to anything, not even to itself:
// Equal(nil, nil) and Equal(Not(nil), Not(nil)) are false.
func Equal(a, b Formula) bool {
	switch a := a.(type) {
	case atom:
		b, ok := b.(atom)
		return ok && a == b
	case not:
		b, ok := b.(not)
		return ok && Equal(a[0], b[0])
	case binary:
		b, ok := b.(binary)
		return ok && a.kind.IsBinary() && a.kind == b.kind && Equal(a.left, b.left) && Equal(a.right, b.right)
	default:
		return false
	}
}

// Check returns nil if f is a well-formed formula made of letters of the Alphabet,
// whose depth is at most MaxNesting.
func Check(f Formula) error {
	return check(f, 0)
}

func check(f Formula, depth int) error {
	if depth > MaxNesting {
		return fmt.Errorf("%w: nesting deeper than %d", ErrMalformed, MaxNesting)
	}
	switch f := f.(type) {
	case atom:
		if !Letter(f).Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidLetter, string(f))
		}
		return nil
	case not:
		return check(f[0], depth+1)
	case binary:
		if !f.kind.IsBinary() {
			return fmt.Errorf("%w: %v is not a binary connective", ErrMalformed, f.kind)
		}
		if err := check(f.left, depth+1); err != nil {
			return err
		}
		return check(f.right, depth+1)
	case nil:
		return fmt.Errorf("%w: missing subformula", ErrMalformed)
	default:
		return fmt.Errorf("%w: unexpected type %T", ErrMalformed, f)
	}
}

// Depth is the depth of f, the root being at depth 0. An atomic formula thus has depth 0.
func Depth(f Formula) int {
	max := 0
	for _, op := range Operands(f) {
		if d := Depth(op) + 1; d > max {
			max = d
		}
	}
	return max
}

// Size is the number of nodes in f.
func Size(f Formula) int {
	if f == nil {
		return 0
	}
	res := 1
	for _, op := range Operands(f) {
		res += Size(op)
	}
	return res
}

// Letters returns the distinct letters appearing in f, sorted.
func Letters(f Formula) []Letter {
	seen := make(map[Letter]struct{})
	collectLetters(f, seen)
	res := make([]Letter, 0, len(seen))
	for l := range seen {
		res = append(res, l)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func collectLetters(f Formula, seen map[Letter]struct{}) {
	if a, ok := f.(atom); ok {
		seen[Letter(a)] = struct{}{}
		return
	}
	for _, op := range Operands(f) {
		collectLetters(op, seen)
	}
}

// Eval returns the truth value of f under model.
// Every letter of f must be bound in model.
func Eval(f Formula, model Model) (bool, error) {
	if err := Check(f); err != nil {
		return false, err
	}
	for _, l := range Letters(f) {
		if _, ok := model[l]; !ok {
			return false, fmt.Errorf("model lacks binding for letter %s", l)
		}
	}
	return f.eval(model), nil
}

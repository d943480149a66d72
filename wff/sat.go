package wff

import (
	"fmt"

	"github.com/crillab/gophersat/solver"
)

// A Class tells whether a formula is true under all, some or no models.
type Class int

const (
	Contingent Class = iota
	Tautology
	Contradiction
)

func (c Class) String() string {
	switch c {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	case Contingent:
		return "contingent"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Satisfiable returns a model of f, binding each of its letters, or nil if f has no model.
func Satisfiable(f Formula) (Model, error) {
	if err := Check(f); err != nil {
		return nil, err
	}
	return asCnf(f).solve(), nil
}

// Classify tells whether f is a tautology, a contradiction or neither.
// The returned models are a model of f and a model of its negation, when they exist:
// a contingent formula comes with both, a tautology with only the first one, a contradiction with only the second one.
func Classify(f Formula) (c Class, sat, unsat Model, err error) {
	if sat, err = Satisfiable(f); err != nil {
		return 0, nil, nil, err
	}
	unsat = asCnf(not{f}).solve()
	switch {
	case sat == nil:
		return Contradiction, nil, unsat, nil
	case unsat == nil:
		return Tautology, sat, nil, nil
	default:
		return Contingent, sat, unsat, nil
	}
}

// A literal in a formula in negation normal form.
type lit struct {
	l      Letter
	signed bool
}

// Conjunctions and disjunctions of formulas in negation normal form.
type (
	conj []interface{}
	disj []interface{}
)

// nnf returns the negation normal form of f, or of its negation if signed is true.
// Conditionals and biconditionals are expressed with conjunctions and disjunctions,
// nested conjunctions (resp. disjunctions) are flattened.
func nnf(f Formula, signed bool) interface{} {
	switch f := f.(type) {
	case atom:
		return lit{l: Letter(f), signed: signed}
	case not:
		return nnf(f[0], !signed)
	case binary:
		pos := func(g Formula) interface{} { return nnf(g, false) }
		neg := func(g Formula) interface{} { return nnf(g, true) }
		switch {
		case f.kind == Conjunction && !signed:
			return mkConj(pos(f.left), pos(f.right))
		case f.kind == Conjunction && signed:
			return mkDisj(neg(f.left), neg(f.right))
		case f.kind == Disjunction && !signed:
			return mkDisj(pos(f.left), pos(f.right))
		case f.kind == Disjunction && signed:
			return mkConj(neg(f.left), neg(f.right))
		case f.kind == Conditional && !signed:
			return mkDisj(neg(f.left), pos(f.right))
		case f.kind == Conditional && signed:
			return mkConj(pos(f.left), neg(f.right))
		case f.kind == Biconditional && !signed:
			return mkConj(mkDisj(neg(f.left), pos(f.right)), mkDisj(pos(f.left), neg(f.right)))
		case f.kind == Biconditional && signed:
			return mkConj(mkDisj(pos(f.left), pos(f.right)), mkDisj(neg(f.left), neg(f.right)))
		}
	}
	panic("invalid formula type")
}

func mkConj(subs ...interface{}) interface{} {
	var res conj
	for _, s := range subs {
		if c, ok := s.(conj); ok { // Simplify: "and"s in the "and" get to the higher level
			res = append(res, c...)
		} else {
			res = append(res, s)
		}
	}
	return res
}

func mkDisj(subs ...interface{}) interface{} {
	var res disj
	for _, s := range subs {
		if d, ok := s.(disj); ok {
			res = append(res, d...)
		} else {
			res = append(res, s)
		}
	}
	return res
}

// vars associates letters with DIMACS indices.
// Indices of dummy variables, introduced by the translation, are not associated with any letter.
type vars struct {
	nb      int
	letters map[Letter]int
}

func (vars *vars) litValue(l lit) int {
	val, ok := vars.letters[l.l]
	if !ok {
		vars.nb++
		val = vars.nb
		vars.letters[l.l] = val
	}
	if l.signed {
		return -val
	}
	return val
}

func (vars *vars) dummy() int {
	vars.nb++
	return vars.nb
}

// A cnf is a conjunction of clauses, each clause being a disjunction of DIMACS literals.
type cnf struct {
	vars    vars
	clauses [][]int
}

func asCnf(f Formula) *cnf {
	vars := vars{letters: make(map[Letter]int)}
	clauses := cnfRec(nnf(f, false), &vars)
	return &cnf{vars: vars, clauses: clauses}
}

// cnfRec translates the NNF formula f into a set of clauses.
// When a disjunction contains a conjunction, a dummy variable d is introduced for the conjunction:
// each clause of the conjunction is weakened with ¬d, and d is put in the disjunction.
func cnfRec(f interface{}, vars *vars) [][]int {
	switch f := f.(type) {
	case lit:
		return [][]int{{vars.litValue(f)}}
	case conj:
		var res [][]int
		for _, sub := range f {
			res = append(res, cnfRec(sub, vars)...)
		}
		return res
	case disj:
		var res [][]int
		var lits []int
		for _, sub := range f {
			switch sub := sub.(type) {
			case lit:
				lits = append(lits, vars.litValue(sub))
			case conj:
				d := vars.dummy()
				lits = append(lits, d)
				for _, clause := range cnfRec(sub, vars) {
					res = append(res, append(clause, -d))
				}
			default:
				panic("unexpected disjunction in disjunction")
			}
		}
		return append(res, lits)
	default:
		panic("invalid NNF formula")
	}
}

// solve gives the clauses to gophersat.
// If they are satisfiable, it returns a model binding each letter; else, it returns nil.
func (cnf *cnf) solve() Model {
	pb := solver.ParseSlice(cnf.clauses)
	s := solver.New(pb)
	if s.Solve() != solver.Sat {
		return nil
	}
	m := s.Model()
	model := make(Model, len(cnf.vars.letters))
	for l, idx := range cnf.vars.letters {
		if idx <= len(m) {
			model[l] = m[idx-1]
		}
	}
	return model
}

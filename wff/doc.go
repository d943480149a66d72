// Package wff models the well-formed formulas of propositional logic as they are
// built in the formula factory exercise.
//
// A formula is either an atomic sentence letter, the negation of a formula, or
// one of the four binary connectives applied to a left and a right formula.
// Formulas are immutable trees: they are only ever built bottom-up, by
// composition, so they cannot contain cycles.
//
// For example, the formula
//
// (¬A ↔ (B ∨ C))
//
// is defined with the following code:
//
// f := Iff(Not(Atom("A")), Or(Atom("B"), Atom("C")))
//
// Formulas are handed to learners wrapped in tiles. A Factory creates tiles, either
// from a sentence letter or by forging existing tiles together with a connective:
//
// fa := NewFactory()
// a, _ := fa.AtomicTile("A")
// b, _ := fa.AtomicTile("B")
// ab, _ := fa.Forge(Conjunction, a, b) // ab.Display == "(A ∧ B)"
//
// Two formulas are compared with Equal, which checks the shape of both trees and
// nothing else: (A ∧ B) and (B ∧ A) are different formulas, even though they are
// logically equivalent.
//
// A Generator builds random formulas, used as targets the learner must rebuild.
// Its source of randomness is provided by the caller, so that a seeded generator
// always yields the same sequence of formulas.
package wff

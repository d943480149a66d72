package wff

import "errors"

var (
	// ErrMalformed is returned when a structure does not match any known connective and arity.
	ErrMalformed = errors.New("malformed formula")
	// ErrInvalidLetter is returned when a sentence letter is not part of the Alphabet.
	ErrInvalidLetter = errors.New("invalid atomic letter")
	// ErrArity is returned when a connective is given the wrong number of operands.
	ErrArity = errors.New("wrong number of operands")
	// ErrInvalidTile is returned when an operand tile is nil or incomplete.
	ErrInvalidTile = errors.New("invalid formula tile")
)

// Package challenge poses target formulas the learner has to rebuild, and checks their answers.
package challenge

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crillab/formulafactory/wff"
)

// DefaultDepth is the maximum depth of generated targets.
const DefaultDepth = 2

// Feedback messages.
const (
	CorrectMessage   = "✅ Correct! Well done."
	IncorrectMessage = "❌ Not quite. Try again!"
)

// ErrNoTarget is returned when an answer is submitted before any target was generated.
var ErrNoTarget = errors.New("no target formula yet")

// A Round is one target formula and the answers submitted for it.
type Round struct {
	ID       string
	Target   wff.Formula
	Answer   wff.Formula // Last submitted answer, nil if none
	Attempts int
	Solved   bool
}

// Feedback is the result of an answer.
type Feedback struct {
	Correct  bool
	Message  string
	Attempts int // Number of answers submitted for the current target, this one included
}

// A Session generates targets and checks answers.
// It is not safe for concurrent use.
type Session struct {
	gen     *wff.Generator
	depth   int
	logger  *zap.Logger
	current *Round
	rounds  []*Round
}

// New returns a session whose targets are generated by gen, with the given maximum depth.
// If logger is nil, nothing is logged.
func New(gen *wff.Generator, depth int, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{gen: gen, depth: depth, logger: logger}
}

// NewTarget starts a new round with a new random target. The answer slot of the new round is empty.
func (s *Session) NewTarget() *Round {
	r := &Round{ID: uuid.NewString(), Target: s.gen.Random(s.depth)}
	s.current = r
	s.rounds = append(s.rounds, r)
	s.logger.Debug("New target", zap.String("round", r.ID), zap.String("target", wff.Display(r.Target)))
	return r
}

// Current returns the current round, or nil if no target was generated yet.
func (s *Session) Current() *Round {
	return s.current
}

// Rounds returns all the rounds of the session, in order.
func (s *Session) Rounds() []*Round {
	res := make([]*Round, len(s.rounds))
	copy(res, s.rounds)
	return res
}

// Submit puts answer in the answer slot and compares it with the current target.
// The answer is correct only if it has exactly the shape of the target: (A ∧ B) is not a correct answer for (B ∧ A).
func (s *Session) Submit(answer wff.Formula) (Feedback, error) {
	r := s.current
	if r == nil {
		return Feedback{}, ErrNoTarget
	}
	r.Answer = answer
	r.Attempts++
	fb := Feedback{Correct: wff.Equal(answer, r.Target), Attempts: r.Attempts}
	if fb.Correct {
		r.Solved = true
		fb.Message = CorrectMessage
	} else {
		fb.Message = IncorrectMessage
	}
	s.logger.Debug("Answer submitted",
		zap.String("round", r.ID),
		zap.String("answer", wff.Display(answer)),
		zap.Bool("correct", fb.Correct),
		zap.Int("attempts", r.Attempts))
	return fb, nil
}

// DropAnswer empties the answer slot, then submits the formula carried by a drag payload.
// ok is false if there is no target yet, or if the payload could not be decoded: the answer slot then stays empty.
func (s *Session) DropAnswer(payload []byte) (fb Feedback, ok bool) {
	if s.current == nil {
		return Feedback{}, false
	}
	s.current.Answer = nil
	answer, err := wff.Unmarshal(payload)
	if err != nil {
		s.logger.Debug("Ignoring invalid answer payload", zap.Error(err))
		return Feedback{}, false
	}
	fb, err = s.Submit(answer)
	return fb, err == nil
}

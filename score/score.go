// Package score defines the one-byte outcome stored for each position and
// the sentinel values reserved inside its range.
package score

import (
	"errors"
	"fmt"
)

type Score int8

// Sentinels. Genuine evaluations never take these values: they live in
// [-MaxEvaluation, -1] and [1, MaxEvaluation].
const (
	Tie         Score = 0
	WhiteWin    Score = -126
	BlackWin    Score = 126
	None        Score = -127
	Nonexistent Score = 127
	Illegal     Score = -128
)

// MaxEvaluation bounds the magnitude of a genuine evaluation.
const MaxEvaluation = int(BlackWin) - 1

var (
	ErrReservedScore = errors.New("score value is reserved")
	ErrScoreRange    = errors.New("score out of range")
)

// New wraps a genuine evaluation. Values that collide with a sentinel or
// do not fit between the win sentinels are rejected.
func New(v int) (Score, error) {
	if v < -MaxEvaluation || v > MaxEvaluation {
		return 0, fmt.Errorf("%w: %d", ErrScoreRange, v)
	}
	s := Score(v)
	if s.IsReserved() {
		return 0, fmt.Errorf("%w: %d", ErrReservedScore, v)
	}
	return s, nil
}

// IsReserved reports whether s is one of the six sentinels.
func (s Score) IsReserved() bool {
	switch s {
	case Tie, WhiteWin, BlackWin, None, Nonexistent, Illegal:
		return true
	}
	return false
}

func (s Score) String() string {
	switch s {
	case Tie:
		return "tie"
	case WhiteWin:
		return "white-win"
	case BlackWin:
		return "black-win"
	case None:
		return "none"
	case Nonexistent:
		return "nonexistent"
	case Illegal:
		return "illegal"
	}
	return fmt.Sprintf("%+d", int(s))
}

// Package counts sizes the state space of every stage of the game: how
// many piece patterns and board positions exist after each drop, and
// their product.
package counts

import (
	"errors"
	"fmt"
)

const (
	Pieces         = 8
	BoardEdge      = 5
	BoardLocations = BoardEdge * BoardEdge
	NumStages      = Pieces + 1
)

// A Stage is the number of pieces on the board. Drop0 through Drop7 are
// the placement phase; Play has all eight pieces down and pieces move.
type Stage int

const (
	Drop0 Stage = iota
	Drop1
	Drop2
	Drop3
	Drop4
	Drop5
	Drop6
	Drop7
	Play
)

var ErrNoSuchStage = errors.New("no such stage")

var (
	// Patterns[s] counts the ways to split s pieces, in board order,
	// between the two sides.
	Patterns [NumStages]uint32
	// Positions[s] counts the ways to choose s occupied cells.
	Positions [NumStages]uint32
	// Configurations[s] is Patterns[s] * Positions[s], the size of the
	// stage's dense index space.
	Configurations [NumStages]uint32
)

func init() {
	Patterns[0] = 1
	Positions[0] = 1
	for s := 1; s < NumStages; s++ {
		// The side that moved last holds ceil(s/2) of the s pieces.
		Patterns[s] = exactDiv(Patterns[s-1]*uint32(s), uint32((s+1)/2))
		Positions[s] = exactDiv(Positions[s-1]*uint32(BoardLocations-(s-1)), uint32(s))
	}
	for s := range Configurations {
		Configurations[s] = Patterns[s] * Positions[s]
	}
}

func exactDiv(num, den uint32) uint32 {
	if num%den != 0 {
		panic(fmt.Sprintf("inexact stage recurrence: %d / %d", num, den))
	}
	return num / den
}

// Total is the size of the whole state space across every stage.
func Total() uint64 {
	var t uint64
	for _, c := range Configurations {
		t += uint64(c)
	}
	return t
}

// StageForPieces returns the stage with n pieces on the board.
func StageForPieces(n int) (Stage, error) {
	if n < 0 || n > Pieces {
		return 0, fmt.Errorf("%w: %d pieces", ErrNoSuchStage, n)
	}
	return Stage(n), nil
}

func (s Stage) Valid() bool {
	return s >= Drop0 && s <= Play
}

// Pieces returns how many pieces are on the board at this stage.
func (s Stage) Pieces() int {
	return int(s)
}

// MoverPieces is the number of pieces held by the side that moved last.
func (s Stage) MoverPieces() int {
	return (int(s) + 1) / 2
}

// WaitingPieces is the number of pieces held by the side about to move.
func (s Stage) WaitingPieces() int {
	return int(s) / 2
}

func (s Stage) Patterns() uint32       { return Patterns[s] }
func (s Stage) Positions() uint32      { return Positions[s] }
func (s Stage) Configurations() uint32 { return Configurations[s] }

func (s Stage) String() string {
	if s == Play {
		return "play"
	}
	if s.Valid() {
		return fmt.Sprintf("drop%d", int(s))
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Stages lists every stage in order.
func Stages() []Stage {
	st := make([]Stage, NumStages)
	for i := range st {
		st[i] = Stage(i)
	}
	return st
}

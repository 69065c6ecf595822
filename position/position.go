// Package position maps two-sided boards to dense per-stage indices and
// back. An index is a Goedel number: the rank of the set of occupied cells
// plus the rank of which of those cells belong to each side, scaled by the
// number of occupied-cell sets.
package position

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/teeko/board"
	"github.com/domino14/teeko/counts"
)

type (
	PositionNumber = uint32
	PatternNumber  = uint8
)

// GodelPosition splits an index into its occupancy rank and its side
// assignment rank.
type GodelPosition struct {
	Position PositionNumber
	Pattern  PatternNumber
}

// Index combines the two ranks into the dense index for stage s.
func (g GodelPosition) Index(s counts.Stage) uint32 {
	return g.Position + counts.Positions[s]*uint32(g.Pattern)
}

// ABBoard holds each side's pieces. A is the side to move and B the side
// that moved last, so B never holds fewer pieces than A. The masks must
// not overlap.
type ABBoard struct {
	A board.Mask
	B board.Mask
}

var (
	ErrInvalidBoard    = errors.New("invalid board")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Occupied returns every occupied cell.
func (b ABBoard) Occupied() board.Mask {
	return b.A | b.B
}

// Pieces counts the pieces on the board.
func (b ABBoard) Pieces() int {
	return board.PiecesInMask(b.Occupied())
}

// Swap exchanges the two sides.
func (b ABBoard) Swap() ABBoard {
	return ABBoard{A: b.B, B: b.A}
}

// Transform applies a board symmetry to both sides.
func (b ABBoard) Transform(s board.Symmetry) ABBoard {
	return ABBoard{A: s.Apply(b.A), B: s.Apply(b.B)}
}

// Stage returns the stage this board belongs to after checking that the
// sides are disjoint, on the board, and split the way play alternates.
func (b ABBoard) Stage() (counts.Stage, error) {
	if !b.A.Valid() || !b.B.Valid() {
		return 0, fmt.Errorf("%w: pieces off the board", ErrInvalidBoard)
	}
	if b.A&b.B != 0 {
		return 0, fmt.Errorf("%w: sides share cells %v", ErrInvalidBoard, (b.A & b.B).Cells())
	}
	s, err := counts.StageForPieces(b.Pieces())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}
	na, nb := board.PiecesInMask(b.A), board.PiecesInMask(b.B)
	if na != s.WaitingPieces() || nb != s.MoverPieces() {
		return 0, fmt.Errorf("%w: %d/%d pieces cannot occur at stage %v", ErrInvalidBoard, na, nb, s)
	}
	return s, nil
}

func (b ABBoard) String() string {
	var sb strings.Builder
	for row := 0; row < board.Edge; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < board.Edge; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sq := board.MustSlot(board.CellAt(row, col))
			switch {
			case b.A&sq != 0:
				sb.WriteByte('A')
			case b.B&sq != 0:
				sb.WriteByte('B')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

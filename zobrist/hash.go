package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/teeko/board"
	"github.com/domino14/teeko/position"
)

const bignum = 1<<63 - 2

// Side selects which mask of an ABBoard a piece belongs to.
type Side int

const (
	SideA Side = iota
	SideB
)

// generate a zobrist hash for a two-sided 5x5 position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	bToMove  uint64
	posTable [2][board.NumCells]uint64
}

func (z *Zobrist) Initialize() {
	for side := range z.posTable {
		for i := range z.posTable[side] {
			z.posTable[side][i] = frand.Uint64n(bignum) + 1
		}
	}
	z.bToMove = frand.Uint64n(bignum) + 1
}

// Hash computes the key of b from scratch.
func (z *Zobrist) Hash(b position.ABBoard, bToMove bool) uint64 {
	key := uint64(0)
	for _, c := range b.A.Cells() {
		key ^= z.posTable[SideA][c-1]
	}
	for _, c := range b.B.Cells() {
		key ^= z.posTable[SideB][c-1]
	}
	if bToMove {
		key ^= z.bToMove
	}
	return key
}

// AddPiece updates key for a piece dropped on cell by side, and passes
// the turn.
func (z *Zobrist) AddPiece(key uint64, side Side, cell int) uint64 {
	key ^= z.posTable[side][cell-1]
	return key ^ z.bToMove
}

// MovePiece updates key for a piece of side moving between cells, and
// passes the turn.
func (z *Zobrist) MovePiece(key uint64, side Side, from, to int) uint64 {
	key ^= z.posTable[side][from-1]
	key ^= z.posTable[side][to-1]
	return key ^ z.bToMove
}

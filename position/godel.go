package position

import (
	"fmt"

	"github.com/domino14/teeko/board"
	"github.com/domino14/teeko/choose"
	"github.com/domino14/teeko/counts"
)

// Encode ranks b. Occupied-cell sets are ranked so that sets packed toward
// the bottom-right corner come first; the side pattern is read in board
// order, first occupied cell as the most significant bit.
func Encode(b ABBoard) (GodelPosition, counts.Stage, error) {
	s, err := b.Stage()
	if err != nil {
		return GodelPosition{}, 0, err
	}
	n := s.Pieces()
	if n == 0 {
		return GodelPosition{}, s, nil
	}

	ab := b.Occupied()
	var pos uint32
	var pat board.Pattern
	patBit := board.Pattern(1) << (n - 1)
	for j := 0; j < board.NumCells; j++ {
		bit := board.Mask(1) << j
		if ab&bit == 0 {
			continue
		}
		// pieces strictly after this cell
		after := board.PiecesInMask(ab>>j) - 1
		if b.B&bit != 0 {
			pat |= patBit
		}
		patBit >>= 1
		pos += choose.MustChoose(board.NumCells-j-1, after+1)
	}

	var patNum uint32
	left := s.MoverPieces()
	for j := 0; j < n; j++ {
		if pat&(1<<j) != 0 {
			left--
			patNum += choose.MustChoose(n-j-1, left+1)
		}
	}
	return GodelPosition{Position: pos, Pattern: PatternNumber(patNum)}, s, nil
}

// Index returns the dense index of b within its stage.
func Index(b ABBoard) (uint32, counts.Stage, error) {
	g, s, err := Encode(b)
	if err != nil {
		return 0, 0, err
	}
	return g.Index(s), s, nil
}

// Decode is the inverse of Index.
func Decode(idx uint32, s counts.Stage) (ABBoard, error) {
	if !s.Valid() {
		return ABBoard{}, fmt.Errorf("%w: %v", counts.ErrNoSuchStage, s)
	}
	if idx >= s.Configurations() {
		return ABBoard{}, fmt.Errorf("%w: %d >= %d at stage %v",
			ErrIndexOutOfRange, idx, s.Configurations(), s)
	}
	n := s.Pieces()
	if n == 0 {
		return ABBoard{}, nil
	}
	patNum := idx / s.Positions()
	posNum := idx % s.Positions()

	// Walk the pattern bits, choosing at each piece between the patterns
	// that give it to A and those that give it to B.
	var pat board.Pattern
	walk := s.Patterns()
	left := uint32(s.MoverPieces())
	for j := 0; j < n; j++ {
		pcs := uint32(n - j)
		split := walk * (pcs - left) / pcs
		if patNum >= split {
			patNum -= split
			walk = walk * left / pcs
			left--
			pat |= 1 << j
		} else {
			walk = split
		}
	}

	var b ABBoard
	walk = s.Positions()
	pcs := uint32(n)
	patBit := board.Pattern(1) << (n - 1)
	for j := 0; j < board.NumCells; j++ {
		locs := uint32(board.NumCells - j)
		split := walk * (locs - pcs) / locs
		if posNum < split {
			walk = split
			continue
		}
		posNum -= split
		walk = walk * pcs / locs
		pcs--
		if pat&patBit != 0 {
			b.B |= 1 << j
		} else {
			b.A |= 1 << j
		}
		patBit >>= 1
	}
	return b, nil
}

// Canonical returns the smallest index among the eight symmetric images
// of b and the symmetry that produces it.
func Canonical(b ABBoard) (uint32, board.Symmetry, error) {
	best, _, err := Index(b)
	if err != nil {
		return 0, board.Identity, err
	}
	bestSym := board.Identity
	for _, sym := range board.Symmetries[1:] {
		// symmetries preserve the piece split, so this cannot fail
		idx, _, _ := Index(b.Transform(sym))
		if idx < best {
			best, bestSym = idx, sym
		}
	}
	return best, bestSym, nil
}

// Package board implements the 5x5 bitboard algebra. A Mask holds one bit
// per cell, row-major, with bit 0 at the top-left corner. Cell numbers are
// 1-indexed, so cell c lives at bit c-1.
package board

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/domino14/teeko/counts"
)

// Mask is a set of occupied cells.
type Mask uint32

// Pattern has the layout of a Mask but marks which pieces belong to a
// side rather than which cells are occupied.
type Pattern uint32

const (
	Edge     = counts.BoardEdge
	NumCells = counts.BoardLocations

	Full Mask = 1<<NumCells - 1

	firstColumn Mask = 0x0108421
	lastColumn  Mask = firstColumn << (Edge - 1)
	firstRow    Mask = 1<<Edge - 1
	lastRow     Mask = firstRow << (NumCells - Edge)
)

var ErrCellOutOfRange = errors.New("cell out of range")

// Slot returns the mask holding only cell c (1..25).
func Slot(c int) (Mask, error) {
	if c < 1 || c > NumCells {
		return 0, fmt.Errorf("%w: %d", ErrCellOutOfRange, c)
	}
	return 1 << (c - 1), nil
}

// MustSlot is Slot for cell numbers known to be on the board.
func MustSlot(c int) Mask {
	m, err := Slot(c)
	if err != nil {
		panic(err)
	}
	return m
}

// Slots ORs the masks of several cells together.
func Slots(cells ...int) Mask {
	var m Mask
	for _, c := range cells {
		m |= MustSlot(c)
	}
	return m
}

// CellAt returns the cell number of (row, col), both 0-indexed.
func CellAt(row, col int) int {
	return row*Edge + col + 1
}

// PositionInMask returns the cell number of the only piece in m. It panics
// if m does not hold exactly one piece.
func PositionInMask(m Mask) int {
	if m == 0 || m&(m-1) != 0 {
		panic(fmt.Sprintf("board: mask %#x does not hold exactly one piece", uint32(m)))
	}
	return bits.TrailingZeros32(uint32(m)) + 1
}

// PiecesInMask counts the pieces in m.
func PiecesInMask(m Mask) int {
	return bits.OnesCount32(uint32(m))
}

// Valid reports whether m only uses the 25 board bits.
func (m Mask) Valid() bool {
	return m&^Full == 0
}

// Cells lists the cell numbers in m in ascending order.
func (m Mask) Cells() []int {
	cells := make([]int, 0, PiecesInMask(m))
	for p := m; p != 0; p &= p - 1 {
		cells = append(cells, bits.TrailingZeros32(uint32(p))+1)
	}
	return cells
}

// Neighbors returns the cells a king step away from any cell in m,
// excluding m itself.
func Neighbors(m Mask) Mask {
	m &= Full
	h := m | (m&^lastColumn)<<1 | (m&^firstColumn)>>1
	all := h | h<<Edge | h>>Edge
	return all & Full &^ m
}

func (m Mask) String() string {
	var sb strings.Builder
	for row := 0; row < Edge; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < Edge; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if m&MustSlot(CellAt(row, col)) != 0 {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

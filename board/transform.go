package board

// Down shifts every piece one row down. This is a plain shift of the flat
// encoding: pieces on the bottom row land above bit 24. Use Translate when
// the shape is not known to stay on the board.
func Down(m Mask) Mask {
	return m << Edge
}

// Right shifts every piece one column right. Pieces in the last column wrap
// into the first column of the next row; use Translate when the shape is
// not known to stay on the board.
func Right(m Mask) Mask {
	return m << 1
}

// Translate moves m by rows and cols (negative values move up and left).
// It returns false if any piece would leave the board.
func Translate(m Mask, rows, cols int) (Mask, bool) {
	if !m.Valid() {
		return 0, false
	}
	for ; cols > 0; cols-- {
		if m&lastColumn != 0 {
			return 0, false
		}
		m = Right(m)
	}
	for ; cols < 0; cols++ {
		if m&firstColumn != 0 {
			return 0, false
		}
		m >>= 1
	}
	for ; rows > 0; rows-- {
		if m&lastRow != 0 {
			return 0, false
		}
		m = Down(m)
	}
	for ; rows < 0; rows++ {
		if m&firstRow != 0 {
			return 0, false
		}
		m >>= Edge
	}
	return m, true
}

// FlipUpDown mirrors m across the middle row.
func FlipUpDown(m Mask) Mask {
	return (m&firstRow)<<20 |
		(m&(firstRow<<5))<<10 |
		m&(firstRow<<10) |
		(m>>10)&(firstRow<<5) |
		(m>>20)&firstRow
}

// Transpose mirrors m across the main diagonal, swapping rows and columns.
// Each step swaps the bit groups selected by the magic mask with the
// groups a fixed distance above them.
func Transpose(m Mask) Mask {
	t := ((m >> 12) ^ m) & 0x0000318
	m = m ^ t ^ (t << 12)
	t = ((m >> 8) ^ m) & 0x0004004
	m = m ^ t ^ (t << 8)
	t = ((m >> 4) ^ m) & 0x0092092
	return m ^ t ^ (t << 4)
}

var transposeTable [NumCells]int

func init() {
	for i := range transposeTable {
		row, col := i/Edge, i%Edge
		transposeTable[i] = col*Edge + row
	}
}

// transposeByTable is the permutation form of Transpose.
func transposeByTable(m Mask) Mask {
	var out Mask
	for p := m; p != 0; p &= p - 1 {
		out |= 1 << transposeTable[PositionInMask(p&-p)-1]
	}
	return out
}

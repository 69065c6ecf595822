package board

import "fmt"

// Symmetry is one of the eight rigid motions of the square board.
type Symmetry int

const (
	Identity Symmetry = iota
	Rotate90Sym
	Rotate180Sym
	Rotate270Sym
	FlipLeftRightSym
	FlipUpDownSym
	TransposeSym
	AntiTransposeSym
)

// Symmetries lists every board symmetry, identity first.
var Symmetries = [...]Symmetry{
	Identity, Rotate90Sym, Rotate180Sym, Rotate270Sym,
	FlipLeftRightSym, FlipUpDownSym, TransposeSym, AntiTransposeSym,
}

// Rotate90 turns the board a quarter turn counterclockwise.
func Rotate90(m Mask) Mask {
	return FlipUpDown(Transpose(m))
}

func Rotate180(m Mask) Mask {
	return FlipUpDown(FlipLeftRight(m))
}

// Rotate270 turns the board a quarter turn clockwise.
func Rotate270(m Mask) Mask {
	return Transpose(FlipUpDown(m))
}

func FlipLeftRight(m Mask) Mask {
	return Transpose(FlipUpDown(Transpose(m)))
}

// AntiTranspose mirrors m across the diagonal from the top-right corner to
// the bottom-left corner.
func AntiTranspose(m Mask) Mask {
	return Transpose(Rotate180(m))
}

// Apply transforms m by s.
func (s Symmetry) Apply(m Mask) Mask {
	switch s {
	case Identity:
		return m
	case Rotate90Sym:
		return Rotate90(m)
	case Rotate180Sym:
		return Rotate180(m)
	case Rotate270Sym:
		return Rotate270(m)
	case FlipLeftRightSym:
		return FlipLeftRight(m)
	case FlipUpDownSym:
		return FlipUpDown(m)
	case TransposeSym:
		return Transpose(m)
	case AntiTransposeSym:
		return AntiTranspose(m)
	}
	panic(fmt.Sprintf("board: unknown symmetry %d", int(s)))
}

// Inverse returns the symmetry that undoes s.
func (s Symmetry) Inverse() Symmetry {
	switch s {
	case Rotate90Sym:
		return Rotate270Sym
	case Rotate270Sym:
		return Rotate90Sym
	}
	return s
}

func (s Symmetry) String() string {
	switch s {
	case Identity:
		return "identity"
	case Rotate90Sym:
		return "rot90"
	case Rotate180Sym:
		return "rot180"
	case Rotate270Sym:
		return "rot270"
	case FlipLeftRightSym:
		return "flip-lr"
	case FlipUpDownSym:
		return "flip-ud"
	case TransposeSym:
		return "transpose"
	case AntiTransposeSym:
		return "anti-transpose"
	}
	return fmt.Sprintf("Symmetry(%d)", int(s))
}

// Package winning builds the catalog of four-piece winning shapes. Every
// entry is a rigid translation of one of five base shapes.
package winning

import (
	"github.com/samber/lo"

	"github.com/domino14/teeko/board"
)

// A Family is one base shape and every on-board placement of it.
type Family struct {
	Name  string
	Base  board.Mask
	Masks []board.Mask
}

// NumMasks is the number of winning placements on a 5x5 board.
const NumMasks = 44

var (
	families []Family
	masks    []board.Mask
	lookup   map[board.Mask]struct{}
)

func init() {
	bases := []struct {
		name string
		base board.Mask
	}{
		{"square", board.Slots(1, 2, 6, 7)},
		{"horizontal", board.Slots(1, 2, 3, 4)},
		{"vertical", board.Slots(1, 6, 11, 16)},
		{"diagonal", board.Slots(1, 7, 13, 19)},
		{"antidiagonal", board.Slots(4, 8, 12, 16)},
	}
	for _, b := range bases {
		f := Family{Name: b.name, Base: b.base, Masks: placements(b.base)}
		families = append(families, f)
		masks = append(masks, f.Masks...)
	}
	lookup = make(map[board.Mask]struct{}, len(masks))
	for _, m := range masks {
		lookup[m] = struct{}{}
	}
}

// placements translates base row by row, then column by column, keeping
// every placement that fits on the board.
func placements(base board.Mask) []board.Mask {
	var out []board.Mask
	for rows := 0; rows < board.Edge; rows++ {
		for cols := 0; cols < board.Edge; cols++ {
			if m, ok := board.Translate(base, rows, cols); ok {
				out = append(out, m)
			}
		}
	}
	return out
}

// Masks returns every winning mask in generation order.
func Masks() []board.Mask {
	return append([]board.Mask(nil), masks...)
}

// Families returns the shape families in generation order.
func Families() []Family {
	return lo.Map(families, func(f Family, _ int) Family {
		f.Masks = append([]board.Mask(nil), f.Masks...)
		return f
	})
}

// IsWin reports whether the pieces in m form exactly one winning shape.
// Use it on a side holding four pieces.
func IsWin(m board.Mask) bool {
	_, ok := lookup[m]
	return ok
}

// HasWin reports whether any winning shape is contained in m.
func HasWin(m board.Mask) bool {
	if board.PiecesInMask(m) < 4 {
		return false
	}
	for _, w := range masks {
		if m&w == w {
			return true
		}
	}
	return false
}

// Containing returns the winning masks that include every piece of m.
func Containing(m board.Mask) []board.Mask {
	return lo.Filter(masks, func(w board.Mask, _ int) bool {
		return w&m == m
	})
}

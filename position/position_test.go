package position

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/domino14/teeko/board"
	"github.com/domino14/teeko/counts"
)

func TestEmptyBoard(t *testing.T) {
	is := is.New(t)
	g, s, err := Encode(ABBoard{})
	is.NoErr(err)
	is.Equal(s, counts.Drop0)
	is.Equal(g, GodelPosition{})
	b, err := Decode(0, counts.Drop0)
	is.NoErr(err)
	is.Equal(b, ABBoard{})
}

func TestFirstDrop(t *testing.T) {
	is := is.New(t)
	// index 0 of the first drop is the bottom-right corner
	b, err := Decode(0, counts.Drop1)
	is.NoErr(err)
	is.Equal(b, ABBoard{B: board.MustSlot(25)})

	b, err = Decode(24, counts.Drop1)
	is.NoErr(err)
	is.Equal(b, ABBoard{B: board.MustSlot(1)})

	idx, _, err := Index(ABBoard{B: board.MustSlot(13)})
	is.NoErr(err)
	is.Equal(idx, uint32(12))
}

func TestKnownIndex(t *testing.T) {
	is := is.New(t)
	b := ABBoard{A: board.Slots(1, 25), B: board.Slots(7, 13)}
	idx, s, err := Index(b)
	is.NoErr(err)
	is.Equal(s, counts.Drop4)
	is.Equal(idx, uint32(36808))

	canon, _, err := Canonical(b)
	is.NoErr(err)
	is.Equal(canon, uint32(30397))
}

func TestRoundTripSmallStages(t *testing.T) {
	is := is.New(t)
	for s := counts.Drop0; s <= counts.Drop4; s++ {
		seen := make(map[ABBoard]bool, s.Configurations())
		for i := uint32(0); i < s.Configurations(); i++ {
			b, err := Decode(i, s)
			is.NoErr(err)
			is.True(!seen[b])
			seen[b] = true

			g, bs, err := Encode(b)
			is.NoErr(err)
			is.Equal(bs, s)
			is.True(uint32(g.Pattern) < s.Patterns())
			is.True(g.Position < s.Positions())
			is.Equal(g.Index(s), i)
		}
	}
}

func TestRoundTripSampled(t *testing.T) {
	is := is.New(t)
	for s := counts.Drop5; s <= counts.Play; s++ {
		for n := 0; n < 5000; n++ {
			i := uint32(frand.Uint64n(uint64(s.Configurations())))
			b, err := Decode(i, s)
			is.NoErr(err)
			is.Equal(board.PiecesInMask(b.A), s.WaitingPieces())
			is.Equal(board.PiecesInMask(b.B), s.MoverPieces())
			is.Equal(b.A&b.B, board.Mask(0))
			idx, _, err := Index(b)
			is.NoErr(err)
			is.Equal(idx, i)
		}
	}
}

func TestLastIndex(t *testing.T) {
	is := is.New(t)
	last := counts.Play.Configurations() - 1
	b, err := Decode(last, counts.Play)
	is.NoErr(err)
	idx, _, err := Index(b)
	is.NoErr(err)
	is.Equal(idx, last)

	_, err = Decode(last+1, counts.Play)
	is.True(errors.Is(err, ErrIndexOutOfRange))
	_, err = Decode(0, counts.Stage(9))
	is.True(errors.Is(err, counts.ErrNoSuchStage))
}

func TestInvalidBoards(t *testing.T) {
	is := is.New(t)
	bad := []ABBoard{
		// overlapping sides
		{A: board.MustSlot(1), B: board.MustSlot(1)},
		// A ahead of B
		{A: board.MustSlot(1)},
		// B two pieces ahead
		{B: board.Slots(1, 2)},
		// off the board
		{A: board.Full + 1, B: board.MustSlot(3)},
		// more than eight pieces
		{A: board.Slots(1, 2, 3, 4, 5), B: board.Slots(6, 7, 8, 9, 10)},
	}
	for _, b := range bad {
		_, _, err := Encode(b)
		is.True(errors.Is(err, ErrInvalidBoard))
	}
}

func TestCanonicalIsSymmetryInvariant(t *testing.T) {
	is := is.New(t)
	for n := 0; n < 500; n++ {
		i := uint32(frand.Uint64n(uint64(counts.Play.Configurations())))
		b, err := Decode(i, counts.Play)
		is.NoErr(err)
		want, sym, err := Canonical(b)
		is.NoErr(err)
		is.True(want <= i)

		got, _, _ := Index(b.Transform(sym))
		is.Equal(got, want)
		for _, s := range board.Symmetries {
			c, _, err := Canonical(b.Transform(s))
			is.NoErr(err)
			is.Equal(c, want)
		}
	}
}

func TestVerifyAndCountCanonical(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	want := []uint32{1, 6, 85, 904, 9664}
	for s := counts.Drop0; s <= counts.Drop4; s++ {
		boards, err := DecodeStage(ctx, s, 4)
		is.NoErr(err)
		is.NoErr(VerifyStage(ctx, s, boards, 4))

		c, err := CountCanonical(ctx, s, boards, 3)
		is.NoErr(err)
		is.Equal(c, want[s])
	}
}

func TestVerifyCatchesCorruption(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	boards, err := DecodeStage(ctx, counts.Drop2, 2)
	is.NoErr(err)
	boards[10], boards[11] = boards[11], boards[10]
	err = VerifyStage(ctx, counts.Drop2, boards, 2)
	is.True(errors.Is(err, ErrRoundTrip))

	err = VerifyStage(ctx, counts.Drop2, boards[:5], 2)
	is.True(err != nil)
}

func TestDecodeStageCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := DecodeStage(ctx, counts.Drop3, 2)
	is.True(errors.Is(err, context.Canceled))
}

func TestSwapAndString(t *testing.T) {
	is := is.New(t)
	b := ABBoard{A: board.MustSlot(1), B: board.MustSlot(25)}
	is.Equal(b.Swap(), ABBoard{A: board.MustSlot(25), B: board.MustSlot(1)})
	is.Equal(b.String(), "A . . . .\n. . . . .\n. . . . .\n. . . . .\n. . . . B")
}

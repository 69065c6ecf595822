package position

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/teeko/counts"
)

var ErrRoundTrip = errors.New("index does not round-trip")

const cancelCheckInterval = 1 << 14

// forChunks splits [0, total) into one contiguous range per worker.
func forChunks(ctx context.Context, total uint32, workers int,
	fn func(ctx context.Context, start, end uint32) error) error {

	if workers < 1 {
		workers = 1
	}
	chunk := (total + uint32(workers) - 1) / uint32(workers)
	if chunk == 0 {
		chunk = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	for start := uint32(0); start < total; start += chunk {
		start := start
		end := min(start+chunk, total)
		g.Go(func() error {
			return fn(ctx, start, end)
		})
	}
	return g.Wait()
}

// DecodeStage decodes every index of stage s.
func DecodeStage(ctx context.Context, s counts.Stage, workers int) ([]ABBoard, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %v", counts.ErrNoSuchStage, s)
	}
	logger := zerolog.Ctx(ctx)
	st := time.Now()
	boards := make([]ABBoard, s.Configurations())
	err := forChunks(ctx, s.Configurations(), workers, func(ctx context.Context, start, end uint32) error {
		for i := start; i < end; i++ {
			if (i-start)%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			b, err := Decode(i, s)
			if err != nil {
				return err
			}
			boards[i] = b
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Debug().Stringer("stage", s).Int("boards", len(boards)).
		Dur("elapsed", time.Since(st)).Msg("decoded-stage")
	return boards, nil
}

// VerifyStage checks that boards, the decoding of every index of stage s,
// holds legal boards that encode back to their own index.
func VerifyStage(ctx context.Context, s counts.Stage, boards []ABBoard, workers int) error {
	if uint64(len(boards)) != uint64(s.Configurations()) {
		return fmt.Errorf("stage %v has %d configurations, got %d boards",
			s, s.Configurations(), len(boards))
	}
	logger := zerolog.Ctx(ctx)
	st := time.Now()
	err := forChunks(ctx, s.Configurations(), workers, func(ctx context.Context, start, end uint32) error {
		for i := start; i < end; i++ {
			if (i-start)%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			idx, bs, err := Index(boards[i])
			if err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
			if bs != s || idx != i {
				return fmt.Errorf("%w: %d at stage %v encodes to %d at stage %v",
					ErrRoundTrip, i, s, idx, bs)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info().Stringer("stage", s).Dur("elapsed", time.Since(st)).Msg("verified-stage")
	return nil
}

// CountCanonical counts the indices of stage s that are the smallest of
// their symmetry class.
func CountCanonical(ctx context.Context, s counts.Stage, boards []ABBoard, workers int) (uint32, error) {
	if uint64(len(boards)) != uint64(s.Configurations()) {
		return 0, fmt.Errorf("stage %v has %d configurations, got %d boards",
			s, s.Configurations(), len(boards))
	}
	var total atomic.Uint32
	err := forChunks(ctx, s.Configurations(), workers, func(ctx context.Context, start, end uint32) error {
		var local uint32
		for i := start; i < end; i++ {
			if (i-start)%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			c, _, err := Canonical(boards[i])
			if err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
			if c == i {
				local++
			}
		}
		total.Add(local)
		return nil
	})
	if err != nil {
		return 0, err
	}
	zerolog.Ctx(ctx).Debug().Stringer("stage", s).Uint32("canonical", total.Load()).Msg("counted-canonical")
	return total.Load(), nil
}

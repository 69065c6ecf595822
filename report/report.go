// Package report assembles the state-space diagnostics: per-stage sizes,
// the total, the winning-mask catalog and a fingerprint of all of it.
package report

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/teeko/board"
	"github.com/domino14/teeko/cache"
	"github.com/domino14/teeko/config"
	"github.com/domino14/teeko/counts"
	"github.com/domino14/teeko/position"
	"github.com/domino14/teeko/winning"
)

var ErrUnknownFormat = errors.New("unknown report format")

type StageRow struct {
	Stage          string  `json:"stage" yaml:"stage"`
	Pieces         int     `json:"pieces" yaml:"pieces"`
	Patterns       uint32  `json:"patterns" yaml:"patterns"`
	Positions      uint32  `json:"positions" yaml:"positions"`
	Configurations uint32  `json:"configurations" yaml:"configurations"`
	Verified       bool    `json:"verified,omitempty" yaml:"verified,omitempty"`
	Canonical      *uint32 `json:"canonical,omitempty" yaml:"canonical,omitempty"`
}

type Report struct {
	Stages         []StageRow     `json:"stages" yaml:"stages"`
	Configurations uint64         `json:"configurations" yaml:"configurations"`
	WinningMasks   []uint32       `json:"winning_masks" yaml:"winning_masks,flow"`
	Families       map[string]int `json:"families" yaml:"families"`
	Fingerprint    string         `json:"fingerprint" yaml:"fingerprint"`
}

// Build fills in everything that comes straight from the tables.
func Build() *Report {
	r := &Report{
		Stages: lo.Map(counts.Stages(), func(s counts.Stage, _ int) StageRow {
			return StageRow{
				Stage:          s.String(),
				Pieces:         s.Pieces(),
				Patterns:       s.Patterns(),
				Positions:      s.Positions(),
				Configurations: s.Configurations(),
			}
		}),
		WinningMasks: lo.Map(winning.Masks(), func(m board.Mask, _ int) uint32 {
			return uint32(m)
		}),
		Families: make(map[string]int),
	}
	r.Configurations = lo.SumBy(r.Stages, func(row StageRow) uint64 {
		return uint64(row.Configurations)
	})
	for _, f := range winning.Families() {
		r.Families[f.Name] = len(f.Masks)
	}
	r.Fingerprint = fmt.Sprintf("%016x", Fingerprint())
	return r
}

// Fingerprint hashes the stage tables and the winning catalog. Anything
// stored by index should record it, since a change to either table
// changes what every index means.
func Fingerprint() uint64 {
	var buf []byte
	for _, s := range counts.Stages() {
		buf = binary.LittleEndian.AppendUint32(buf, s.Patterns())
		buf = binary.LittleEndian.AppendUint32(buf, s.Positions())
	}
	for _, m := range winning.Masks() {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(m))
	}
	return xxhash.Sum64(buf)
}

func boardsKey(s counts.Stage) string {
	return "stage-boards-" + s.String()
}

func loadBoards(s counts.Stage) func(context.Context, *config.Config, string) (interface{}, error) {
	return func(ctx context.Context, cfg *config.Config, _ string) (interface{}, error) {
		return position.DecodeStage(ctx, s, cfg.GetInt(config.ConfigWorkers))
	}
}

// Scan decodes the stages the config asks for, verifies their index
// round trip and counts their canonical positions.
func (r *Report) Scan(ctx context.Context, cfg *config.Config) error {
	logger := zerolog.Ctx(ctx)
	workers := cfg.GetInt(config.ConfigWorkers)
	verifyUpTo := cfg.GetInt(config.ConfigVerifyStages)
	canonUpTo := cfg.GetInt(config.ConfigCanonicalStages)

	for _, s := range counts.Stages() {
		verify := int(s) <= verifyUpTo
		canon := int(s) <= canonUpTo
		if !verify && !canon {
			continue
		}
		logger.Info().Stringer("stage", s).Uint32("configurations", s.Configurations()).Msg("scanning")
		obj, err := cache.Load(ctx, cfg, boardsKey(s), loadBoards(s))
		if err != nil {
			return fmt.Errorf("decoding stage %v: %w", s, err)
		}
		boards := obj.([]position.ABBoard)
		row := &r.Stages[s]
		if verify {
			if err := position.VerifyStage(ctx, s, boards, workers); err != nil {
				return err
			}
			row.Verified = true
		}
		if canon {
			c, err := position.CountCanonical(ctx, s, boards, workers)
			if err != nil {
				return err
			}
			row.Canonical = &c
		}
		cache.Evict(boardsKey(s))
	}
	return nil
}

// Write renders r as text, yaml or json.
func (r *Report) Write(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "text", "":
		return r.writeText(w)
	case "yaml":
		out, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func (r *Report) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "stage\tpieces\tpatterns\tpositions\tconfigurations\tcanonical\t")
	for _, row := range r.Stages {
		canon := "-"
		if row.Canonical != nil {
			canon = fmt.Sprint(*row.Canonical)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\t\n", row.Stage, row.Pieces,
			row.Patterns, row.Positions, row.Configurations, canon)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Configurations: %d\nWinning: %v\nFingerprint: %s\n",
		r.Configurations, r.WinningMasks, r.Fingerprint)
	return err
}

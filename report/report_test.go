package report

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/domino14/teeko/config"
	"github.com/domino14/teeko/counts"
)

func TestBuild(t *testing.T) {
	r := Build()
	assert.Len(t, r.Stages, counts.NumStages)
	assert.Equal(t, uint64(96691476), r.Configurations)
	assert.Equal(t, counts.Total(), r.Configurations)
	assert.Len(t, r.WinningMasks, 44)
	assert.Equal(t, uint32(99), r.WinningMasks[0])
	assert.Equal(t, map[string]int{
		"square": 16, "horizontal": 10, "vertical": 10, "diagonal": 4, "antidiagonal": 4,
	}, r.Families)
	assert.Equal(t, "play", r.Stages[counts.Play].Stage)
	assert.Len(t, r.Fingerprint, 16)
}

func TestFingerprintIsStable(t *testing.T) {
	assert.Equal(t, Fingerprint(), Fingerprint())
	assert.Equal(t, Build().Fingerprint, Build().Fingerprint)
}

func TestScan(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigVerifyStages, 3)
	cfg.Set(config.ConfigCanonicalStages, 2)
	cfg.Set(config.ConfigWorkers, 2)

	r := Build()
	require.NoError(t, r.Scan(context.Background(), cfg))
	for s, row := range r.Stages {
		assert.Equal(t, s <= 3, row.Verified, "stage %d", s)
		if s <= 2 {
			require.NotNil(t, row.Canonical)
		} else {
			assert.Nil(t, row.Canonical)
		}
	}
	assert.Equal(t, uint32(6), *r.Stages[1].Canonical)
	assert.Equal(t, uint32(85), *r.Stages[2].Canonical)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Build().Write(&buf, "text"))
	out := buf.String()
	assert.Contains(t, out, "Configurations: 96691476\n")
	assert.Contains(t, out, "Winning: [99 198 396 792 ")
	assert.True(t, strings.Contains(out, "drop4"))
}

func TestWriteYAMLAndJSON(t *testing.T) {
	r := Build()

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, "yaml"))
	var fromYAML Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, r.Configurations, fromYAML.Configurations)
	assert.Equal(t, r.WinningMasks, fromYAML.WinningMasks)

	buf.Reset()
	require.NoError(t, r.Write(&buf, "JSON"))
	var fromJSON Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, r.Stages, fromJSON.Stages)
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Build().Write(&bytes.Buffer{}, "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

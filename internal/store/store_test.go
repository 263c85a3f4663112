package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gchen-astro/sift/internal/finder"
	"github.com/gchen-astro/sift/internal/lightcurve"
	"github.com/gchen-astro/sift/internal/sim"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}

func TestWriteSource_ConflictReturnsExistingID(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	src := lightcurve.NewSource("SN2023abc", "ZTF", "cfg1")
	id1, err := s.WriteSource(ctx, src)
	require.NoError(t, err)

	id2, err := s.WriteSource(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	other := lightcurve.NewSource("SN2023abc", "ZTF", "cfg2")
	id3, err := s.WriteSource(ctx, other)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id3)
}

func testDetection(lcName string, peak, snr float64, pars *sim.Params) *finder.Detection {
	return &finder.Detection{
		Lightcurve: &lightcurve.Lightcurve{Name: lcName},
		TimePeak:   peak,
		SNR:        snr,
		TimeStart:  peak - 1,
		TimeEnd:    peak + 1,
		Simulated:  pars != nil,
		SimPars:    pars,
	}
}

func TestWriteDetections_RoundTrip(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id, err := s.WriteSource(ctx, lightcurve.NewSource("src", "ZTF", ""))
	require.NoError(t, err)

	pars := &sim.Params{RunID: "run-1", TimePeak: 12, FluxPeak: 40, Width: 2}
	dets := []*finder.Detection{
		testDetection("ztf_r", 20, 9.5, nil),
		testDetection("ztf_r", 12, 6.1, pars),
	}
	require.NoError(t, s.WriteDetections(ctx, id, "run-1", dets))

	records, err := s.ReadDetections(ctx, id)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Ordered by peak time, not insertion order.
	assert.Equal(t, 12.0, records[0].TimePeak)
	assert.Equal(t, 20.0, records[1].TimePeak)

	assert.True(t, records[0].Simulated)
	require.NotNil(t, records[0].SimPars)
	assert.Equal(t, 40.0, records[0].SimPars.FluxPeak)
	assert.False(t, records[1].Simulated)
	assert.Nil(t, records[1].SimPars)
}

func TestWriteDetection_Idempotent(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id, err := s.WriteSource(ctx, lightcurve.NewSource("src", "ZTF", ""))
	require.NoError(t, err)

	det := testDetection("ztf_r", 20, 9.5, nil)
	require.NoError(t, s.WriteDetection(ctx, id, "run-1", det))
	require.NoError(t, s.WriteDetection(ctx, id, "run-1", det))

	records, err := s.ReadDetections(ctx, id)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// A different run is a separate record.
	require.NoError(t, s.WriteDetection(ctx, id, "run-2", det))
	records, err = s.ReadDetections(ctx, id)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestReadDetections_EmptyIsNotNil(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id, err := s.WriteSource(ctx, lightcurve.NewSource("src", "ZTF", ""))
	require.NoError(t, err)

	records, err := s.ReadDetections(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCountDetections(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id, err := s.WriteSource(ctx, lightcurve.NewSource("src", "ZTF", ""))
	require.NoError(t, err)

	require.NoError(t, s.WriteDetection(ctx, id, "", testDetection("lc", 1, 7, nil)))
	require.NoError(t, s.WriteDetection(ctx, id, "", testDetection("lc", 2, 8, &sim.Params{})))
	require.NoError(t, s.WriteDetection(ctx, id, "", testDetection("lc", 3, 9, &sim.Params{})))

	observed, simulated, err := s.CountDetections(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, observed)
	assert.Equal(t, 2, simulated)
}

package lightcurve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatSamples(n int) []Sample {
	samples := make([]Sample, n)
	for i := range samples {
		samples[i] = Sample{
			Time:    float64(i),
			Flux:    100,
			FluxErr: 3,
			Mag:     18,
		}
	}
	return samples
}

func TestNew_Columnar(t *testing.T) {
	samples := flatSamples(4)
	samples[2].Flag = true

	lc := New("ztf_r", samples, 100, 3)

	require.Equal(t, 4, lc.Len())
	assert.Equal(t, []float64{0, 1, 2, 3}, lc.Time)
	assert.Equal(t, []float64{100, 100, 100, 100}, lc.Flux)
	assert.Equal(t, []bool{false, false, true, false}, lc.Flag)
	assert.NoError(t, lc.Validate())
}

func TestValidate_MissingColumn(t *testing.T) {
	lc := New("x", flatSamples(3), 100, 3)
	lc.Mag = nil

	err := lc.Validate()
	var shape *ShapeError
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "mag", shape.Column)
}

func TestValidate_RaggedColumn(t *testing.T) {
	lc := New("x", flatSamples(3), 100, 3)
	lc.FluxErr = lc.FluxErr[:2]

	err := lc.Validate()
	var shape *ShapeError
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "flux_err", shape.Column)
	assert.Equal(t, 2, shape.Len)
	assert.Equal(t, 3, shape.Want)
}

func TestEnsureDerived_KeepsDetected(t *testing.T) {
	lc := New("x", flatSamples(3), 100, 3)

	lc.EnsureDerived()
	require.Len(t, lc.Detected, 3)
	lc.Detected[1] = true
	lc.SNR[0] = 7

	// SNR and DMag are rebuilt, Detected survives.
	lc.EnsureDerived()
	assert.Equal(t, []float64{0, 0, 0}, lc.SNR)
	assert.Equal(t, []bool{false, true, false}, lc.Detected)

	lc.ResetDetected()
	lc.EnsureDerived()
	assert.Equal(t, []bool{false, false, false}, lc.Detected)
}

func TestCopy_Independent(t *testing.T) {
	lc := New("x", flatSamples(3), 100, 3)
	lc.EnsureDerived()
	lc.Detected[0] = true

	cp := lc.Copy()
	cp.Flux[0] = 999
	cp.Detected[0] = false

	assert.Equal(t, 100.0, lc.Flux[0])
	assert.True(t, lc.Detected[0])
	assert.Equal(t, lc.FluxMeanRobust, cp.FluxMeanRobust)
}

func TestSource_Lightcurves(t *testing.T) {
	src := NewSource("SN2023abc", "ZTF", "")
	src.AddLightcurve(New("ZTF_r", flatSamples(2), 100, 3))
	src.AddLightcurve(New("ZTF_g", flatSamples(2), 50, 2))

	require.Equal(t, 2, src.Lightcurves.Len())
	got, err := src.Lightcurves.ByName("ztf_g")
	require.NoError(t, err)
	assert.Equal(t, "ZTF_g", got.Name)
}

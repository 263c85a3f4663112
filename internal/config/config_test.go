package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 5.0, cfg.SNRThreshold)
	require.NotNil(t, cfg.SNRThresholdSidebands)
	assert.Equal(t, -2.0, *cfg.SNRThresholdSidebands)
	assert.Equal(t, 1, cfg.MaxDetPerLC)
	assert.True(t, cfg.AbsSNR)
	assert.NoError(t, cfg.Validate())
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse([]byte(`
snr_threshold: 7.5
max_det_per_lc: 3
abs_snr: false
`))
	require.NoError(t, err)
	assert.Equal(t, 7.5, cfg.SNRThreshold)
	assert.Equal(t, 3, cfg.MaxDetPerLC)
	assert.False(t, cfg.AbsSNR)
	// Untouched keys keep their defaults.
	require.NotNil(t, cfg.SNRThresholdSidebands)
	assert.Equal(t, -2.0, *cfg.SNRThresholdSidebands)
}

func TestParse_UnknownKeyIsError(t *testing.T) {
	_, err := Parse([]byte("snr_treshold: 5\n"))
	require.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default().SNRThreshold, cfg.SNRThreshold)
}

func TestValidate_RejectsOutOfRange(t *testing.T) {
	cfg := Default()
	cfg.SNRThreshold = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MaxDetPerLC = -2
	assert.Error(t, cfg.Validate())
}

func TestWindowThreshold(t *testing.T) {
	cfg := Default() // threshold 5, sidebands -2

	// Negative sidebands are relative offsets.
	assert.Equal(t, 3.0, cfg.WindowThreshold())

	// Non-negative sidebands are absolute.
	abs := 4.0
	cfg.SNRThresholdSidebands = &abs
	assert.Equal(t, 4.0, cfg.WindowThreshold())

	// Absent sidebands collapse the window threshold onto the detection
	// threshold.
	cfg.SNRThresholdSidebands = nil
	assert.Equal(t, 5.0, cfg.WindowThreshold())
}

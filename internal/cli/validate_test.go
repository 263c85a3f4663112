package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, raw string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "detector.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))
	return path
}

func TestValidate_OK(t *testing.T) {
	path := writeConfig(t, "snr_threshold: 6\nmax_det_per_lc: 3\nabs_snr: false\n")

	out, err := runCommand(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: snr_threshold=6")
	assert.Contains(t, out, "max_det_per_lc=3")
	assert.Contains(t, out, "abs_snr=false")
}

func TestValidate_UnknownKey(t *testing.T) {
	path := writeConfig(t, "snr_threshold: 6\nsnr_treshold_typo: 4\n")

	_, err := runCommand(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestValidate_OutOfRange(t *testing.T) {
	path := writeConfig(t, "snr_threshold: -1\n")

	_, err := runCommand(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestVersion(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)

	out, err = runCommand(t, "--format", "json", "version")
	require.NoError(t, err)
	assert.Contains(t, out, `"version"`)
}

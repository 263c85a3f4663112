// Package config holds the typed detector configuration.
//
// Configuration reaches the engine only through the Config struct: YAML
// files are decoded strictly (unknown keys are a hard error, never silently
// absorbed), and decoded values are vetted against an embedded CUE schema
// before use.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Config carries the recognized detector options.
type Config struct {
	// SNRThreshold is the peak significance cutoff.
	SNRThreshold float64 `yaml:"snr_threshold" json:"snr_threshold"`

	// SNRThresholdSidebands sizes the reported event window. Negative
	// values are relative offsets from SNRThreshold; non-negative values
	// are absolute thresholds. Nil means no sideband threshold is
	// configured and windows use SNRThreshold itself.
	SNRThresholdSidebands *float64 `yaml:"snr_threshold_sidebands,omitempty" json:"snr_threshold_sidebands,omitempty"`

	// MaxDetPerLC bounds the number of detections per lightcurve per
	// ingest call.
	MaxDetPerLC int `yaml:"max_det_per_lc" json:"max_det_per_lc"`

	// AbsSNR scans the absolute SNR so negative dips are detectable.
	AbsSNR bool `yaml:"abs_snr" json:"abs_snr"`
}

// Default returns the production defaults: threshold 5, relative sideband
// offset -2, one detection per lightcurve, absolute SNR on.
func Default() Config {
	sidebands := -2.0
	return Config{
		SNRThreshold:          5,
		SNRThresholdSidebands: &sidebands,
		MaxDetPerLC:           1,
		AbsSNR:                true,
	}
}

// Load reads a YAML config file over the defaults. Unknown keys fail
// decoding, and the result is validated before being returned.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(raw)
}

// Parse decodes YAML bytes over the defaults and validates the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(raw)) == 0 {
		return cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate vets the configuration against the embedded CUE schema.
func (c Config) Validate() error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("lookup config schema: %w", err)
	}

	val := ctx.Encode(c)
	if err := val.Err(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	unified := def.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// WindowThreshold resolves the event-window membership threshold from the
// sideband setting, per the relative/absolute convention above.
func (c Config) WindowThreshold() float64 {
	if c.SNRThresholdSidebands == nil {
		return c.SNRThreshold
	}
	if *c.SNRThresholdSidebands < 0 {
		return c.SNRThreshold + *c.SNRThresholdSidebands
	}
	return *c.SNRThresholdSidebands
}

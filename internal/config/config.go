// Package config loads the cluster command's tunables from an optional
// YAML file, the same way the rest of the pack layers config: defaults
// first, then anything the file overrides, then flags win over both at
// the call site in cmd/scan.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/dd0wney/cluso-scan/pkg/validation"
)

var similarityMeasures = []string{"cosine", "jaccard", "approx_cosine", "approx_jaccard"}
var outputFormats = []string{"text", "json"}

// Config is the full set of SCAN build/cluster parameters a config file may
// set. Command-line flags override whatever is loaded here.
type Config struct {
	// Similarity names the kernel: cosine, jaccard, approx_cosine or
	// approx_jaccard.
	Similarity string `mapstructure:"similarity" yaml:"similarity"`
	// NumSamples is the SimHash/MinHash fingerprint width; required for
	// the approx_* kernels.
	NumSamples int `mapstructure:"num_samples" yaml:"num_samples"`
	// Seed drives the deterministic RNG behind the approximate kernels.
	Seed uint64 `mapstructure:"seed" yaml:"seed"`
	// Mu is the minimum closed-neighborhood size for a core vertex.
	Mu uint32 `mapstructure:"mu" yaml:"mu"`
	// Epsilon is the minimum structural similarity for an edge to count
	// toward a vertex's neighborhood.
	Epsilon float64 `mapstructure:"epsilon" yaml:"epsilon"`
	// Output selects the report format: text or json.
	Output string `mapstructure:"output" yaml:"output"`
	// Progress enables a progress bar during the index build on
	// interactive terminals; ignored for json output.
	Progress bool `mapstructure:"progress" yaml:"progress"`
}

// DefaultConfig mirrors the zero-config CLI behavior: exact cosine
// similarity, mu=2, epsilon=0.5, text output, progress bar on.
func DefaultConfig() *Config {
	return &Config{
		Similarity: "cosine",
		NumSamples: 128,
		Seed:       1,
		Mu:         2,
		Epsilon:    0.5,
		Output:     "text",
		Progress:   true,
	}
}

// Load reads configPath (if non-empty) over top of DefaultConfig. An empty
// path is not an error; a nonexistent, unreadable, malformed, or invalid
// file is.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if configPath == "" {
		return cfg, nil
	}
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config: %s: %w", configPath, err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", configPath, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal %s: %w", configPath, err)
	}

	// A file that zeroes out num_samples (or sets it negative) almost
	// always means the author meant to leave it at the default rather than
	// disable the approx_* kernels outright; an absurdly high value is
	// clamped down to the largest accepted width.
	cfg.NumSamples = validation.DefaultOrInt(cfg.NumSamples, DefaultConfig().NumSamples)
	cfg.NumSamples = validation.ClampInt(cfg.NumSamples, 1, 1<<16)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", configPath, err)
	}
	return cfg, nil
}

// Validate checks that a loaded config describes a buildable index: a known
// similarity measure, a core-neighborhood size of at least 2, an epsilon in
// [0, 1], and a known report format.
func (c *Config) Validate() error {
	cv := validation.NewConfigValidator("config")
	cv.Required("similarity", c.Similarity)
	cv.OneOf("similarity", c.Similarity, similarityMeasures)
	cv.MinInt("mu", int(c.Mu), 2)
	cv.RangeInt("num_samples", c.NumSamples, 1, 1<<16)
	cv.Custom("epsilon", func() error {
		if c.Epsilon < 0 || c.Epsilon > 1 {
			return fmt.Errorf("value %v is outside range [0, 1]", c.Epsilon)
		}
		return nil
	})
	cv.Required("output", c.Output)
	cv.OneOf("output", c.Output, outputFormats)
	return cv.Validate()
}

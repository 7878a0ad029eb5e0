package app

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/tailscale/hujson"

	"life-ca/internal/core"
	"life-ca/internal/patterns"
	"life-ca/internal/sims/life"
)

// ErrInvalidConfig is returned when flags or the config file describe an
// unusable run.
var ErrInvalidConfig = errors.New("invalid config")

const maxConfigSize = 1 << 20

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Scale   int
	TPS     int
	Tick    time.Duration
	Pattern string
	OffsetX int
	OffsetY int
	Random  bool
	Seed    int64

	ConfigFile string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	lc := life.DefaultConfig()
	return &Config{
		Width:   lc.Width,
		Height:  lc.Height,
		Scale:   5,
		TPS:     60,
		Tick:    core.DefaultTickInterval,
		Pattern: lc.Pattern,
		OffsetX: lc.OffsetX,
		OffsetY: lc.OffsetY,
		Seed:    lc.Seed,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window updates per second")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "time between generations")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern name (empty for none)")
	fs.IntVar(&c.OffsetX, "x", c.OffsetX, "seed pattern column offset")
	fs.IntVar(&c.OffsetY, "y", c.OffsetY, "seed pattern row offset")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random grid instead of a pattern")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random grids")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional HuJSON config file")
}

// Life converts the configuration into simulation settings.
func (c *Config) Life() life.Config {
	return life.Config{
		Width:   c.Width,
		Height:  c.Height,
		Pattern: c.Pattern,
		OffsetX: c.OffsetX,
		OffsetY: c.OffsetY,
		Random:  c.Random,
		Seed:    c.Seed,
	}
}

// Validate rejects configurations that cannot produce a run.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid size %dx%d", c.Width, c.Height)
	case c.Scale <= 0:
		return errors.Wrapf(ErrInvalidConfig, "scale %d", c.Scale)
	case c.TPS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tps %d", c.TPS)
	case c.Tick <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tick %s", c.Tick)
	}
	if !c.Random && c.Pattern != "" {
		if _, err := patterns.Named(c.Pattern); err != nil {
			return errors.Wrapf(ErrInvalidConfig, "%v (known: %v)", err, patterns.Names())
		}
	}
	return nil
}

// fileConfig mirrors Config for the config file. Omitted fields keep the
// current value.
type fileConfig struct {
	Width   *int    `json:"width,omitempty"`
	Height  *int    `json:"height,omitempty"`
	Scale   *int    `json:"scale,omitempty"`
	TPS     *int    `json:"tps,omitempty"`
	Tick    *string `json:"tick,omitempty"` // duration string like "100ms"
	Pattern *string `json:"pattern,omitempty"`
	OffsetX *int    `json:"x,omitempty"`
	OffsetY *int    `json:"y,omitempty"`
	Random  *bool   `json:"random,omitempty"`
	Seed    *int64  `json:"seed,omitempty"`
}

// LoadFile applies a HuJSON (JSON with comments and trailing commas) config
// file on top of c.
func (c *Config) LoadFile(path string) error {
	cleanPath := filepath.Clean(path)
	info, err := os.Stat(cleanPath)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to stat config file: %+v", cleanPath)
	}
	if info.Size() > maxConfigSize {
		return errors.Wrapf(ErrInvalidConfig, "[LoadFile] config file too large: %d bytes", info.Size())
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", cleanPath)
	}
	return errors.Wrapf(c.apply(data), "[LoadFile] %+v", cleanPath)
}

func (c *Config) apply(data []byte) error {
	std, err := hujson.Standardize(data)
	if err != nil {
		return errors.Wrapf(ErrInvalidConfig, "parse: %v", err)
	}
	var fc fileConfig
	if err := json.Unmarshal(std, &fc); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "decode: %v", err)
	}

	if fc.Width != nil {
		c.Width = *fc.Width
	}
	if fc.Height != nil {
		c.Height = *fc.Height
	}
	if fc.Scale != nil {
		c.Scale = *fc.Scale
	}
	if fc.TPS != nil {
		c.TPS = *fc.TPS
	}
	if fc.Tick != nil {
		d, err := time.ParseDuration(*fc.Tick)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "tick: %v", err)
		}
		c.Tick = d
	}
	if fc.Pattern != nil {
		c.Pattern = *fc.Pattern
	}
	if fc.OffsetX != nil {
		c.OffsetX = *fc.OffsetX
	}
	if fc.OffsetY != nil {
		c.OffsetY = *fc.OffsetY
	}
	if fc.Random != nil {
		c.Random = *fc.Random
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	return nil
}

// Load parses args into a validated Config. When -config names a file, its
// values replace the defaults and flags given explicitly on the command line
// still win. extra, if non-nil, binds command-specific flags.
func Load(name string, args []string, extra func(*flag.FlagSet)) (*Config, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.Bind(fs)
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.ConfigFile != "" {
		fileCfg := NewConfig()
		if err := fileCfg.LoadFile(cfg.ConfigFile); err != nil {
			return nil, err
		}
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		fileCfg.Bind(fs)
		if extra != nil {
			extra(fs)
		}
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life-ca/internal/patterns"
	"life-ca/internal/sims/life"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "life.hujson")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewConfigMatchesLifeDefaults(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, life.DefaultConfig(), cfg.Life())
	assert.Equal(t, 5, cfg.Scale)
	assert.Equal(t, 100*time.Millisecond, cfg.Tick)
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-width", "64", "-height", "48", "-pattern", "glider", "-x", "3", "-y", "4", "-tick", "50ms"}))

	lc := cfg.Life()
	assert.Equal(t, 64, lc.Width)
	assert.Equal(t, 48, lc.Height)
	assert.Equal(t, "glider", lc.Pattern)
	assert.Equal(t, 3, lc.OffsetX)
	assert.Equal(t, 4, lc.OffsetY)
	assert.Equal(t, 50*time.Millisecond, cfg.Tick)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":      func(c *Config) { c.Width = 0 },
		"negative height": func(c *Config) { c.Height = -1 },
		"zero scale":      func(c *Config) { c.Scale = 0 },
		"zero tps":        func(c *Config) { c.TPS = 0 },
		"zero tick":       func(c *Config) { c.Tick = 0 },
		"unknown pattern": func(c *Config) { c.Pattern = "nope" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			mutate(cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}

	cfg := NewConfig()
	cfg.Pattern = "nope"
	cfg.Random = true
	assert.NoError(t, cfg.Validate(), "random runs ignore the pattern name")
}

func TestLoadFileHuJSON(t *testing.T) {
	path := writeConfig(t, `{
		// smaller board for the demo
		"width": 60,
		"height": 40,
		"tick": "250ms",
		"pattern": "lwss",
		"x": 20, "y": 5,
	}`)

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFile(path))
	assert.Equal(t, 60, cfg.Width)
	assert.Equal(t, 40, cfg.Height)
	assert.Equal(t, 250*time.Millisecond, cfg.Tick)
	assert.Equal(t, "lwss", cfg.Pattern)
	assert.Equal(t, 20, cfg.OffsetX)
	assert.Equal(t, 5, cfg.OffsetY)
	assert.Equal(t, 5, cfg.Scale, "omitted fields keep their value")
}

func TestLoadFileErrors(t *testing.T) {
	cfg := NewConfig()
	assert.Error(t, cfg.LoadFile(filepath.Join(t.TempDir(), "missing.json")))

	bad := writeConfig(t, `{"width": `)
	assert.True(t, errors.Is(cfg.LoadFile(bad), ErrInvalidConfig))

	badTick := writeConfig(t, `{"tick": "soon"}`)
	assert.True(t, errors.Is(cfg.LoadFile(badTick), ErrInvalidConfig))

	wrongType := writeConfig(t, `{"width": "wide"}`)
	assert.True(t, errors.Is(cfg.LoadFile(wrongType), ErrInvalidConfig))
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `{"width": 60, "height": 40, "pattern": "glider"}`)

	var generations int
	cfg, err := Load("life", []string{"-config", path, "-height", "50", "-generations", "7"}, func(fs *flag.FlagSet) {
		fs.IntVar(&generations, "generations", 0, "")
	})
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
	assert.Equal(t, "glider", cfg.Pattern)
	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, 7, generations)
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := Load("life", []string{"-width", "0"}, nil)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	_, err = Load("life", []string{"-pattern", "bogus"}, nil)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), patterns.GliderGun)
}

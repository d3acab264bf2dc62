package app

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// DefaultConfigFile is read from the working directory when present.
const DefaultConfigFile = "hyakumasu.ini"

// Config represents the settings shared by the frontends.
type Config struct {
	RecordFile string `ini:"RecordFile"`
	Scale      int    `ini:"Scale"`
	TPS        int    `ini:"TPS"`
	Seed       int64  `ini:"Seed"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{RecordFile: "score.bin", Scale: 2, TPS: 60}
}

// LoadFile overlays the [Settings] section of an ini file. A missing file is
// not an error.
func (c *Config) LoadFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	f, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := f.Section("Settings").MapTo(c); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	c.sanitize()
	return nil
}

// SaveFile writes the configuration as an ini file.
func (c *Config) SaveFile(path string) error {
	f := ini.Empty()
	if err := f.Section("Settings").ReflectFrom(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return f.SaveTo(path)
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.RecordFile, "records", c.RecordFile, "leaderboard file")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "puzzle seed (0 for random)")
}

func (c *Config) sanitize() {
	d := NewConfig()
	if c.RecordFile == "" {
		c.RecordFile = d.RecordFile
	}
	if c.Scale <= 0 {
		c.Scale = d.Scale
	}
	if c.TPS <= 0 {
		c.TPS = d.TPS
	}
}

// Load builds a Config from defaults, the default ini file and then args.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	if err := c.LoadFile(DefaultConfigFile); err != nil {
		return nil, err
	}
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	c.sanitize()
	return c, nil
}

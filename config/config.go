// Package config loads the free/busy service configuration.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"freebusy/interval"
)

const (
	DefaultListen   = "localhost:7890"
	DefaultCacheTTL = 5 * time.Minute
)

// Config is the configuration of the free/busy service.
type Config struct {
	// Listen is the host:port the HTTP API is served on.
	Listen string `toml:"listen"`
	// Strategy names the intersection algorithm, "sweep" or "pairwise".
	Strategy string `toml:"strategy"`
	MySQL    MySQL  `toml:"mysql"`
	Redis    Redis  `toml:"redis"`
	// Parties seeds in-memory schedules, used when no MySQL DSN is set.
	Parties map[string][]interval.Interval[interval.TimeOfDay] `toml:"parties"`
}

type MySQL struct {
	DSN string `toml:"dsn"`
}

type Redis struct {
	Addr     string   `toml:"addr"`
	Password string   `toml:"password"`
	DB       int      `toml:"db"`
	TTL      duration `toml:"ttl"`
}

// duration decodes TOML strings such as "30s".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the configuration used without a config file.
func Default() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}

// Load decodes the file at path over the defaults.
func Load(path string) (*Config, error) {
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("load config %s: unknown key %s", path, undecoded[0])
	}
	c.setDefaults()
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	return &c, nil
}

func (c *Config) setDefaults() {
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.Strategy == "" {
		c.Strategy = interval.SweepLine.String()
	}
	if c.Redis.TTL.Duration == 0 {
		c.Redis.TTL.Duration = DefaultCacheTTL
	}
}

// Validate checks the strategy name and party schedules.
func (c *Config) Validate() error {
	if _, err := interval.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	for party, busy := range c.Parties {
		for _, iv := range busy {
			if iv.Start > iv.End {
				return errors.Wrapf(interval.ErrInvalidInterval, "party %s: %v", party, iv)
			}
		}
	}
	return nil
}

// IntersectStrategy parses Strategy.
func (c *Config) IntersectStrategy() (interval.Strategy, error) {
	return interval.ParseStrategy(c.Strategy)
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/buglloc/pipescape/internal/escaper"
	"github.com/buglloc/pipescape/internal/record"
)

const (
	EnvPrefix     = "PE_"
	DefaultSample = "the qu|ick brown\n \rfox jumped\tover the lazy dawg >w< \\|"
)

type Log struct {
	Level string `koanf:"level"`
}

type Escaper struct {
	Style escaper.Style `koanf:"style"`
}

type Demo struct {
	Sample string `koanf:"sample"`
}

type Config struct {
	Log     Log     `koanf:"log"`
	Escaper Escaper `koanf:"escaper"`
	Demo    Demo    `koanf:"demo"`
}

func (l *Log) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(l.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}

	return nil
}

func (e *Escaper) Validate() error {
	if _, err := escaper.ParseStyle(string(e.Style)); err != nil {
		return err
	}

	return nil
}

func (c *Config) Validate() error {
	var errs []error
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	if err := c.Escaper.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("escaper: %w", err))
	}

	return errors.Join(errs...)
}

type Runtime struct {
	cfg *Config
}

func NewConfig() *Config {
	return &Config{
		Log: Log{
			Level: zerolog.LevelInfoValue,
		},
		Escaper: Escaper{
			Style: escaper.StyleCompat,
		},
		Demo: Demo{
			Sample: DefaultSample,
		},
	}
}

func LoadConfig(files ...string) (*Config, error) {
	out := NewConfig()

	k := koanf.New(".")
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	yamlParser := yaml.Parser()
	for _, fpath := range files {
		if err := k.Load(file.Provider(fpath), yamlParser); err != nil {
			return nil, fmt.Errorf("load %q config: %w", fpath, err)
		}
	}

	if err := k.Unmarshal("", out); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return out, nil
}

// envKey maps PE_ESCAPER_STYLE to escaper.style.
func envKey(s string) string {
	return strings.ReplaceAll(
		strings.ToLower(strings.TrimPrefix(s, EnvPrefix)),
		"_", ".",
	)
}

func (c *Config) NewRuntime() (*Runtime, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Validate accepts any case, the escaper wants the canonical value
	c.Escaper.Style, _ = escaper.ParseStyle(string(c.Escaper.Style))
	return &Runtime{
		cfg: c,
	}, nil
}

func (r *Runtime) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(r.cfg.Log.Level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return lvl
}

func (r *Runtime) NewEscaper() *escaper.Escaper {
	return escaper.New(
		escaper.WithStyle(r.cfg.Escaper.Style),
	)
}

func (r *Runtime) NewEncoder() *record.Encoder {
	return record.NewEncoder(r.NewEscaper())
}

func (r *Runtime) DemoSample() string {
	if r.cfg.Demo.Sample == "" {
		return DefaultSample
	}

	return r.cfg.Demo.Sample
}

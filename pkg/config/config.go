// Package config loads llvminst settings from a TOML or YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/logging"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parser"
)

// EnvPrefix starts the name of every environment override, as in
// LLVMINST_LOG_LEVEL=debug.
const EnvPrefix = "LLVMINST_"

// Duration is a time.Duration written as "1m30s" in config files.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Log struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // text or json
}

type Parser struct {
	MaxInputLength int `toml:"max_input_length" yaml:"max_input_length"`
}

type Batch struct {
	Workers  int      `toml:"workers" yaml:"workers"`
	Timeout  Duration `toml:"timeout" yaml:"timeout"` // zero means none
	FailFast bool     `toml:"fail_fast" yaml:"fail_fast"`
}

type Store struct {
	Path string `toml:"path" yaml:"path"` // empty disables the results database
}

type Graph struct {
	Dir     string `toml:"dir" yaml:"dir"`
	Replace bool   `toml:"replace" yaml:"replace"`
}

// Config is the whole settings file.
type Config struct {
	Log    Log    `toml:"log" yaml:"log"`
	Parser Parser `toml:"parser" yaml:"parser"`
	Batch  Batch  `toml:"batch" yaml:"batch"`
	Store  Store  `toml:"store" yaml:"store"`
	Graph  Graph  `toml:"graph" yaml:"graph"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Log:    Log{Level: "info", Format: "text"},
		Parser: Parser{MaxInputLength: parser.DefaultMaxInputLength},
		Batch:  Batch{Workers: runtime.NumCPU()},
		Graph:  Graph{Dir: "."},
	}
}

// Load reads path over the defaults, picking the format from the file
// extension, then applies environment overrides. An empty path loads only
// the defaults and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".toml":
			md, err := toml.Decode(string(data), &cfg)
			if err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return cfg, fmt.Errorf("parse %s: unknown key %s", path, undecoded[0])
			}
		case ".yaml", ".yml":
			dec := yaml.NewDecoder(strings.NewReader(string(data)))
			dec.KnownFields(true)
			if err := dec.Decode(&cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		default:
			return cfg, fmt.Errorf("config %s: unsupported format %q", path, ext)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	num := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	num("MAX_INPUT_LENGTH", &c.Parser.MaxInputLength)
	num("WORKERS", &c.Batch.Workers)
	str("STORE_PATH", &c.Store.Path)
	str("GRAPH_DIR", &c.Graph.Dir)
	if v, ok := lookup(EnvPrefix + "TIMEOUT"); ok {
		if err := c.Batch.Timeout.UnmarshalText([]byte(v)); err != nil {
			errs = append(errs, fmt.Errorf("%sTIMEOUT: %w", EnvPrefix, err))
		}
	}
	return errors.Join(errs...)
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log format %q: want text or json", c.Log.Format))
	}
	if c.Parser.MaxInputLength <= 0 {
		errs = append(errs, fmt.Errorf("max_input_length must be positive, got %d", c.Parser.MaxInputLength))
	}
	if c.Batch.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Batch.Workers))
	}
	if c.Batch.Timeout.Duration < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %s", c.Batch.Timeout))
	}
	return errors.Join(errs...)
}

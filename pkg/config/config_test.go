package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "llvminst.toml", `
[log]
level = "debug"
format = "json"

[batch]
workers = 3
timeout = "1m30s"
fail_fast = true

[store]
path = "runs.db"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Batch.Workers != 3 || cfg.Batch.Timeout.Duration != 90*time.Second || !cfg.Batch.FailFast {
		t.Errorf("batch = %+v", cfg.Batch)
	}
	if cfg.Store.Path != "runs.db" {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.Parser.MaxInputLength != Default().Parser.MaxInputLength {
		t.Errorf("unset key lost its default: %+v", cfg.Parser)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "llvminst.yaml", "log:\n  level: warn\ngraph:\n  dir: out\n  replace: true\nbatch:\n  workers: 2\n  timeout: 5s\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Graph.Dir != "out" || !cfg.Graph.Replace {
		t.Errorf("graph = %+v", cfg.Graph)
	}
	if cfg.Batch.Timeout.Duration != 5*time.Second {
		t.Errorf("timeout = %v", cfg.Batch.Timeout)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name, file, content, want string
	}{
		{"unknown toml key", "a.toml", "[log]\ncolour = true\n", "unknown key log.colour"},
		{"unknown yaml key", "a.yaml", "log:\n  colour: true\n", "colour"},
		{"bad duration", "a.toml", "[batch]\ntimeout = \"soon\"\n", "soon"},
		{"bad level", "a.toml", "[log]\nlevel = \"loud\"\n", `unknown log level "loud"`},
		{"bad workers", "a.toml", "[batch]\nworkers = 0\n", "workers must be positive"},
		{"bad format", "a.json", "{}", "unsupported format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"LOG_LEVEL", "trace")
	t.Setenv(EnvPrefix+"WORKERS", "7")
	t.Setenv(EnvPrefix+"TIMEOUT", "2s")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "trace" || cfg.Batch.Workers != 7 || cfg.Batch.Timeout.Duration != 2*time.Second {
		t.Errorf("cfg = %+v", cfg)
	}

	t.Setenv(EnvPrefix+"WORKERS", "many")
	if _, err := Load(""); err == nil || !strings.Contains(err.Error(), "LLVMINST_WORKERS") {
		t.Errorf("err = %v", err)
	}
}

func TestDurationText(t *testing.T) {
	d := Duration{90 * time.Second}
	text, _ := d.MarshalText()
	if string(text) != "1m30s" {
		t.Errorf("MarshalText = %q", text)
	}
}

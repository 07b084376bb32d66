package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	c, err := New(NewViper())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Output != "text" || c.Width != 60 || c.Threads != 0 || c.LogFormat != "text" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("ALNEDIT_OUTPUT", "JSON")
	t.Setenv("ALNEDIT_NO_HEADER", "true")
	c, err := New(NewViper())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Output != "json" || !c.NoHeader {
		t.Fatalf("env not applied: %+v", c)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alnedit.yaml")
	if err := os.WriteFile(path, []byte("output: yaml\nwidth: 20\nkeep-going: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	v := NewViper()
	if err := ReadFile(v, path); err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	c, err := New(v)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Output != "yaml" || c.Width != 20 || !c.KeepGoing {
		t.Fatalf("file not applied: %+v", c)
	}
}

func TestReadFileMissing(t *testing.T) {
	if err := ReadFile(NewViper(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	base := Config{Output: "text", Width: 60, LogFormat: "text"}
	tests := []struct {
		name    string
		mut     func(*Config)
		wantErr string
	}{
		{"ok", func(*Config) {}, ""},
		{"bad output", func(c *Config) { c.Output = "xml" }, "invalid --output"},
		{"zero width", func(c *Config) { c.Width = 0 }, "--width"},
		{"negative threads", func(c *Config) { c.Threads = -1 }, "--threads"},
		{"bad log format", func(c *Config) { c.LogFormat = "logfmt" }, "--log-format"},
		{"quiet and verbose", func(c *Config) { c.Quiet, c.Verbose = true, true }, "conflicts"},
	}
	for _, tc := range tests {
		c := base
		tc.mut(&c)
		err := c.Validate()
		if tc.wantErr == "" {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
			t.Errorf("%s: err = %v, want substring %q", tc.name, err, tc.wantErr)
		}
	}
}

func TestValidateMessages(t *testing.T) {
	tests := []struct {
		mut  func(*Config)
		want string
	}{
		{func(c *Config) { c.Output = "xml" }, `invalid --output "xml" (want fasta | json | jsonl | text | yaml)`},
		{func(c *Config) { c.Width = 0 }, "--width must be >= 1"},
		{func(c *Config) { c.Threads = -1 }, "--threads must be >= 0"},
	}
	for _, tc := range tests {
		c, err := New(NewViper())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		tc.mut(&c)
		if err := c.Validate(); err == nil || err.Error() != tc.want {
			t.Errorf("Validate() = %v, want %q", err, tc.want)
		}
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/production-optimizer/internal/config"
	"github.com/spf13/pflag"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LoggingConfig
		override  string
		expectErr bool
	}{
		{"Defaults", config.LoggingConfig{}, "", false},
		{"Console debug", config.LoggingConfig{Level: "debug", Format: "console"}, "", false},
		{"Override wins", config.LoggingConfig{Level: "bogus"}, "warn", false},
		{"Invalid level", config.LoggingConfig{Level: "verbose"}, "", true},
		{"Invalid format", config.LoggingConfig{Format: "xml"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.cfg, tt.override)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_ = logger.Sync()
		})
	}
}

func TestInitializeLoggerOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "optimizer.log")

	logger, err := initializeLogger(config.LoggingConfig{OutputFile: path}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("expected log line in file, got %q", string(data))
	}
}

func parseSolveFlags(t *testing.T, args ...string) (*pflag.FlagSet, *solveOptions) {
	t.Helper()
	opts := &solveOptions{}
	flags := pflag.NewFlagSet("solve", pflag.ContinueOnError)
	addSolveFlags(flags, opts)
	if err := flags.Parse(args); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	return flags, opts
}

func TestRunSolvePretty(t *testing.T) {
	configPath := filepath.Join("..", "..", "test", "test_config.yaml")
	flags, opts := parseSolveFlags(t, "--config", configPath, "--log-level", "error")

	var buf bytes.Buffer
	if err := runSolve(&buf, flags, opts); err != nil {
		t.Fatalf("runSolve returned error: %v", err)
	}

	out := buf.String()
	for _, expected := range []string{"Meja    | 2", "Kursi   | 101", "Rp 31,800,000"} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected output to contain %q\n%s", expected, out)
		}
	}
}

func TestRunSolveOverrides(t *testing.T) {
	configPath := filepath.Join("..", "..", "test", "test_config.yaml")
	flags, opts := parseSolveFlags(t,
		"--config", configPath,
		"--log-level", "error",
		"--prefer-multiple-tables=false",
		"--hours", "240",
		"--wood", "120",
		"--output-format", "csv",
	)

	var buf bytes.Buffer
	if err := runSolve(&buf, flags, opts); err != nil {
		t.Fatalf("runSolve returned error: %v", err)
	}

	if !strings.Contains(buf.String(), `"1","77","23850000.00","160.00","119.50","yes"`) {
		t.Errorf("expected (1, 77) to be selected in CSV output")
	}
}

func TestRunSolveCornerJSON(t *testing.T) {
	configPath := filepath.Join("..", "..", "test", "test_config.yaml")
	flags, opts := parseSolveFlags(t,
		"--config", configPath,
		"--log-level", "error",
		"--policy", "corner",
		"--corner-profit", "vertex",
		"--output-format", "json",
	)

	var buf bytes.Buffer
	if err := runSolve(&buf, flags, opts); err != nil {
		t.Fatalf("runSolve returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"policy": "corner"`) || !strings.Contains(out, `"profit": 32000000`) {
		t.Errorf("expected corner vertex profit in JSON output\n%s", out)
	}
}

func TestRunSolveErrors(t *testing.T) {
	configPath := filepath.Join("..", "..", "test", "test_config.yaml")

	tests := []struct {
		name string
		args []string
	}{
		{"Missing config", []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}},
		{"Bad output format", []string{"--config", configPath, "--output-format", "xml"}},
		{"Bad policy", []string{"--config", configPath, "--policy", "simplex"}},
		{"Bad log level", []string{"--config", configPath, "--log-level", "loud"}},
		{"Bad preference", []string{"--config", configPath, "--prefer-when", "x >"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, opts := parseSolveFlags(t, tt.args...)
			var buf bytes.Buffer
			if err := runSolve(&buf, flags, opts); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	root := newRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != version {
		t.Fatalf("expected %q, got %q", version, buf.String())
	}
}

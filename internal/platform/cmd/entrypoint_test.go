package cmd

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Dir  string `env:"CMD_TEST_DIR" envDefault:"saves"`
	Mode string `env:"CMD_TEST_MODE" envDefault:"repl"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_DIR", "env-dir")
	t.Setenv("CMD_TEST_MODE", "env-mode")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef, ""); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.Dir, "dir", cfgRef.Dir, "dir")
	fs.StringVar(&cfgRef.Mode, "mode", cfgRef.Mode, "mode")

	if err := ParseArgs(fs, []string{"-dir", "flag-dir"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.Dir != "flag-dir" {
		t.Fatalf("expected flag value for dir, got %q", cfgRef.Dir)
	}
	if cfgRef.Mode != "env-mode" {
		t.Fatalf("expected env default mode, got %q", cfgRef.Mode)
	}
}

func TestParseConfigLoadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("CMD_TEST_MODE=script\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("CMD_TEST_MODE", "")
	os.Unsetenv("CMD_TEST_MODE")

	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef, path); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfgRef.Mode != "script" {
		t.Fatalf("mode = %q, want script", cfgRef.Mode)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil, ""); err == nil {
		t.Fatal("expected nil target to be rejected")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestEnvFileFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"absent", []string{"-verbose"}, ".env"},
		{"separate value", []string{"-env-file", "x.env"}, "x.env"},
		{"equals", []string{"--env-file=y.env"}, "y.env"},
		{"dangling", []string{"-env-file"}, ".env"},
		{"positional lookalike", []string{"env-file", "z.env"}, ".env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnvFileFromArgs(tt.args, ".env"); got != tt.want {
				t.Fatalf("env file = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunWithTelemetry(t *testing.T) {
	t.Setenv("STATUS_TRACKER_OTEL_ENDPOINT", "")

	called := false
	err := RunWithTelemetry(context.Background(), ServiceTracker, RunOptions{}, func(context.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !called {
		t.Fatal("expected run to be called")
	}

	want := errors.New("boom")
	err = RunWithTelemetry(context.Background(), ServiceTracker, RunOptions{}, func(context.Context) error {
		return want
	})
	if !errors.Is(err, want) {
		t.Fatalf("error = %v, want %v", err, want)
	}
}

func TestRunWithTelemetryValidatesInput(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), " ", RunOptions{}, func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected empty service to be rejected")
	}
	if err := RunWithTelemetry(context.Background(), ServiceTracker, RunOptions{}, nil); err == nil {
		t.Fatal("expected nil run to be rejected")
	}
}

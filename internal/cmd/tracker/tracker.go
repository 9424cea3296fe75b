// Package tracker wires configuration, telemetry and the interactive
// session for the status tracker command.
package tracker

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	platformcmd "github.com/louisbranch/status-tracker/internal/platform/cmd"
	"github.com/louisbranch/status-tracker/internal/tracker/command"
	"github.com/louisbranch/status-tracker/internal/tracker/roster"
	"github.com/louisbranch/status-tracker/internal/tracker/savefile"
	"github.com/louisbranch/status-tracker/internal/tracker/script"
)

const defaultEnvFile = ".env"

// Config holds tracker command configuration.
type Config struct {
	SavesDir string `env:"STATUS_TRACKER_SAVES_DIR" envDefault:"saves"`
	Script   string `env:"STATUS_TRACKER_SCRIPT"`
	Locale   string `env:"STATUS_TRACKER_LOCALE"    envDefault:"en-US"`
	Verbose  bool   `env:"STATUS_TRACKER_VERBOSE"`
	EnvFile  string `env:"STATUS_TRACKER_ENV_FILE"  envDefault:".env"`
	Prompt   string `env:"STATUS_TRACKER_PROMPT"    envDefault:"> "`
}

// ParseConfig reads the dotenv file, then env, then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	fallback := os.Getenv("STATUS_TRACKER_ENV_FILE")
	if strings.TrimSpace(fallback) == "" {
		fallback = defaultEnvFile
	}
	envFile := platformcmd.EnvFileFromArgs(args, fallback)

	var cfg Config
	if err := platformcmd.ParseConfig(&cfg, envFile); err != nil {
		return Config{}, err
	}
	cfg.EnvFile = envFile

	fs.StringVar(&cfg.SavesDir, "saves-dir", cfg.SavesDir, "directory holding save files")
	fs.StringVar(&cfg.Script, "script", cfg.Script, "path to a lua encounter script to run instead of the interactive session")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for error messages")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every command to stderr")
	fs.StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "dotenv file loaded before reading the environment")
	fs.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "interactive prompt")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the tracker command: a script when one is configured,
// otherwise an interactive session reading commands from in.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, errOut io.Writer) error {
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	logger := log.New(errOut, "", 0)
	interp := command.New(roster.New(), command.Config{
		Saves:   savefile.NewStore(cfg.SavesDir),
		Logger:  logger,
		Verbose: cfg.Verbose,
	})

	options := platformcmd.RunOptions{Logger: logger}
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceTracker, options, func(ctx context.Context) error {
		if cfg.Script != "" {
			runner := script.NewRunner(interp, cfg.Locale)
			if err := runner.RunFile(ctx, cfg.Script); err != nil {
				return fmt.Errorf("script %s: %w", cfg.Script, err)
			}
			_, err := io.WriteString(out, interp.Render())
			return err
		}

		session := NewSession(interp, SessionConfig{
			Locale: cfg.Locale,
			Prompt: cfg.Prompt,
			Out:    out,
		})
		return session.Run(ctx, in)
	})
}

// Package command interprets one-line tracker commands against a roster.
package command

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/status-tracker/internal/platform/errors"
	"github.com/louisbranch/status-tracker/internal/tracker/roster"
	"github.com/louisbranch/status-tracker/internal/tracker/savefile"
)

const tracerName = "github.com/louisbranch/status-tracker/internal/tracker/command"

// Config controls interpreter behavior.
type Config struct {
	// Saves is where save/load read and write. Defaults to savefile.DefaultDir.
	Saves   *savefile.Store
	Logger  *log.Logger
	Verbose bool
}

// Interpreter dispatches command lines to roster operations. Each call runs
// to completion; it is not safe for concurrent use.
type Interpreter struct {
	roster  *roster.Roster
	saves   *savefile.Store
	logger  *log.Logger
	verbose bool
	tracer  trace.Tracer
}

type handler func(ctx context.Context, in *Interpreter, args []string) (string, error)

var handlers = map[Verb]handler{
	VerbAddEntity:    addEntity,
	VerbRemoveEntity: removeEntity,
	VerbAddEffect:    addEffect,
	VerbRemoveEffect: removeEffect,
	VerbDamage:       damage,
	VerbHeal:         heal,
	VerbClear:        clearRoster,
	VerbSave:         save,
	VerbLoad:         load,
	VerbHelp:         help,
}

// New builds an interpreter over r. A nil roster starts empty.
func New(r *roster.Roster, cfg Config) *Interpreter {
	if r == nil {
		r = roster.New()
	}
	saves := cfg.Saves
	if saves == nil {
		saves = savefile.NewStore("")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Interpreter{
		roster:  r,
		saves:   saves,
		logger:  logger,
		verbose: cfg.Verbose,
		tracer:  otel.Tracer(tracerName),
	}
}

// Roster returns the roster the interpreter mutates.
func (in *Interpreter) Roster() *roster.Roster {
	return in.roster
}

// Render returns the current roster summary.
func (in *Interpreter) Render() string {
	return in.roster.Render()
}

// Execute runs one command line and returns its success message. Validation
// failures are reported before the roster is touched.
func (in *Interpreter) Execute(ctx context.Context, line string) (string, error) {
	token, args := Tokenize(line)
	verb, ok := Resolve(token)

	spanName := "command"
	if ok {
		spanName = "command " + string(verb)
	}
	ctx, span := in.tracer.Start(ctx, spanName, trace.WithAttributes(
		attribute.String("command.verb", string(verb)),
		attribute.Int("command.args", len(args)),
	))
	defer span.End()

	msg, err := in.dispatch(ctx, token, verb, ok, args)
	if err != nil {
		code := apperrors.GetCode(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, string(code))
		if code.IsUserInput() {
			in.logf("command %q rejected: %v", line, err)
		} else {
			in.logf("command %q failed: %v", line, err)
		}
		return "", err
	}
	in.logf("command %q: %s", line, msg)
	return msg, nil
}

func (in *Interpreter) dispatch(ctx context.Context, token string, verb Verb, known bool, args []string) (string, error) {
	if !known {
		return "", apperrors.WithMetadata(apperrors.CodeUnknownCommand, "unknown command", map[string]string{
			"Verb": token,
		})
	}
	def, _ := lookup(verb)
	if len(args) < def.minArgs {
		return "", apperrors.WithMetadata(apperrors.CodeMissingArguments, "not enough arguments", map[string]string{
			"Verb":  string(verb),
			"Usage": def.usage,
		})
	}
	return handlers[verb](ctx, in, args)
}

func (in *Interpreter) logf(format string, args ...any) {
	if !in.verbose || in.logger == nil {
		return
	}
	in.logger.Printf(format, args...)
}

func addEntity(_ context.Context, in *Interpreter, args []string) (string, error) {
	team := roster.TeamUnknown
	if len(args) > 1 {
		team = roster.ParseTeam(args[1])
	}
	if err := in.roster.AddEntity(args[0], team); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added entity %s (%s)", args[0], team), nil
}

func removeEntity(_ context.Context, in *Interpreter, args []string) (string, error) {
	n := in.roster.RemoveEntity(args[0])
	return fmt.Sprintf("Removed %s", countNoun(n, "entity", "entities")), nil
}

func addEffect(_ context.Context, in *Interpreter, args []string) (string, error) {
	length, err := parseLength(args[1])
	if err != nil {
		return "", err
	}
	effect := roster.StatusEffect{
		Name: args[0],
		Duration: roster.Duration{
			Length: length,
			Unit:   roster.ParseDurationUnit(args[2]),
		},
	}
	n := in.roster.AddEffect(effect, args[3:])
	return fmt.Sprintf("Added effect %s to %s", effect.Name, countNoun(n, "entity", "entities")), nil
}

func removeEffect(_ context.Context, in *Interpreter, args []string) (string, error) {
	n := in.roster.RemoveEffect(args[0], args[1:])
	return fmt.Sprintf("Removed %s named %s", countNoun(n, "effect", "effects"), args[0]), nil
}

func damage(_ context.Context, in *Interpreter, args []string) (string, error) {
	amount, err := parseNumber("amount", args[0])
	if err != nil {
		return "", err
	}
	n := in.roster.Damage(amount, args[1:])
	return fmt.Sprintf("Damaged %s by %d", countNoun(n, "entity", "entities"), amount), nil
}

func heal(_ context.Context, in *Interpreter, args []string) (string, error) {
	amount, err := parseNumber("amount", args[0])
	if err != nil {
		return "", err
	}
	n := in.roster.Heal(amount, args[1:])
	return fmt.Sprintf("Healed %s by %d", countNoun(n, "entity", "entities"), amount), nil
}

func clearRoster(_ context.Context, in *Interpreter, _ []string) (string, error) {
	in.roster.Clear()
	return "Cleared entities", nil
}

func save(ctx context.Context, in *Interpreter, args []string) (string, error) {
	filter := savefile.ParseFilter(args[0])
	_, span := in.tracer.Start(ctx, "savefile.save", trace.WithAttributes(
		attribute.String("savefile.name", args[1]),
		attribute.String("savefile.filter", filter.String()),
	))
	defer span.End()

	n, err := in.saves.Save(args[1], filter, in.roster.Entities())
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	span.SetAttributes(attribute.Int("savefile.entities", n))
	return fmt.Sprintf("Saved %s to %s (%s)", filter, args[1], countNoun(n, "entity", "entities")), nil
}

func load(ctx context.Context, in *Interpreter, args []string) (string, error) {
	_, span := in.tracer.Start(ctx, "savefile.load", trace.WithAttributes(
		attribute.String("savefile.name", args[0]),
	))
	defer span.End()

	entities, err := in.saves.Load(args[0])
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	in.roster.Append(entities...)
	span.SetAttributes(attribute.Int("savefile.entities", len(entities)))
	return fmt.Sprintf("Loaded %s from %s", countNoun(len(entities), "entity", "entities"), args[0]), nil
}

func help(_ context.Context, _ *Interpreter, args []string) (string, error) {
	if len(args) > 0 {
		if verb, ok := Resolve(args[0]); ok {
			return Usage(verb), nil
		}
	}
	names := make([]string, 0, len(verbTable))
	for _, verb := range Verbs() {
		names = append(names, string(verb))
	}
	return "Valid Commands: " + strings.Join(names, ", ") + ". Use help <command> for more info", nil
}

func countNoun(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

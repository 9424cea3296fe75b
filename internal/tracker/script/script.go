// Package script runs Lua encounter scripts against a command interpreter.
//
// Scripts see a global `tracker` table:
//
//	tracker.exec(line)    -- runs a command, raises on failure, returns the message
//	tracker.try(line)     -- runs a command, returns ok, message
//	tracker.render()      -- returns the roster summary
//	tracker.names()       -- returns an array of entity names
//	tracker.damage(name)  -- returns damage taken, raises if no such entity
//	tracker.effects(name) -- returns an array of {name, length, unit}
package script

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shopify/go-lua"

	apperrors "github.com/louisbranch/status-tracker/internal/platform/errors"
	"github.com/louisbranch/status-tracker/internal/tracker/command"
)

const globalName = "tracker"

// Runner binds an interpreter to Lua scripts.
type Runner struct {
	interp *command.Interpreter
	locale string
	ctx    context.Context
}

// NewRunner returns a runner that executes commands through interp and
// formats command errors for locale.
func NewRunner(interp *command.Interpreter, locale string) *Runner {
	return &Runner{interp: interp, locale: locale}
}

// RunFile executes the Lua file at path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	state := r.newState(ctx)
	if err := lua.LoadFile(state, path, ""); err != nil {
		return fmt.Errorf("load lua: %w", err)
	}
	if err := state.ProtectedCall(0, 0, 0); err != nil {
		return fmt.Errorf("run lua: %w", err)
	}
	return nil
}

// RunString executes Lua source. name labels the chunk in error messages.
func (r *Runner) RunString(ctx context.Context, name, source string) error {
	state := r.newState(ctx)
	if err := state.Load(strings.NewReader(source), name, ""); err != nil {
		return fmt.Errorf("load lua: %w", err)
	}
	if err := state.ProtectedCall(0, 0, 0); err != nil {
		return fmt.Errorf("run lua: %w", err)
	}
	return nil
}

func (r *Runner) newState(ctx context.Context) *lua.State {
	r.ctx = ctx
	state := lua.NewState()
	lua.OpenLibraries(state)

	state.NewTable()
	lua.SetFunctions(state, []lua.RegistryFunction{
		{Name: "exec", Function: r.exec},
		{Name: "try", Function: r.try},
		{Name: "render", Function: r.render},
		{Name: "names", Function: r.names},
		{Name: "damage", Function: r.damage},
		{Name: "effects", Function: r.effects},
	}, 0)
	state.SetGlobal(globalName)
	return state
}

func (r *Runner) execute(line string) (string, error) {
	ctx := r.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.interp.Execute(ctx, line)
}

func (r *Runner) exec(state *lua.State) int {
	line := lua.CheckString(state, 1)
	msg, err := r.execute(line)
	if err != nil {
		lua.Errorf(state, "%s: %s", line, apperrors.UserMessage(err, r.locale))
		return 0
	}
	state.PushString(msg)
	return 1
}

func (r *Runner) try(state *lua.State) int {
	line := lua.CheckString(state, 1)
	msg, err := r.execute(line)
	if err != nil {
		state.PushBoolean(false)
		state.PushString(apperrors.UserMessage(err, r.locale))
		return 2
	}
	state.PushBoolean(true)
	state.PushString(msg)
	return 2
}

func (r *Runner) render(state *lua.State) int {
	state.PushString(r.interp.Render())
	return 1
}

func (r *Runner) names(state *lua.State) int {
	names := r.interp.Roster().MatchableNames()
	state.CreateTable(len(names), 0)
	for i, name := range names {
		state.PushString(name)
		state.RawSetInt(-2, i+1)
	}
	return 1
}

func (r *Runner) damage(state *lua.State) int {
	name := lua.CheckString(state, 1)
	entity, err := r.interp.Roster().Entity(name)
	if err != nil {
		lua.Errorf(state, "%s", apperrors.UserMessage(err, r.locale))
		return 0
	}
	state.PushInteger(int(entity.DamageTaken))
	return 1
}

func (r *Runner) effects(state *lua.State) int {
	name := lua.CheckString(state, 1)
	entity, err := r.interp.Roster().Entity(name)
	if err != nil {
		lua.Errorf(state, "%s", apperrors.UserMessage(err, r.locale))
		return 0
	}
	state.CreateTable(len(entity.StatusEffects), 0)
	for i, effect := range entity.StatusEffects {
		state.CreateTable(0, 3)
		state.PushString(effect.Name)
		state.SetField(-2, "name")
		state.PushInteger(int(effect.Duration.Length))
		state.SetField(-2, "length")
		state.PushString(effect.Duration.Unit.String())
		state.SetField(-2, "unit")
		state.RawSetInt(-2, i+1)
	}
	return 1
}

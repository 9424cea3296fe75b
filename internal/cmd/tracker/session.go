package tracker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/status-tracker/internal/platform/errors"
	"github.com/louisbranch/status-tracker/internal/tracker/command"
)

const banner = "Enter Commands, use help <command> for more info"

// SessionConfig controls an interactive session.
type SessionConfig struct {
	Locale string
	Prompt string
	Out    io.Writer
}

// Session feeds lines to an interpreter and prints results. Besides tracker
// commands it understands:
//
//	history  list previously submitted commands
//	!N       run history entry N again
//	quit     end the session
//
// A line ending in a tab asks for completion of its last word.
type Session struct {
	interp  *command.Interpreter
	locale  string
	prompt  string
	out     io.Writer
	history []string
}

// NewSession returns a session over interp.
func NewSession(interp *command.Interpreter, cfg SessionConfig) *Session {
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}
	return &Session{
		interp: interp,
		locale: cfg.Locale,
		prompt: cfg.Prompt,
		out:    out,
	}
}

// History returns the submitted commands, oldest first.
func (s *Session) History() []string {
	return append([]string(nil), s.history...)
}

// Run reads lines from in until EOF, "quit", or ctx is done.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	fmt.Fprintln(s.out, banner)
	for {
		fmt.Fprint(s.out, s.prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return nil
		case raw, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out)
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if !s.handle(ctx, raw) {
				return nil
			}
		}
	}
}

// handle processes one raw line and reports whether the session continues.
func (s *Session) handle(ctx context.Context, raw string) bool {
	if strings.HasSuffix(raw, "\t") {
		s.complete(strings.TrimRight(raw, "\t"))
		return true
	}

	line := strings.TrimSpace(raw)
	switch {
	case line == "":
		return true
	case line == "quit" || line == "exit":
		return false
	case line == "history":
		s.printHistory()
		return true
	case strings.HasPrefix(line, "!"):
		recalled, ok := s.recall(line[1:])
		if !ok {
			fmt.Fprintf(s.out, "ERROR: No history entry %s\n", line[1:])
			return true
		}
		fmt.Fprintln(s.out, recalled)
		line = recalled
	}

	s.history = append(s.history, line)
	msg, err := s.interp.Execute(ctx, line)
	if err != nil {
		fmt.Fprintln(s.out, "ERROR: "+apperrors.UserMessage(err, s.locale))
	} else {
		fmt.Fprintln(s.out, msg)
	}
	if render := s.interp.Render(); render != "" {
		fmt.Fprintln(s.out)
		fmt.Fprint(s.out, render)
	}
	return true
}

func (s *Session) complete(line string) {
	completed, ok := s.interp.Complete(line)
	if !ok {
		fmt.Fprintln(s.out, "No unique completion")
		return
	}
	fmt.Fprintln(s.out, completed)
}

func (s *Session) printHistory() {
	for i, entry := range s.history {
		fmt.Fprintf(s.out, "%d  %s\n", i+1, entry)
	}
}

func (s *Session) recall(ref string) (string, bool) {
	if ref == "!" {
		if len(s.history) == 0 {
			return "", false
		}
		return s.history[len(s.history)-1], true
	}
	n, err := strconv.Atoi(ref)
	if err != nil || n < 1 || n > len(s.history) {
		return "", false
	}
	return s.history[n-1], true
}

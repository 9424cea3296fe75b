package command

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/louisbranch/status-tracker/internal/tracker/roster"
)

// Complete extends the last word of line when exactly one entity name or
// verb starts with it, ignoring case. It reports false when the word is
// empty, unknown or ambiguous.
func (in *Interpreter) Complete(line string) (string, bool) {
	candidates := in.roster.MatchableNames()
	for _, verb := range Verbs() {
		candidates = append(candidates, string(verb))
	}
	return complete(line, candidates)
}

func complete(line string, candidates []string) (string, bool) {
	if line == "" {
		return "", false
	}
	if last, _ := utf8.DecodeLastRuneInString(line); unicode.IsSpace(last) {
		return "", false
	}
	fields := strings.Fields(line)
	word := fields[len(fields)-1]
	prefix := strings.ToLower(word)

	match := ""
	found := false
	for _, candidate := range candidates {
		if !strings.HasPrefix(strings.ToLower(candidate), prefix) {
			continue
		}
		if found && !roster.SameName(candidate, match) {
			return "", false
		}
		match = candidate
		found = true
	}
	if !found {
		return "", false
	}
	return line[:len(line)-len(word)] + match, true
}

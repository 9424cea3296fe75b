// Package savefile persists rosters as flat text files, one entity per line
// in the form name|team_code. Only names and teams are stored.
package savefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/status-tracker/internal/platform/errors"
	"github.com/louisbranch/status-tracker/internal/tracker/roster"
)

const (
	// DefaultDir is where saves live unless configured otherwise.
	DefaultDir = "saves"

	fileExt   = ".txt"
	separator = "|"
)

// Filter selects which entities a save includes.
type Filter struct {
	All  bool
	Team roster.Team
}

// ParseFilter reads a team argument. "all" and anything that is not a known
// team select every entity.
func ParseFilter(s string) Filter {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return Filter{All: true}
	}
	team := roster.ParseTeam(s)
	if team == roster.TeamUnknown {
		return Filter{All: true}
	}
	return Filter{Team: team}
}

// Match reports whether entity passes the filter.
func (f Filter) Match(entity roster.Entity) bool {
	return f.All || entity.Team == f.Team
}

// String names the selection for user messages.
func (f Filter) String() string {
	if f.All {
		return "all entities"
	}
	return f.Team.String()
}

// Store reads and writes save files under a directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir, or DefaultDir when dir is empty.
func NewStore(dir string) *Store {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultDir
	}
	return &Store{dir: dir}
}

// Dir returns the directory saves are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path for a save name. Names are bare file stems.
func (s *Store) Path(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed == "." || strings.Contains(trimmed, "..") ||
		strings.ContainsAny(trimmed, `/\`) || filepath.IsAbs(trimmed) {
		return "", apperrors.WithMetadata(apperrors.CodeInvalidFilename, "invalid save name", map[string]string{
			"File": name,
		})
	}
	return filepath.Join(s.dir, trimmed+fileExt), nil
}

// Save writes every entity matching filter to the named save, replacing any
// existing file, and returns how many entities were written.
func (s *Store) Save(name string, filter Filter, entities []roster.Entity) (int, error) {
	path, err := s.Path(name)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return 0, ioFailure(s.dir, err)
	}

	var buf strings.Builder
	written, err := Encode(&buf, filter, entities)
	if err != nil {
		if apperrors.GetCode(err) == apperrors.CodeInvalidSaveFormat {
			return 0, err
		}
		return 0, ioFailure(path, err)
	}
	if err := os.WriteFile(path, []byte(buf.String()), 0o644); err != nil {
		return 0, ioFailure(path, err)
	}
	return written, nil
}

// Load reads the named save. A malformed line fails the whole load.
func (s *Store) Load(name string) ([]roster.Entity, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, ioFailure(path, err)
	}
	defer f.Close()

	entities, err := Decode(f)
	if err != nil {
		var domainErr *apperrors.Error
		if errors.As(err, &domainErr) && domainErr.Code == apperrors.CodeInvalidSaveFormat {
			domainErr.Metadata["File"] = path
			return nil, domainErr
		}
		return nil, ioFailure(path, err)
	}
	return entities, nil
}

// Encode writes matching entities as name|team_code lines. A matching name
// containing the separator could not be read back, so nothing is written and
// the error is InvalidSaveFormat.
func Encode(w io.Writer, filter Filter, entities []roster.Entity) (int, error) {
	for _, entity := range entities {
		if filter.Match(entity) && strings.Contains(entity.Name, separator) {
			return 0, apperrors.WithMetadata(apperrors.CodeInvalidSaveFormat, "entity name contains separator", map[string]string{
				"Name": entity.Name,
			})
		}
	}
	bw := bufio.NewWriter(w)
	written := 0
	for _, entity := range entities {
		if !filter.Match(entity) {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s%s%s\n", entity.Name, separator, entity.Team.Code()); err != nil {
			return written, err
		}
		written++
	}
	return written, bw.Flush()
}

// Decode parses name|team_code lines. Blank lines are skipped; any other
// line without exactly one separator is an InvalidSaveFormat error.
func Decode(r io.Reader) ([]roster.Entity, error) {
	var entities []roster.Entity
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, separator)
		if len(fields) != 2 || fields[0] == "" {
			return nil, apperrors.WithMetadata(apperrors.CodeInvalidSaveFormat, "invalid save line", map[string]string{
				"Line": strconv.Itoa(lineNumber),
			})
		}
		entities = append(entities, roster.NewEntity(fields[0], roster.ParseTeam(fields[1])))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entities, nil
}

func ioFailure(path string, err error) error {
	return apperrors.WrapWithMetadata(apperrors.CodeIOFailure, "save file access", map[string]string{
		"File": path,
	}, err)
}

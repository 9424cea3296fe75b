package command

import (
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/status-tracker/internal/platform/errors"
)

// noLength stands in for an omitted effect length.
const noLength = "-"

// Tokenize splits a line into a verb and its arguments. Runs of whitespace
// count as one separator.
func Tokenize(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// parseNumber parses every numeric command field: a base-10 integer in
// [0, 65535].
func parseNumber(field, value string) (uint16, error) {
	n, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return 0, apperrors.WrapWithMetadata(apperrors.CodeInvalidNumber, "invalid "+field, map[string]string{
			"Field": field,
			"Value": value,
		}, err)
	}
	return uint16(n), nil
}

// parseLength is parseNumber with "-" accepted as zero.
func parseLength(value string) (uint16, error) {
	if value == noLength {
		return 0, nil
	}
	return parseNumber("length", value)
}

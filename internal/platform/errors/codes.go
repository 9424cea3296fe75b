// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Command errors
	CodeMissingArguments Code = "MISSING_ARGUMENTS"
	CodeUnknownCommand   Code = "UNKNOWN_COMMAND"
	CodeInvalidNumber    Code = "INVALID_NUMBER"

	// Roster errors
	CodeDuplicateEntity Code = "DUPLICATE_ENTITY"
	CodeEntityNotFound  Code = "ENTITY_NOT_FOUND"

	// Save file errors
	CodeInvalidSaveFormat Code = "INVALID_SAVE_FORMAT"
	CodeInvalidFilename   Code = "INVALID_FILENAME"
	CodeIOFailure         Code = "IO_FAILURE"
)

// Codes lists every known code in a stable order.
func Codes() []Code {
	return []Code{
		CodeMissingArguments,
		CodeUnknownCommand,
		CodeInvalidNumber,
		CodeDuplicateEntity,
		CodeEntityNotFound,
		CodeInvalidSaveFormat,
		CodeInvalidFilename,
		CodeIOFailure,
	}
}

// IsUserInput reports whether the code describes a malformed command rather
// than a failure of roster state or the filesystem.
func (c Code) IsUserInput() bool {
	switch c {
	case CodeMissingArguments,
		CodeUnknownCommand,
		CodeInvalidNumber,
		CodeInvalidFilename:
		return true
	default:
		return false
	}
}

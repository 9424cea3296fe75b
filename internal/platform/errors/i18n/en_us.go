package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeMissingArguments  = "MISSING_ARGUMENTS"
	CodeUnknownCommand    = "UNKNOWN_COMMAND"
	CodeInvalidNumber     = "INVALID_NUMBER"
	CodeDuplicateEntity   = "DUPLICATE_ENTITY"
	CodeEntityNotFound    = "ENTITY_NOT_FOUND"
	CodeInvalidSaveFormat = "INVALID_SAVE_FORMAT"
	CodeInvalidFilename   = "INVALID_FILENAME"
	CodeIOFailure         = "IO_FAILURE"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Command errors
		CodeMissingArguments: "Not enough arguments, usage: {{.Usage}}",
		CodeUnknownCommand:   "Unrecognized command{{if .Verb}} {{.Verb}}{{end}}, use help to list commands",
		CodeInvalidNumber:    "{{.Field}} must be a whole number between 0 and 65535, got {{.Value}}",

		// Roster errors
		CodeDuplicateEntity: "This entity already exists: {{.Name}}",
		CodeEntityNotFound:  "No entity named {{.Name}}",

		// Save file errors
		CodeInvalidSaveFormat: "{{if .Name}}Cannot save {{.Name}}: names containing | cannot be stored{{else}}Invalid save file {{.File}}, line {{.Line}}: expected name|team{{end}}",
		CodeInvalidFilename:   "Invalid save name {{.File}}",
		CodeIOFailure:         "Could not access {{.File}}: {{.Cause}}",
	},
}

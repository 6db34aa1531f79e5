package logging

// Field name constants for structured logging. Using constants prevents
// typos across call sites.
const (
	// Common fields.
	FieldError    = "error"
	FieldPath     = "path"
	FieldTemplate = "template"
	FieldOutput   = "output"
	FieldFiles    = "files"

	// Render fields.
	FieldTitle        = "title"
	FieldVariables    = "variables"
	FieldPlaceholders = "placeholders"
	FieldFlavor       = "flavor"
	FieldSanitize     = "sanitize"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)

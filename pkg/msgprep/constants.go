package msgprep

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Run completed successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (wrong argument count, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration or flags
	ExitIOError      = 20 // Input unreadable or destination not writable
	ExitSchemaError  = 21 // Missing columns or inconsistent category encoding
	ExitValueError   = 22 // Non-numeric category value
)

const (
	// DefaultIDColumn is the column both sources are joined on.
	DefaultIDColumn = "id"

	// DefaultMessageColumn holds the message text; it is the deduplication key.
	DefaultMessageColumn = "message"

	// DefaultCategoriesColumn holds the raw category-encoding string.
	DefaultCategoriesColumn = "categories"

	// DefaultDelimiter separates fields in the input files.
	DefaultDelimiter = ','

	// DefaultPostgresTable is the relation name used when the destination is a
	// PostgreSQL URL and no table was given.
	DefaultPostgresTable = "messages"

	// DefaultTimeout bounds a whole run end to end.
	DefaultTimeout = 10 * time.Minute

	// TokenSeparator joins category tokens in the encoding string.
	TokenSeparator = ";"

	// NameValueSeparator splits a category token into name and value.
	NameValueSeparator = "-"
)

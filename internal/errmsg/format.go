// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Storage operations
	OpStorageOpen  Op = "open filter storage"
	OpStorageClose Op = "close filter storage"

	// Filter operations
	OpFiltersLoad   Op = "load saved filters"
	OpFiltersSave   Op = "save filters"
	OpFiltersShow   Op = "show filters"
	OpFiltersUpdate Op = "update filters"
	OpFiltersPurge  Op = "forget saved filters"

	// Argument parsing
	OpParseCategory Op = "parse filter category"
	OpParseTag      Op = "parse tag"
	OpParsePrice    Op = "parse price range"
	OpParseValue    Op = "parse filter value"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpLogOpen    Op = "open log file"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

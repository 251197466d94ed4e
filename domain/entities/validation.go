package entities

// ValidationResult represents the outcome of linting a configuration document.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// ValidationError represents a specific validation error.
type ValidationError struct {
	// Field is the JSON pointer of the offending value, e.g. "/target/version".
	Field   string
	Message string
}

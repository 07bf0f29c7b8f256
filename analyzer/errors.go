package analyzer

// AnalyzerError is a custom error type for analyzer-related errors
type AnalyzerError string

// Error implements the error interface
func (e AnalyzerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilGame AnalyzerError = "game cannot be nil"
)

//nolint:revive // types is a standard Go package name pattern
package types

// ErrorType categorizes a failed search for display.
type ErrorType string

const (
	ErrorTypeNetwork ErrorType = "network"
	ErrorTypeAPI     ErrorType = "api"
	ErrorTypeParsing ErrorType = "parsing"
	ErrorTypeUnknown ErrorType = "unknown"
)

// AppError is the user-facing classification of a failed search.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
}

func (e *AppError) Error() string {
	return string(e.Type) + ": " + e.Message
}

// Title returns the heading shown above the error message.
func (e *AppError) Title() string {
	switch e.Type {
	case ErrorTypeNetwork:
		return "Network Error"
	case ErrorTypeAPI:
		return "Service Error"
	case ErrorTypeParsing:
		return "Unexpected Response"
	default:
		return "Something Went Wrong"
	}
}

package catalog

import "errors"

var (
	ErrTransport    = errors.New("catalog request failed")
	ErrDecode       = errors.New("catalog response is not valid json")
	ErrDeleteFailed = errors.New("Recipe could not be deleted.")
	ErrEmptyID      = errors.New("recipe id is required")
)

// APIError is an application-level failure: the catalog answered but flagged
// the payload with an error field.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "catalog rejected the request"
	}
	return e.Message
}

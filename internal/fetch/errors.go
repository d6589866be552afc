package fetch

import "errors"

// Fetch error taxonomy. The presenter collapses all of them into one generic
// error notification; the distinction is kept for diagnostics.
var (
	ErrInvalidURL  = errors.New("invalid URL")
	ErrRequest     = errors.New("request failed")
	ErrInvalidData = errors.New("response has no data")
	ErrDecode      = errors.New("failed to decode response")
)

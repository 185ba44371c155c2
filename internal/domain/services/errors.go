package services

import "fmt"

// ParseError indicates a payload that is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FormatError indicates well-formed JSON whose shape matched none of the
// recognized payload kinds.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string { return e.Message }

// FetchError indicates a failed single-endpoint request: a non-2xx response,
// a network failure, or a response body that did not parse.
type FetchError struct {
	URL     string
	Status  int
	Message string
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Message)
}

// NoScanDataError indicates that auto-discovery completed but no candidate
// endpoint yielded usable scan data.
type NoScanDataError struct {
	Base string
}

func (e *NoScanDataError) Error() string {
	return fmt.Sprintf("could not load scan data from %s/scan or base URL", e.Base)
}

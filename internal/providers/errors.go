package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when a decorator has no inner provider.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ConnectionError marks a transport-level failure reaching the upstream
// sports-data source: the request never completed, or it completed with a
// non-success status. Callers treat it as retryable; every other provider
// error degrades to "no data" instead of surfacing to the user.
type ConnectionError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ConnectionError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: unable to reach sports data API (status=%d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: unable to reach sports data API: %v", e.Provider, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// AsConnectionError attempts to unwrap an error into a ConnectionError.
func AsConnectionError(err error) (*ConnectionError, bool) {
	var connErr *ConnectionError
	if errors.As(err, &connErr) {
		return connErr, true
	}
	return nil, false
}

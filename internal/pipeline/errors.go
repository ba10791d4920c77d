package pipeline

import (
	"errors"
	"fmt"
)

// ErrDisabled is returned by Submit once any earlier call has failed.
var ErrDisabled = errors.New("pipeline disabled")

// ErrThrottled is returned when a request is still throttled after
// Config.MaxThrottleRetries retries.
var ErrThrottled = errors.New("throttle retries exhausted")

// StatusError is returned for a non-2xx, non-429 response.
type StatusError struct {
	Request    string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", e.Request, e.StatusCode, e.Status)
}

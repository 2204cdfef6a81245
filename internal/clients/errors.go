package clients

import (
	"errors"
	"fmt"
)

// ServiceError reports that the prediction service could not produce a
// result: transport failure, timeout, unexpected status or an unusable body.
type ServiceError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("emotion service %s (status %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("emotion service %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func IsServiceError(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}

package gateway

import "fmt"

// RemoteError is any transport or backend failure, labeled with the
// attempted action so the operator knows what did not happen. The
// backend's own message is appended when it supplies one.
type RemoteError struct {
	Action  string
	Status  int
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("failed to %s: %s", e.Action, e.Message)
	}
	return fmt.Sprintf("failed to %s", e.Action)
}

func (e *RemoteError) Unwrap() error { return e.Err }

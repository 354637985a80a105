package controller

// ValidationError is a local input problem. Nothing was sent to the
// backend and the form is left exactly as the operator typed it.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Confirmer asks the operator to approve a destructive action. A false
// answer is a plain decline, not an error.
type Confirmer func(message string) (bool, error)

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

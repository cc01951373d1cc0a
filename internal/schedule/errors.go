package schedule

import (
	"errors"
	"fmt"

	"schedule-assistant/internal/model"
)

// Domain-specific errors for the schedule package.
var (
	ErrEmptyInput    = errors.New("input text is empty")
	ErrNoDestination = errors.New("no calendar available to create into")
	ErrNotAuthorized = errors.New("calendar access not granted")
	ErrInvalidIntent = errors.New("intent is invalid")
)

// NotFoundError indicates fuzzy resolution found zero candidates for a
// modify/delete intent.
type NotFoundError struct {
	Target model.TargetKind
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no matching %s found", e.Target)
}

// IsNotFound reports whether err is a resolution miss.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

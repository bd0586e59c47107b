package leave

import "errors"

var ErrInvalidTransition = errors.New("leave request status is final")

// Transition validates a status change. Requests move from pending to
// approved or rejected exactly once; there is no route back to pending.
func Transition(current, next string) (string, error) {
	if current != StatusPending {
		return "", ErrInvalidTransition
	}
	switch next {
	case StatusApproved, StatusRejected:
		return next, nil
	}
	return "", ErrInvalidTransition
}

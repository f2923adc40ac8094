package agentmatch

import (
	"errors"
	"fmt"

	"github.com/venn-social/vennd/pkg/collision"
)

var (
	// ErrMissionNotFound is returned when a mission result references an
	// unknown mission id. The queue never invents ids, so this is a
	// programmer error, not a retryable condition.
	ErrMissionNotFound = errors.New("mission not found")

	// ErrMatchNotFound is returned when a match action references an
	// unknown match id.
	ErrMatchNotFound = errors.New("match not found")

	// ErrNotParticipant is returned when the acting user is not one of the
	// match's two participants.
	ErrNotParticipant = errors.New("acting user is not a match participant")

	// ErrMatchClosed is returned when a match action arrives after the
	// match left pending_accept.
	ErrMatchClosed = errors.New("match already resolved")
)

// Policy denials. Each wraps collision.ErrMissionDenied so the promoter can
// tell "refused, stop" from "broken, retry".
var (
	// ErrCooldownActive denies a mission while the user pair is cooling
	// down from a previous mission or match outcome.
	ErrCooldownActive = fmt.Errorf("%w: user pair is cooling down", collision.ErrMissionDenied)

	// ErrPairInFlight denies a mission while another launcher holds the
	// pair's single-flight lock.
	ErrPairInFlight = fmt.Errorf("%w: interview already in flight for circle pair", collision.ErrMissionDenied)

	// ErrPairAlreadyQueued denies a mission when a live mission for the
	// circle pair already exists in the queue.
	ErrPairAlreadyQueued = fmt.Errorf("%w: live mission already exists for circle pair", collision.ErrMissionDenied)

	// ErrPairNotEligible denies a mission when the pair's collision row is
	// past the launchable statuses (already claimed, matched, or expired).
	ErrPairNotEligible = fmt.Errorf("%w: collision is not in a launchable status", collision.ErrMissionDenied)
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

package hoyo

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recognized application-level failure categories.
// Everything else surfaces as *APIError with the raw retcode and message.
var (
	// ErrDataNotPublic means the player has not enabled the queried feature
	// in their privacy settings.
	ErrDataNotPublic = errors.New("battle chronicle data is not public")

	// ErrInvalidCookies means the stored cookie is no longer accepted.
	ErrInvalidCookies = errors.New("cookies are invalid or expired")

	// ErrAlreadyClaimed means today's daily reward was claimed earlier.
	ErrAlreadyClaimed = errors.New("daily reward already claimed")

	// ErrAccountNotFound means no game account is bound for the requested game.
	ErrAccountNotFound = errors.New("game account not found")
)

// APIError is an application-level failure the API categorized itself,
// carrying the numeric retcode and human-readable message from the envelope.
type APIError struct {
	Retcode int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: retcode %d: %s", e.Retcode, e.Message)
}

// apiError reduces a non-zero envelope retcode to the error taxonomy.
func apiError(retcode int, message string) error {
	switch retcode {
	case 10102:
		return fmt.Errorf("%w: %s", ErrDataNotPublic, message)
	case -100, 10001, 10103:
		return fmt.Errorf("%w: %s", ErrInvalidCookies, message)
	case -5003:
		return fmt.Errorf("%w: %s", ErrAlreadyClaimed, message)
	case -10002:
		return fmt.Errorf("%w: %s", ErrAccountNotFound, message)
	default:
		return &APIError{Retcode: retcode, Message: message}
	}
}

package domain

import "errors"

var (
	ErrMeetingNotFound  = errors.New("meeting not found")
	ErrInvalidMeetingID = errors.New("invalid meeting id")
	ErrTitleRequired    = errors.New("title is required")
	ErrTimeRequired     = errors.New("time is required")
	ErrInvalidTime      = errors.New("invalid time format")
	ErrTimeInPast       = errors.New("meeting time cannot be in the past")
	ErrVoterRequired    = errors.New("voter id is required")

	ErrShortenerUnavailable = errors.New("url shortener unavailable")
)

// IsValidation reports whether err is a caller-input precondition failure,
// as opposed to a missing meeting or a dependency failure.
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrInvalidMeetingID,
		ErrTitleRequired,
		ErrTimeRequired,
		ErrInvalidTime,
		ErrTimeInPast,
		ErrVoterRequired,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

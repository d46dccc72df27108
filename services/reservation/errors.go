package reservation

import "errors"

var (
	// ErrSessionNotFound means the session id has no live entry (expired or never created).
	ErrSessionNotFound = errors.New("reservation session not found or expired")
	// ErrUnknownSport means the sport id is not in the sport list.
	ErrUnknownSport = errors.New("unknown sport")
	// ErrInvalidDate means the date string could not be parsed.
	ErrInvalidDate = errors.New("invalid date")
	// ErrIncompleteSelection means commit was attempted without sport, date and at least one slot.
	ErrIncompleteSelection = errors.New("selection requires a sport, a date and at least one time slot")
)

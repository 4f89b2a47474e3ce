package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPollNotFound  = errors.New("poll not found")
	ErrPollNotActive = errors.New("poll is not active")
	ErrPollExpired   = errors.New("poll has expired")
	ErrAlreadyVoted  = errors.New("this address has already voted")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInternal      = errors.New("internal server error")
)

// ErrValidation is the parent of every input validation failure. The HTTP
// boundary matches on it with errors.Is, never on message text.
var ErrValidation = errors.New("invalid poll data")

var (
	ErrEmptyTitle        = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	ErrTooFewOptions     = fmt.Errorf("%w: at least 2 options are required", ErrValidation)
	ErrEmptyOptionText   = fmt.Errorf("%w: option text cannot be empty", ErrValidation)
	ErrDeadlineNotFuture = fmt.Errorf("%w: deadline must be in the future", ErrValidation)
	ErrInvalidOption     = fmt.Errorf("%w: option does not belong to this poll", ErrValidation)
)

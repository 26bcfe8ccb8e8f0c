package apperrors

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotCreator       = errors.New("only the project creator may do this")
	ErrAlreadyMember    = errors.New("already a member")
	ErrNotMember        = errors.New("not a member")
	ErrProjectFull      = errors.New("project is full")
	ErrConfirmRequired  = errors.New("confirmation required")
)

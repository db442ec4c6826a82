package domain

import "errors"

// Domain errors.
var (
	ErrEmptyDescription   = errors.New("description cannot be empty")
	ErrInvalidTimestamp   = errors.New("invalid timestamp")
	ErrReminderAfterDue   = errors.New("reminder must not be later than the due date")
	ErrInvalidFilter      = errors.New("invalid filter")
	ErrInvalidSortKey     = errors.New("invalid sort key")
	ErrInvalidItemKind    = errors.New("invalid item kind")
	ErrNilItem            = errors.New("item cannot be nil")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAuthNotConfigured  = errors.New("credentials not configured (run 'todo config init' and 'todo config hash-password')")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrConfigExists       = errors.New("config file already exists")
	ErrEmptyPassword      = errors.New("password cannot be empty")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrAborted            = errors.New("aborted by user")
	ErrEmptyFile          = errors.New("file is empty")
	ErrNoItemsInFile      = errors.New("no items found in file")
)

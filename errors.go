package rumagent

import "errors"

var (
	ErrEmptyStorageKey      = errors.New("rumagent.empty_storage_key")
	ErrEmptyCollectorURL    = errors.New("rumagent.empty_collector_url")
	ErrInvalidSessionWindow = errors.New("rumagent.invalid_session_window")
	ErrNotStarted           = errors.New("rumagent.not_started")
)

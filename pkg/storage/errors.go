package storage

import "errors"

var (
	// ErrEngineFailure wraps errors reported by the underlying engine.
	ErrEngineFailure = errors.New("storage.engine_failure")

	// ErrProbeFailed indicates the native engine did not return the probe value.
	ErrProbeFailed = errors.New("storage.probe_failed")
)

// Package logger builds log/slog loggers for the agent and its CLI.
//
// New returns a *slog.Logger configured through functional options: JSON or
// text output, level, static attributes and values pulled from the context of
// each record. WithEnvironment applies presets for development (text, debug)
// and staging/production (JSON, info).
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "rumagent"),
//	    logger.WithContextValue("visitor", visitorKey{}),
//	)
//	log.InfoContext(ctx, "page view sent", logger.SessionID(info.ID))
//
// Attribute helpers (Error, Component, SessionID, StorageKind, ...) keep key
// names consistent across packages. Components that receive no logger use
// Discard.
package logger

package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// StorageKind records which storage backend is in use.
func StorageKind(kind string) slog.Attr {
	return slog.String("storage_kind", kind)
}

// StorageKey records a key of the persisted blob.
func StorageKey(key string) slog.Attr {
	return slog.String("storage_key", key)
}

// SessionID records the session identifier under the key "session_id".
func SessionID(id string) slog.Attr {
	return slog.String("session_id", id)
}

// SiteID records the tracked site identifier.
func SiteID(id string) slog.Attr {
	return slog.String("site_id", id)
}

// Method records the beacon HTTP method.
func Method(m string) slog.Attr {
	return slog.String("method", m)
}

// URL records a target URL.
func URL(u string) slog.Attr {
	return slog.String("url", u)
}

// Browser records the visitor's browser, e.g. "IE/9.0".
func Browser(name string) slog.Attr {
	return slog.String("browser", name)
}

// Attempts records how many polling attempts were made.
func Attempts(n int) slog.Attr {
	return slog.Int("attempts", n)
}

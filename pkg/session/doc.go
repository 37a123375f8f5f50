// Package session tracks a visitor's monitoring session.
//
// A session is identified by a random base-36 ID and a start time, both kept
// in a storage.Backend together with the interaction step (how many page views
// the session has recorded) and the returning visitor flag.
//
// # Life-cycle
//
// Manager.Info decides on every call:
//
//   - nothing stored: a new session starts, the visitor is not returning;
//   - the session started longer than Lifetime ago: a new session starts and the
//     visitor is returning when that old start lies within ReturningVisitorWindow;
//   - otherwise the stored session is returned unchanged.
//
// Sessions are never deleted. An expired one is simply replaced on the next
// Info call.
//
// # Usage
//
//	store := storage.Select(ctx, storage.Config{Key: "pa"}, native, jar)
//	manager := session.New(store, session.WithConfig(session.DefaultConfig()))
//
//	info := manager.Info(ctx)       // stamp the page view with info.Fields()
//	manager.BumpInteractionStep(ctx) // the next page view records step+1
//
// # Configuration
//
// Config carries env tags, so it can be loaded with pkg/config:
// RUM_SESSION_ID_LENGTH, RUM_SESSION_LIFETIME, RUM_RETURNING_VISITOR_WINDOW
// and RUM_AGENT_VERSION.
package session

// Package storage persists the agent's state in a single key-value blob.
//
// The Backend interface is what the rest of the agent uses: Get, Set and
// Remove over short string keys, with no error returns. Storage implements it
// by keeping the whole map, encoded with kvcodec, in one slot of an Engine.
//
// # Engines
//
// Two variants exist:
//
//   - native: a persistent key-value store. MemoryStore keeps items in
//     process memory, RedisStore keeps them in Redis under a namespace.
//   - cookie: CookieStore keeps items in one cookie of a CookieJar and moves
//     the cookie expiry forward on every write. Path, domain, Secure and
//     SameSite are the jar's defaults (see cookie.NewFromConfig).
//
// # Selection
//
// Select probes the native engine once: it writes the "<key>_enabled"
// sentinel and reads it back. Engines that fail the write or silently drop it
// are rejected and the cookie variant is used instead. A successful probe leaves
// the sentinel in place so later loads skip the write.
//
//	store := storage.Select(ctx, storage.Config{
//	    Key:                    "pa",
//	    ReturningVisitorWindow: 30 * 24 * time.Hour,
//	}, storage.NewMemoryStore(), cookie.NewDocument(nil))
//
//	store.Set(ctx, "sid", "k2j4h5g6")
//	id := store.Get(ctx, "sid")
//
// Concurrent writers sharing one slot race: each write replaces the whole blob
// and the last one wins.
package storage

// Package rumagent is the core of a real-user-monitoring agent running on
// behalf of a single visitor.
//
// The agent owns the visitor's session identity, the new versus returning
// visitor status and an interaction step counter carried across page views.
// State lives in one durable key-value blob: a native storage engine when one
// is available and passes a write/read-back probe, a cookie otherwise. Beacons
// are delivered to a remote collector over HTTP, or as image pixel requests
// for legacy browsers.
//
// Basic Usage:
//
//	agent, err := rumagent.New(rumagent.DefaultConfig(),
//		rumagent.WithCookieJar(cookie.NewDocument(time.Now)),
//		rumagent.WithUserAgent(userAgent),
//	)
//	if err != nil {
//		return err
//	}
//
//	if !agent.Start(ctx) {
//		return nil // unsupported environment
//	}
//
//	info, err := agent.TrackPageView(ctx, transport.Payload{
//		"title": "Home",
//		"path":  "https://example.com/",
//	})
//
// Configuration:
//
// Config carries env tags and can be loaded with pkg/config:
//
//	RUM_STORAGE_KEY               slot name, "pa"
//	RUM_SITE_ID                   tracked site id
//	RUM_COLLECTOR_URL             beacon endpoint
//	RUM_FORCE_FALLBACK            image requests only
//	RUM_SESSION_ID_LENGTH         session id length, 8
//	RUM_SESSION_LIFETIME          30m
//	RUM_RETURNING_VISITOR_WINDOW  720h
//	RUM_AGENT_VERSION             version stamped on beacons
//
// Modules:
//
// Modules registered with WithModules run once after Start, in order. They
// receive the agent and use its accessors, for example to track the first page
// view once metrics are ready:
//
//	rumagent.WithModules(func(ctx context.Context, a *rumagent.Agent) {
//		_, _ = a.TrackPageViewWhenReady(ctx, metricsReady, collectMetrics)
//	})
//
// Storage, transport and site id failures never surface to the host. They are
// logged through the *slog.Logger passed with WithLogger.
package rumagent

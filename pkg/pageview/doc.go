// Package pageview turns a collected page record into a page view beacon.
//
// Tracker.Track stamps the record with the current session (ID, start time,
// interaction step, returning visitor flag, agent version), bumps the stored
// interaction step and sends the result as a GET beacon. The recorded step is
// the value before the bump, so the first view of a session reports step 1.
//
// Browsers fill navigation timing fields asynchronously. Await polls a ready
// check at a fixed interval with a bounded number of attempts and gives up with
// ErrNotReady instead of waiting forever:
//
//	info, err := tracker.TrackWhenReady(ctx,
//	    func(ctx context.Context) bool { return timing.LoadEventEnd > 0 },
//	    func(ctx context.Context) transport.Payload { return collect(timing) },
//	)
//
// Collecting the record itself (screen data, timing offsets) happens outside
// this package.
package pageview

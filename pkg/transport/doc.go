// Package transport delivers beacons to the RUM collector.
//
// A Sender merges the site identifier into every payload as the "id" field
// (payload fields win on conflict) and sends it:
//
//   - GET: the payload is encoded with kvcodec and appended to the collector
//     URL as the query string. The same string is sent as the request body.
//   - POST: the payload is sent as a JSON body.
//
// When no HTTP client is configured, the fallback is forced, or the visitor
// runs Internet Explorer 9 or older, the beacon is sent as an image request
// to the query URL instead. Only flat fields make it into that URL.
//
// Delivery is fire-and-forget: there are no retries and failures only show up
// in debug logs.
//
//	sender := transport.New("//rum.example.com/img/beacon.gif", resolver.SiteID,
//	    transport.WithHTTPClient(&http.Client{Timeout: 5 * time.Second}),
//	    transport.WithUserAgent(r.UserAgent()),
//	)
//	sender.Get(ctx, transport.Payload{"s": "nt", "title": "Home"})
package transport

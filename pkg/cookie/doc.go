// Package cookie emulates the cookie store a browser exposes to page scripts.
//
// A Document behaves like document.cookie: writes take a full Set-Cookie line
// (name, value and attributes), reads return the "name=value; ..." list of the
// cookies that are still alive. Expiry is evaluated lazily against an injectable
// clock, so a cookie written with an Expires date disappears from reads once
// the clock passes that date.
//
// The agent's cookie storage fallback writes through this type when it is not
// running inside a real browser, for example in the rumagent CLI or in tests.
//
// # Usage
//
//	doc := cookie.NewDocument(nil, cookie.WithPath("/"))
//
//	doc.Set("pa", "sid%3Dabc", cookie.WithExpires(time.Now().Add(24*time.Hour)))
//	doc.SetCookie("theme=dark; Path=/")
//
//	header := doc.Cookie() // "pa=sid%3Dabc; theme=dark"
//
//	doc.Delete("theme")
//
// Default attributes can be loaded from the environment via Config and
// NewFromConfig.
//
// # Errors
//
//   - ErrCookieNotFound – Get on a missing or expired cookie
package cookie

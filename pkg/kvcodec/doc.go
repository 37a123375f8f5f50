// Package kvcodec serializes flat string maps to and from a single delimited
// string: `&`-joined `key=value` pairs with percent-encoded values.
//
// The format is the one used for the agent's persisted blob and for GET beacon
// query strings, so it is compatible with encodeURIComponent on the browser side.
//
// # Usage
//
//	s := kvcodec.Encode(map[string]string{"sid": "abc12345", "sis": "2"})
//	// s == "sid=abc12345&sis=2"
//
//	m := kvcodec.Decode(s)
//	// m["sis"] == "2"
//
// Decode never fails: empty or corrupt input yields an empty map.
//
// The Raw variants skip percent-encoding. They are for embedders whose values
// already live inside another encoded context and would otherwise be encoded
// twice; the agent itself always uses Encode and Decode.
package kvcodec

// Package siteid resolves the identifier of the site the agent reports for.
//
// The id normally comes from the agent configuration. Pages that still embed
// the previous integration snippet load the agent with an empty id and leave
// the id in a global marker instead, either as a command queue
//
//	[["id", "50600a6468e53d4e3e000001"], ...]
//
// or as an object
//
//	{"id": "50600a6468e53d4e3e000001"}
//
// Resolver keeps the primary path trivial and treats those markers as
// fallback strategies (LegacyMarker, LegacyJSON). When a fallback produces
// the id, it is cached for the rest of the page's lifetime and "r1" is written
// to storage so collectors can tell both integration paths apart.
package siteid

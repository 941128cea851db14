// Package pkguid provides helpers for generating unique identifiers.
//
// The codebase uses the StringID interface to avoid hard-coding a specific
// UID strategy; the only current implementation generates UUIDs, used for
// request correlation IDs.
package pkguid

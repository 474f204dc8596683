// Package api implements the HTTP transport for the Yummly recipe API.
//
// It handles request URL assembly (credentials and search parameters as
// query-string pairs), the timeout/retry loop, JSON decoding into wire
// types, and mapping of HTTP failures to typed errors. The public yummly
// package wraps this into the user-facing SDK surface.
package api

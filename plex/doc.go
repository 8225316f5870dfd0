// Package plex provides a minimal client for the Plex media server HTTP API.
//
// Only the two read paths the backlog report needs are implemented: listing
// library sections and listing the shows of a section with their episode
// counts. Every request authenticates with the X-Plex-Token query parameter
// and asks for JSON via the Accept header.
//
// Errors are terminal by design: a transport failure or non-2xx status is
// reported with the failing URL (token redacted) and aborts the run, there
// is no retry layer. Non-2xx responses surface as *APIError with the status
// code and body for classification.
package plex

// Package api is the single point of outbound network access for the
// learnly client.
//
// # Overview
//
// The package provides:
//  1. Client — a generic JSON/multipart pipeline rooted at the backend base
//     URL. Every outgoing request reads the current bearer token from a
//     TokenSource and attaches it as an Authorization header; requests
//     proceed unmodified when no token is stored.
//  2. Error — the normalized envelope every rejected request is converted
//     to: {Status, Message, Detail, Err}. Status-specific messages are
//     assigned for 400/401/403/404/423; anything else keeps
//     DefaultErrorMessage. A request that produced no response at all maps
//     to status 500 with the transport failure wrapped.
//  3. AuthAPI and CourseAPI — typed endpoint groups over Client.
//
// # Error Handling
//
// Callers match conditions with errors.Is: ErrSessionExpired (401) and
// ErrUnavailable (no response). The transport itself never clears stored
// credentials and never forces navigation; reacting to an expired session
// is the session manager's policy.
package api

// Package cli implements the interactive terminal client for the learnly
// platform: a small REPL over the session manager and the course API.
//
// Commands are line-oriented, read from stdin, and answered on stdout.
// All failures surface through reportError, which also applies the
// session-expired policy: an expired session detected on any request wipes
// the stored credentials and drops the user back to the login flow.
package cli

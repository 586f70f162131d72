// Package session holds the client's authentication state.
//
// The package splits into a pure half and an orchestrating half:
//
//   - State/Event/Reduce form the state machine. Reduce is a pure function
//     over a sealed event set; it maintains the invariant that
//     IsAuthenticated holds exactly when both User and Token are present.
//   - Manager owns the single State instance for the process lifetime. It
//     dispatches Start before each auth call, invokes the API, writes
//     through to the session store on success, and dispatches the terminal
//     event. Errors are recorded in the state and re-raised to the caller.
//
// Hydration is one-shot: Manager.Hydrate flips the hydrated flag, then
// restores token and user from the store if both are present.
//
// The session-expired policy lives here, not in the transport: callers that
// receive api.ErrSessionExpired from any endpoint route it to
// Manager.Expire, which clears the store and the in-memory session.
package session

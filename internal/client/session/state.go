package session

import "github.com/amelnikov/learnly/internal/client/models"

// ErrorInfo is the last authentication-related failure. A zero value means
// no error.
type ErrorInfo struct {
	Status  int
	Message string
}

// State is an immutable snapshot of the client session.
//
// IsAuthenticated holds exactly when both User and Token are set; Reduce
// maintains that invariant on every transition. IsLoading and Err vary
// independently of it.
type State struct {
	User            *models.User
	Token           string
	IsLoading       bool
	IsAuthenticated bool
	Err             ErrorInfo
}

// Initial is the state the machine starts in. IsLoading begins true so
// consumers wait for hydration before acting on an apparently-empty session.
func Initial() State {
	return State{IsLoading: true}
}

// Event is the sealed set of session transitions.
type Event interface {
	isEvent()
}

// Start marks an authentication operation as in flight and clears the error.
type Start struct{}

// Success installs an authenticated session.
type Success struct {
	User  models.User
	Token string
}

// Failure records a failed authentication attempt and clears the session.
type Failure struct {
	Status  int
	Message string
}

// Logout clears the session and the error.
type Logout struct{}

// UpdateUser merges a partial user record into the current one.
type UpdateUser struct {
	Partial models.User
}

// ClearError resets the error, leaving everything else untouched.
type ClearError struct{}

// SetLoading overrides the loading flag.
type SetLoading struct {
	Value bool
}

// UpdateError records an error without touching the session.
type UpdateError struct {
	Status  int
	Message string
}

func (Start) isEvent()       {}
func (Success) isEvent()     {}
func (Failure) isEvent()     {}
func (Logout) isEvent()      {}
func (UpdateUser) isEvent()  {}
func (ClearError) isEvent()  {}
func (SetLoading) isEvent()  {}
func (UpdateError) isEvent() {}

// Reduce is the pure transition function: it maps a state and an event to
// the next state and performs no side effects.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case Start:
		s.IsLoading = true
		s.Err = ErrorInfo{}

	case Success:
		user := ev.User
		s.IsLoading = false
		s.IsAuthenticated = true
		s.User = &user
		s.Token = ev.Token
		s.Err = ErrorInfo{}

	case Failure:
		s.IsLoading = false
		s.IsAuthenticated = false
		s.User = nil
		s.Token = ""
		s.Err = ErrorInfo{Status: ev.Status, Message: ev.Message}

	case Logout:
		s.IsAuthenticated = false
		s.User = nil
		s.Token = ""
		s.Err = ErrorInfo{}

	case UpdateUser:
		if s.User != nil {
			merged := s.User.Merge(ev.Partial)
			s.User = &merged
		}

	case ClearError:
		s.Err = ErrorInfo{}

	case SetLoading:
		s.IsLoading = ev.Value

	case UpdateError:
		s.Err = ErrorInfo{Status: ev.Status, Message: ev.Message}
	}

	return s
}

package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/amelnikov/learnly/internal/client/api"
	"github.com/amelnikov/learnly/internal/client/models"
	"github.com/amelnikov/learnly/internal/client/repositories/sessionstore"
	"github.com/amelnikov/learnly/internal/logging"
)

// ErrNotAuthenticated is returned by operations that require a current user.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthClient is the slice of the API surface the manager needs.
// Implemented by api.AuthAPI.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	UpdateProfile(ctx context.Context, user models.User) (*models.AuthResponse, error)
}

// Manager bridges callers to the session state machine and its
// collaborators. It owns the single live State instance, calls the auth
// API, and writes through to the session store on success.
//
// Network calls run outside the state lock, so two overlapping Login calls
// race exactly as documented: the last one to complete determines the final
// state. There is deliberately no generation guard.
type Manager struct {
	auth  AuthClient
	store *sessionstore.Store
	log   logging.Logger

	mu       sync.Mutex
	state    State
	hydrated bool

	now func() time.Time
}

// NewManager creates a Manager in the initial (loading, not hydrated) state.
func NewManager(auth AuthClient, store *sessionstore.Store, log logging.Logger) *Manager {
	return &Manager{
		auth:  auth,
		store: store,
		log:   log,
		state: Initial(),
		now:   time.Now,
	}
}

func (m *Manager) dispatch(e Event) {
	m.mu.Lock()
	m.state = Reduce(m.state, e)
	m.mu.Unlock()
}

// State returns the current session snapshot.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Hydrated reports whether restoration from the store has been attempted.
func (m *Manager) Hydrated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hydrated
}

// Hydrate restores the session from the store, once. The hydrated flag is
// flipped before storage is touched; a second call is a no-op. A stored
// token whose expiry claim has already passed is discarded instead of
// restored, so the user lands on a clean login prompt rather than on the
// first rejected request.
func (m *Manager) Hydrate(ctx context.Context) {
	m.mu.Lock()
	if m.hydrated {
		m.mu.Unlock()
		return
	}
	m.hydrated = true
	m.mu.Unlock()

	token := m.store.Token(ctx)
	user := m.store.User(ctx)

	if token != "" && user != nil && !tokenExpired(token, m.now()) {
		m.log.Info(ctx, "session restored from store", "email", user.Email)
		m.dispatch(Success{User: *user, Token: token})
		return
	}
	if token != "" || user != nil {
		m.store.Clear(ctx)
	}
	m.dispatch(SetLoading{Value: false})
}

// Login authenticates with email and password. On success the session is
// persisted and installed; on failure the state records the envelope's
// status and message and the error is returned so the caller can map
// specific statuses to field-level hints.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.dispatch(Start{})

	resp, err := m.auth.Login(ctx, email, password)
	if err != nil {
		status, message := envelopeInfo(err)
		if errors.Is(err, api.ErrSessionExpired) {
			m.store.Clear(ctx)
		}
		m.dispatch(Failure{Status: status, Message: message})
		return err
	}

	m.store.SaveSession(ctx, resp.Token, resp.User)
	m.dispatch(Success{User: resp.User, Token: resp.Token})
	m.log.Info(ctx, "login succeeded", "email", resp.User.Email)
	return nil
}

// Register creates an account and installs the resulting session, with the
// same persist-on-success and re-raise-on-failure behavior as Login.
func (m *Manager) Register(ctx context.Context, email, password, firstName, lastName string) error {
	m.dispatch(Start{})

	req := models.RegisterRequest{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	}
	resp, err := m.auth.Register(ctx, req)
	if err != nil {
		status, message := envelopeInfo(err)
		m.dispatch(Failure{Status: status, Message: message})
		return err
	}

	m.store.SaveSession(ctx, resp.Token, resp.User)
	m.dispatch(Success{User: resp.User, Token: resp.Token})
	m.log.Info(ctx, "registration succeeded", "email", resp.User.Email)
	return nil
}

// Logout clears the store and the session. It is local and always succeeds.
func (m *Manager) Logout(ctx context.Context) {
	m.store.Clear(ctx)
	m.dispatch(Logout{})
}

// UpdateUser merges partial into the current user, submits the merged
// record, and on success persists and installs the server's copy. The
// session state is left untouched on failure; the error is returned to the
// caller.
func (m *Manager) UpdateUser(ctx context.Context, partial models.User) error {
	current := m.State().User
	if current == nil {
		return ErrNotAuthenticated
	}

	merged := current.Merge(partial)
	resp, err := m.auth.UpdateProfile(ctx, merged)
	if err != nil {
		return err
	}

	m.store.SetUser(ctx, resp.User)
	m.dispatch(UpdateUser{Partial: resp.User})
	return nil
}

// Expire is the session-expired policy applied when any request on the
// shared transport reports ErrSessionExpired: wipe the store and record the
// failure so consumers fall back to the login flow. Safe to call when
// already unauthenticated.
func (m *Manager) Expire(ctx context.Context) {
	m.store.Clear(ctx)
	m.dispatch(Failure{Status: 401, Message: "Session expired. Please login again."})
	m.log.Warn(ctx, "session expired, local credentials cleared")
}

// ClearError resets the recorded error.
func (m *Manager) ClearError() {
	m.dispatch(ClearError{})
}

// SetLoading overrides the loading flag.
func (m *Manager) SetLoading(v bool) {
	m.dispatch(SetLoading{Value: v})
}

// envelopeInfo extracts status and message from an API error envelope,
// falling back to a generic 500 for anything else.
func envelopeInfo(err error) (int, string) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Status, apiErr.Message
	}
	return 500, "Unknown error"
}

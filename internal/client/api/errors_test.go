package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_String(t *testing.T) {
	err := &Error{Status: 404, Message: "Resource not found."}
	assert.Equal(t, "api error 404: Resource not found.", err.Error())

	err.Detail = "course 7 does not exist"
	assert.Equal(t, "api error 404: Resource not found. (course 7 does not exist)", err.Error())
}

func TestError_SentinelMatching(t *testing.T) {
	unauthorized := &Error{Status: 401, Message: "Session expired. Please login again."}
	assert.ErrorIs(t, unauthorized, ErrSessionExpired)
	assert.NotErrorIs(t, unauthorized, ErrUnavailable)

	transport := &Error{Status: 500, Message: DefaultErrorMessage, Err: errors.New("connection refused")}
	assert.ErrorIs(t, transport, ErrUnavailable)
	assert.NotErrorIs(t, transport, ErrSessionExpired)

	forbidden := &Error{Status: 403}
	assert.NotErrorIs(t, forbidden, ErrSessionExpired)
}

func TestError_WrappedStillMatches(t *testing.T) {
	wrapped := &Error{Status: 401}
	outer := errors.Join(errors.New("login"), wrapped)
	assert.ErrorIs(t, outer, ErrSessionExpired)
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "Invalid request.", statusMessage(400))
	assert.Equal(t, "Session expired. Please login again.", statusMessage(401))
	assert.Equal(t, DefaultErrorMessage, statusMessage(418))
}

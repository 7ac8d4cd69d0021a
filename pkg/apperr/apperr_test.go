package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{Validation, http.StatusBadRequest},
		{Unauthenticated, http.StatusUnauthorized},
		{Forbidden, http.StatusForbidden},
		{NotFound, http.StatusNotFound},
		{Conflict, http.StatusConflict},
		{Unexpected, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(New(tc.kind, "boom")))
	}
}

func TestStatusUnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("driver exploded")))
}

func TestMessageHidesInternals(t *testing.T) {
	assert.Equal(t, "Server Error", Message(errors.New("connection refused 10.0.0.3:27017")))
	assert.Equal(t, "Child not found", Message(New(NotFound, "Child not found")))
}

func TestInvalidListsFields(t *testing.T) {
	err := Invalid("Missing required fields", "name", "email")
	assert.Equal(t, "Missing required fields: name, email", err.Error())
	assert.True(t, IsKind(err, Validation))
}

func TestStatusWrappedError(t *testing.T) {
	err := fmt.Errorf("create donation: %w", New(Conflict, "Duplicate transaction ID"))
	assert.Equal(t, http.StatusConflict, Status(err))
	assert.True(t, IsKind(err, Conflict))
}

package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ValidationError("bad"), http.StatusBadRequest},
		{ConflictError("dup"), http.StatusBadRequest},
		{UnauthenticatedError("who"), http.StatusUnauthorized},
		{ForbiddenError("no"), http.StatusForbidden},
		{NotFoundError("gone"), http.StatusNotFound},
		{GenerationFailedError("boom", errors.New("upstream")), http.StatusInternalServerError},
		{GenerationTimedOutError("slow", nil), http.StatusGatewayTimeout},
		{fmt.Errorf("wrapped: %w", NotFoundError("gone")), http.StatusNotFound},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusCode(tc.err), tc.err.Error())
	}
}

func TestAppError_MatchesKindAndCause(t *testing.T) {
	cause := errors.New("upstream said no")
	err := GenerationFailedError("Failed to generate flashcard", cause)

	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Failed to generate flashcard: upstream said no", err.Error())
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "Category not found", PublicMessage(NotFoundError("Category not found")))
	assert.Equal(t, "Server error", PublicMessage(errors.New("pq: connection refused")))
	assert.Equal(t, "Server error", PublicMessage(&AppError{Kind: ErrInternal, Message: "secret detail"}))
}

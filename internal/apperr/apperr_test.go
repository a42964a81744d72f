package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Himanshur25/recipe-master/internal/apperr"
)

func TestFromPassesThroughAppErrors(t *testing.T) {
	err := apperr.NotFound("Recipe not found")
	assert.Equal(t, err, apperr.From(err))

	wrapped := fmt.Errorf("handling request: %w", err)
	assert.Equal(t, err, apperr.From(wrapped))
}

func TestFromHidesUnknownErrors(t *testing.T) {
	got := apperr.From(errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, got.Code)
	assert.Equal(t, "Something went wrong. Please try again", got.Message)
}

func TestErrorMessage(t *testing.T) {
	assert.EqualError(t, apperr.BadRequest("Invalid reaction type"), "Invalid reaction type")
	assert.EqualError(t, apperr.Unauthorized(), "Unauthorized")
}

package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"atrium/shared/failure"
)

func TestFailureCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "not found", err: failure.NotFound("booking not found"), wantCode: http.StatusNotFound},
		{name: "forbidden", err: failure.Forbidden("room is at full capacity"), wantCode: http.StatusForbidden},
		{name: "bad request", err: failure.BadRequestFromString("invalid roomId"), wantCode: http.StatusBadRequest},
		{name: "unauthorized", err: failure.Unauthorized("missing authorization header"), wantCode: http.StatusUnauthorized},
		{name: "internal", err: failure.InternalError(errors.New("boom")), wantCode: http.StatusInternalServerError},
		{name: "conflict", err: failure.Conflict("already exists"), wantCode: http.StatusConflict},
		{name: "plain error defaults to 500", err: errors.New("database gone"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
		})
	}
}

func TestFailureWrapped(t *testing.T) {
	err := fmt.Errorf("evaluating booking: %w", failure.Forbidden("room is at full capacity"))

	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	assert.True(t, failure.IsForbidden(err))
	assert.False(t, failure.IsNotFound(err))
}

func TestFailureNilErrors(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

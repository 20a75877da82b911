package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"atrium/shared/failure"
	"atrium/shared/validator"
)

type createBookingBody struct {
	RoomID int64 `json:"roomId" validate:"required,min=1"`
}

func TestValidateDecodesAndValidates(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		wantRoom int64
	}{
		{name: "valid body", body: `{"roomId": 12}`, wantErr: false, wantRoom: 12},
		{name: "missing room id", body: `{}`, wantErr: true},
		{name: "zero room id", body: `{"roomId": 0}`, wantErr: true},
		{name: "malformed json", body: `{"roomId": `, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createBookingBody{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantRoom, req.RoomID)
		})
	}
}

func TestValidateStructMessages(t *testing.T) {
	type login struct {
		Email    string `json:"email"    validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	err := validator.ValidateStruct(&login{Email: "not-an-email", Password: "pw"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Email")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("admin@example.com", "email"))
	assert.Error(t, validator.ValidateVar("nope", "email"))
}

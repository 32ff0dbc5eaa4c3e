package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhayrai8299/creator-assignment-backend/internal/validation"
)

type registerPayload struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestStruct_Register(t *testing.T) {
	tests := []struct {
		name    string
		payload registerPayload
		wantErr bool
	}{
		{
			name:    "valid",
			payload: registerPayload{Username: "alice", Email: "alice@example.com", Password: "secret123"},
			wantErr: false,
		},
		{
			name:    "missing username",
			payload: registerPayload{Email: "alice@example.com", Password: "secret123"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			payload: registerPayload{Username: "alice", Email: "not-an-email", Password: "secret123"},
			wantErr: true,
		},
		{
			name:    "short password",
			payload: registerPayload{Username: "alice", Email: "alice@example.com", Password: "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

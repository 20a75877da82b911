package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"atrium/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	assert.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)
	assert.False(t, data.Skip)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
	}{
		{
			name:     "register skips auth",
			path:     "/v1/auth/register",
			method:   http.MethodPost,
			wantSkip: true,
		},
		{
			name:      "booking create allows users and admins",
			path:      "/v1/booking",
			method:    http.MethodPost,
			wantRoles: []string{"user", "admin"},
		},
		{
			name:      "subrouter root pattern carries a trailing slash",
			path:      "/v1/booking/",
			method:    http.MethodGet,
			wantRoles: []string{"user", "admin"},
		},
		{
			name:      "room create is admin only",
			path:      "/v1/rooms",
			method:    http.MethodPost,
			wantRoles: []string{"admin"},
		},
		{
			name:   "unknown endpoint yields empty permission",
			path:   "/v1/unknown",
			method: http.MethodGet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perm := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, perm.Skip)

			if len(tt.wantRoles) == 0 {
				assert.Empty(t, perm.Permissions)
			} else {
				assert.Equal(t, tt.wantRoles, perm.Permissions)
			}
		})
	}
}

package cli

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skssh/skssh/internal/errors"
)

func TestShowProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "users/42",
			"posixAccounts": [{"primary": true, "username": "alice", "homeDirectory": "/home/alice"}],
			"securityKeys": [
				{"privateKey": "material", "deviceNickname": "yubikey",
				 "publicKey": "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIOMqqnkVzrm0SdG6UOoqKLsabgH5C9okWi0dh2l9GKJl"}
			]
		}`))
	}))
	t.Cleanup(srv.Close)

	t.Chdir(t.TempDir())
	t.Setenv("SKSSH_ENDPOINT", srv.URL)
	t.Setenv("SKSSH_TOKEN", "tok")

	require.NoError(t, showProfile("alice@example.com", false))
	require.NoError(t, showProfile("alice@example.com", true))
}

func TestShowProfileNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "unknown user"}}`, http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	t.Chdir(t.TempDir())
	t.Setenv("SKSSH_ENDPOINT", srv.URL)
	t.Setenv("SKSSH_TOKEN", "tok")

	err := showProfile("ghost@example.com", false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNotFound), "got: %v", err)
}

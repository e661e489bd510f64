package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/collabboard/collabboard-api/internal/dto"
)

func TestUserHandler_SearchUsers(t *testing.T) {
	env := setupTestEnv(t)
	caller := registerTestUser(t, env, "caller", "caller@x.com", "pw")
	registerTestUser(t, env, "Alice", "alice@example.com", "pw")
	registerTestUser(t, env, "bob", "bob@example.com", "pw")
	token := tokenFor(t, env, caller)

	// Case-insensitive substring match on username
	w := doRequest(env, http.MethodGet, "/api/users/search?q=ali", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var results []dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	require.Equal(t, "Alice", results[0].Username)

	// Match on email as well
	w = doRequest(env, http.MethodGet, "/api/users/search?q=example.com", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 2)
}

func TestUserHandler_SearchUsers_EmptyQuery(t *testing.T) {
	env := setupTestEnv(t)
	caller := registerTestUser(t, env, "caller", "caller@x.com", "pw")
	token := tokenFor(t, env, caller)

	// Empty or absent query returns an empty list, not an error
	for _, url := range []string{"/api/users/search?q=", "/api/users/search"} {
		w := doRequest(env, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var results []dto.UserDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
		require.Empty(t, results)
	}
}

func TestUserHandler_SearchUsers_NoMatch(t *testing.T) {
	env := setupTestEnv(t)
	caller := registerTestUser(t, env, "caller", "caller@x.com", "pw")
	token := tokenFor(t, env, caller)

	w := doRequest(env, http.MethodGet, "/api/users/search?q=zzz", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var results []dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Empty(t, results)
}

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/collabboard/collabboard-api/internal/dto"
	"github.com/collabboard/collabboard-api/internal/models"
)

func TestChatHandler_PostMessage(t *testing.T) {
	env := setupTestEnv(t)
	alice := registerTestUser(t, env, "alice", "alice@x.com", "pw1")
	board := createTestBoard(t, env, alice, "Sprint1")

	body, err := json.Marshal(map[string]string{"message": "hello team"})
	require.NoError(t, err)

	w := doRequest(env, http.MethodPost, fmt.Sprintf("/api/boards/%d/chat", board.ID), body, tokenFor(t, env, alice))
	require.Equal(t, http.StatusCreated, w.Code)

	var posted dto.ChatMessageDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posted))
	require.Equal(t, "hello team", posted.Message)
	require.Equal(t, alice.ID, posted.UserID)
}

func TestChatHandler_PostMessage_Empty(t *testing.T) {
	env := setupTestEnv(t)
	alice := registerTestUser(t, env, "alice", "alice@x.com", "pw1")
	board := createTestBoard(t, env, alice, "Sprint1")

	w := doRequest(env, http.MethodPost, fmt.Sprintf("/api/boards/%d/chat", board.ID), []byte(`{}`), tokenFor(t, env, alice))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.ChatMessage{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestChatHandler_PostMessage_NonMember(t *testing.T) {
	env := setupTestEnv(t)
	alice := registerTestUser(t, env, "alice", "alice@x.com", "pw1")
	bob := registerTestUser(t, env, "bob", "bob@x.com", "pw2")
	board := createTestBoard(t, env, alice, "Sprint1")

	body, err := json.Marshal(map[string]string{"message": "let me in"})
	require.NoError(t, err)

	w := doRequest(env, http.MethodPost, fmt.Sprintf("/api/boards/%d/chat", board.ID), body, tokenFor(t, env, bob))
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestChatHandler_ListMessages_OldestFirst(t *testing.T) {
	env := setupTestEnv(t)
	alice := registerTestUser(t, env, "alice", "alice@x.com", "pw1")
	board := createTestBoard(t, env, alice, "Sprint1")
	token := tokenFor(t, env, alice)

	for _, text := range []string{"first", "second", "third"} {
		_, err := env.chatService.PostMessage(board.ID, alice.ID, text)
		require.NoError(t, err)
	}

	w := doRequest(env, http.MethodGet, fmt.Sprintf("/api/boards/%d/chat", board.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Messages []dto.ChatMessageDTO `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Messages, 3)
	require.Equal(t, "first", response.Messages[0].Message)
	require.Equal(t, "third", response.Messages[2].Message)
	require.Equal(t, "alice", response.Messages[0].Username)
}

func TestChatHandler_ListMessages_NonMember(t *testing.T) {
	env := setupTestEnv(t)
	alice := registerTestUser(t, env, "alice", "alice@x.com", "pw1")
	bob := registerTestUser(t, env, "bob", "bob@x.com", "pw2")
	board := createTestBoard(t, env, alice, "Sprint1")

	w := doRequest(env, http.MethodGet, fmt.Sprintf("/api/boards/%d/chat", board.ID), nil, tokenFor(t, env, bob))
	require.Equal(t, http.StatusForbidden, w.Code)
}

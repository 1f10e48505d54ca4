package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func TestWebsocketReceivesOwnEvents(t *testing.T) {
	srv := httptest.NewServer(testHandler)
	defer srv.Close()

	token, user := newUser(t)
	otherToken, _ := newUser(t)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token
	conn, _, err := gorillaws.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return testServer.wsHub.Connections(user.ID) == 1
	}, 2*time.Second, 10*time.Millisecond)

	createFolder(t, otherToken, "NotMine", nil)
	folder := createFolder(t, token, "Live", nil)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type    string `json:"event_type"`
		Payload struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &event))
	require.Equal(t, "folder_created", event.Type)
	require.Equal(t, folder.ID, event.Payload.ID)
}

func TestWebsocketRequiresToken(t *testing.T) {
	srv := httptest.NewServer(testHandler)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	_, resp, err := gorillaws.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

package api

import (
	"net/http"

	"docuvault/internal/websocket"
)

// ServeWsHandler upgrades to a websocket that receives the caller's change
// events. Browsers cannot set headers on the handshake, so the bearer token
// travels as ?token=.
func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.identity.Authenticate(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		s.logger.Debug("websocket connection rejected", "remote_addr", r.RemoteAddr, "error", err)
		s.respondErr(w, r, err)
		return
	}

	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := websocket.NewClient(s.wsHub, conn, user.ID)
	if !s.wsHub.Add(client) {
		s.logger.Debug("websocket hub stopped, dropping connection", "user_id", user.ID)
		conn.Close()
		return
	}

	go client.ReadPump()
	go client.WritePump()
}

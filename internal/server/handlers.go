package server

import (
	"net/http"

	"github.com/quaggy/edge/internal/httpx"
)

// handlePing handles GET|POST /api/ping, echoing the parsed payload.
func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	httpx.WriteValid(w, map[string]any{
		"message": "pong",
		"payload": httpx.ParsePayload(r),
	})
}

// handleSecurePing handles GET|POST /api/secure_ping (login required)
func (s *Server) handleSecurePing(w http.ResponseWriter, r *http.Request) {
	httpx.WriteValid(w, map[string]any{
		"message": "secure_pong",
		"payload": httpx.ParsePayload(r),
	})
}

// handleInsecurePing handles GET|POST /api/insecure_ping (logout required)
func (s *Server) handleInsecurePing(w http.ResponseWriter, r *http.Request) {
	httpx.WriteValid(w, map[string]any{
		"message": "insecure_pong",
		"payload": httpx.ParsePayload(r),
	})
}

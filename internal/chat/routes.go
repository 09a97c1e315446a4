package chat

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// chatRequest is the incoming chat message format.
type chatRequest struct {
	Message string `json:"message"`
}

// RegisterRoutes mounts the chat API routes.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/api/chat", handleChat(svc))
	r.Get("/api/chat/ws", handleWebSocket(svc))
}

func handleChat(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Message == "" {
			http.Error(w, `{"error":"no message provided"}`, http.StatusBadRequest)
			return
		}

		result, err := svc.Ask(r.Context(), req.Message)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

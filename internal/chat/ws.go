package chat

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/mhassouna/docuchat/internal/query"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsResponse is the outgoing WebSocket message format. Exactly one of
// the answer fields or Error is populated per frame.
type wsResponse struct {
	Response string         `json:"response,omitempty"`
	Filters  *query.Filters `json:"filters,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// handleWebSocket serves a persistent chat connection. Each incoming
// frame is a chatRequest; each question gets one response frame.
func handleWebSocket(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("chat: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		for {
			var req chatRequest
			if err := conn.ReadJSON(&req); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("chat: websocket read: %v", err)
				}
				return
			}

			if req.Message == "" {
				sendWS(conn, wsResponse{Error: "no message provided"})
				continue
			}

			result, err := svc.Ask(r.Context(), req.Message)
			if err != nil {
				sendWS(conn, wsResponse{Error: err.Error()})
				continue
			}

			sendWS(conn, wsResponse{
				Response: result.Response,
				Filters:  &result.Filters,
			})
		}
	}
}

func sendWS(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("chat: websocket write: %v", err)
	}
}

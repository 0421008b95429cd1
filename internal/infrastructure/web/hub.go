package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/doeshing/intent-apparatus/internal/ports"
)

// event is one processed command on the feed.
type event struct {
	ID         string    `json:"id"`
	Command    string    `json:"command"`
	Category   string    `json:"category,omitempty"`
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	Screenshot string    `json:"screenshot,omitempty"`
	At         time.Time `json:"at"`
}

// upgrader configures the websocket handshake.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // Origin policy is enforced by the CORS layer.
	},
}

// hub fans execution events out to every connected panel.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	logger  ports.Logger
}

func newHub(logger ports.Logger) *hub {
	return &hub{
		clients: make(map[*websocket.Conn]bool),
		logger:  logger,
	}
}

func (h *hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

// broadcast writes one event to every client. Writes stay under the lock so
// each connection only ever has one writer.
func (h *hub) broadcast(evt event) {
	data, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("marshal feed event", err, nil)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Debug("drop feed client", map[string]interface{}{"error": err.Error()})
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// handleWS upgrades the connection and keeps it registered until the peer
// goes away. Inbound frames are drained and ignored; the feed is one-way.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", map[string]interface{}{"error": err.Error()})
		return
	}

	s.hub.add(conn)

	go func() {
		defer func() {
			s.hub.remove(conn)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err,
					websocket.CloseGoingAway,
					websocket.CloseNormalClosure,
				) {
					s.logger.Debug("websocket read ended", map[string]interface{}{"error": err.Error()})
				}
				return
			}
		}
	}()
}

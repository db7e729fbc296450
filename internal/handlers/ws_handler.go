package handlers

import (
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"

	"github.com/shashank-tomar0/RankSense-AI/internal/services"
)

// writeWait bounds a single notification write so one stalled client cannot
// hold up broadcasts to everyone else.
const writeWait = 10 * time.Second

type WSHandler struct {
	hub *services.Hub
}

func NewWSHandler(hub *services.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

type wsConn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
}

// wsSubscriber adapts a websocket connection to the hub. Writes are
// serialized: the hub broadcasts from pipeline goroutines while the read loop
// owns the connection lifetime.
type wsSubscriber struct {
	mu   sync.Mutex
	conn wsConn
}

func (s *wsSubscriber) Send(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, []byte(message))
}

// HandleLogs keeps one observer connection open. Inbound messages are read
// and discarded; the read loop exists only to notice the disconnect.
func (h *WSHandler) HandleLogs(conn *websocket.Conn) {
	sub := &wsSubscriber{conn: conn}
	h.hub.Register(sub)
	defer func() {
		h.hub.Unregister(sub)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Package server exposes the match manager over a JSON WebSocket protocol.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tianjibian/tianji-server-go/internal/engine"
	"github.com/tianjibian/tianji-server-go/internal/match"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is the wire envelope in both directions.
type Message struct {
	Type       string          `json:"type"`
	GameID     string          `json:"game_id,omitempty"`
	NumPlayers int             `json:"num_players,omitempty"`
	ActionID   int             `json:"action_id,omitempty"`
	Error      string          `json:"error,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

type client struct {
	conn   *websocket.Conn
	send   chan []byte
	gameID string
}

// ResultSaver receives terminal verdicts for persistence. Nil is fine.
type ResultSaver interface {
	SaveResult(ctx context.Context, gameID string, final engine.StateView, verdict *engine.VictoryResult) error
}

// Hub routes client messages to the match manager and fans game state back
// to every client watching the same game.
type Hub struct {
	matches *match.Manager
	results ResultSaver
	logger  *zap.Logger

	register   chan *client
	unregister chan *client

	mu      sync.RWMutex
	clients map[*client]bool
}

// NewHub creates a hub over the given match manager. results may be nil.
func NewHub(matches *match.Manager, results ResultSaver, logger *zap.Logger) *Hub {
	return &Hub{
		matches:    matches,
		results:    results,
		logger:     logger,
		register:   make(chan *client),
		unregister: make(chan *client),
		clients:    make(map[*client]bool),
	}
}

// Run owns the client set until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()
			h.logger.Debug("client connected")

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			h.logger.Debug("client disconnected")
		}
	}
}

// ServeHTTP upgrades the connection and starts the client's pumps.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, 256),
	}
	h.register <- c

	go c.writePump()
	go c.readPump(h)
}

func (h *Hub) handleMessage(c *client, msg Message) {
	switch msg.Type {
	case "create_game":
		players := msg.NumPlayers
		if players == 0 {
			players = 2
		}
		session, err := h.matches.CreateGame(players)
		if err != nil {
			c.sendError(msg.Type, err)
			return
		}
		c.gameID = session.ID
		c.sendJSON("game_created", session.ID, session.View())
		c.sendJSON("actions", session.ID, session.Actions())

	case "join_game":
		session, ok := h.matches.Get(msg.GameID)
		if !ok {
			c.sendError(msg.Type, match.ErrSessionNotFound(msg.GameID))
			return
		}
		c.gameID = session.ID
		c.sendJSON("game_state", session.ID, session.View())
		c.sendJSON("actions", session.ID, session.Actions())

	case "state":
		session, ok := h.session(c)
		if !ok {
			c.sendError(msg.Type, match.ErrSessionNotFound(c.gameID))
			return
		}
		c.sendJSON("game_state", session.ID, session.View())

	case "actions":
		session, ok := h.session(c)
		if !ok {
			c.sendError(msg.Type, match.ErrSessionNotFound(c.gameID))
			return
		}
		c.sendJSON("actions", session.ID, session.Actions())

	case "act":
		session, ok := h.session(c)
		if !ok {
			c.sendError(msg.Type, match.ErrSessionNotFound(c.gameID))
			return
		}
		if _, err := session.Act(msg.ActionID); err != nil {
			c.sendError(msg.Type, err)
			return
		}
		h.broadcastGame(session)
		c.sendJSON("actions", session.ID, session.Actions())

	case "end_turn":
		session, ok := h.session(c)
		if !ok {
			c.sendError(msg.Type, match.ErrSessionNotFound(c.gameID))
			return
		}
		verdict := session.EndTurn()
		h.broadcastGame(session)
		if verdict != nil {
			h.finishGame(session, verdict)
			return
		}
		c.sendJSON("actions", session.ID, session.Actions())

	default:
		h.logger.Warn("unknown message type", zap.String("type", msg.Type))
	}
}

func (h *Hub) session(c *client) (*match.Session, bool) {
	if c.gameID == "" {
		return nil, false
	}
	return h.matches.Get(c.gameID)
}

func (h *Hub) broadcastGame(session *match.Session) {
	view := session.View()
	payload, err := json.Marshal(view)
	if err != nil {
		h.logger.Error("failed to marshal state view", zap.Error(err))
		return
	}
	raw, err := json.Marshal(Message{Type: "game_state", GameID: session.ID, Data: payload})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if c.gameID != session.ID {
			continue
		}
		select {
		case c.send <- raw:
		default:
		}
	}
}

func (h *Hub) finishGame(session *match.Session, verdict *engine.VictoryResult) {
	h.logger.Info("game finished",
		zap.String("game_id", session.ID),
		zap.String("winner", verdict.Winner),
		zap.String("victory", string(verdict.Type)),
	)

	if h.results != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.results.SaveResult(ctx, session.ID, session.View(), verdict); err != nil {
			h.logger.Warn("failed to persist result", zap.String("game_id", session.ID), zap.Error(err))
		}
	}

	payload, err := json.Marshal(verdict)
	if err != nil {
		return
	}
	raw, err := json.Marshal(Message{Type: "game_over", GameID: session.ID, Data: payload})
	if err != nil {
		return
	}

	h.mu.RLock()
	for c := range h.clients {
		if c.gameID == session.ID {
			select {
			case c.send <- raw:
			default:
			}
		}
	}
	h.mu.RUnlock()

	h.matches.Remove(session.ID)
}

func (c *client) sendJSON(msgType, gameID string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	raw, err := json.Marshal(Message{Type: msgType, GameID: gameID, Data: payload})
	if err != nil {
		return
	}
	select {
	case c.send <- raw:
	default:
	}
}

func (c *client) sendError(requestType string, err error) {
	raw, marshalErr := json.Marshal(Message{Type: "error", GameID: c.gameID, Error: requestType + ": " + err.Error()})
	if marshalErr != nil {
		return
	}
	select {
	case c.send <- raw:
	default:
	}
}

func (c *client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.logger.Warn("malformed message", zap.Error(err))
			continue
		}
		h.handleMessage(c, msg)
	}
}

func (c *client) writePump() {
	defer c.conn.Close()

	for raw := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
			return
		}
	}
}

package collab

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/sketchcoach/sketchcoach/internal/engine"
	"github.com/sketchcoach/sketchcoach/internal/session"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	maxMsgSize = 64 * 1024
)

type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	session   *session.Session
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once

	mu          sync.Mutex
	unsubscribe func()

	SessionID string
	ClientID  string
}

func NewClient(hub *Hub, conn *websocket.Conn, sess *session.Session, clientID string) *Client {
	return &Client{
		hub:       hub,
		conn:      conn,
		session:   sess,
		send:      make(chan []byte, 256),
		done:      make(chan struct{}),
		SessionID: sess.ID,
		ClientID:  clientID,
	}
}

// attach forwards the session's engine events to the client.
func (c *Client) attach() {
	unsub := c.session.Subscribe(func(ev engine.Event) {
		msg, err := eventMessage(ev)
		if err != nil {
			slog.Error("marshal engine event", "error", err)
			return
		}
		c.Send(msg)
	})

	c.mu.Lock()
	c.unsubscribe = unsub
	c.mu.Unlock()
}

func (c *Client) detach() {
	c.mu.Lock()
	unsub := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

// close stops the write pump, which closes the connection.
func (c *Client) close() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	c.conn.SetReadLimit(maxMsgSize)

	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return
			}
			slog.Debug("read error", "error", err, "session", c.SessionID)
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("invalid message", "error", err, "session", c.SessionID)
			c.sendError("invalid message")
			continue
		}

		msg.ClientID = c.ClientID
		msg.SessionID = c.SessionID

		c.hub.handleMessage(c, &msg)
	}
}

func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message := <-c.send:
			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Write(writeCtx, websocket.MessageText, message)
			cancel()
			if err != nil {
				slog.Debug("write error", "error", err, "session", c.SessionID)
				c.conn.Close(websocket.StatusInternalError, "write failed")
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				c.conn.Close(websocket.StatusPolicyViolation, "ping timeout")
				return
			}

		case <-c.done:
			c.conn.Close(websocket.StatusNormalClosure, "connection closed")
			return

		case <-ctx.Done():
			return
		}
	}
}

// Send queues msg without blocking. Messages to a closed client or a full
// buffer are dropped.
func (c *Client) Send(msg *Message) {
	msg.SessionID = c.SessionID
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("marshal message", "error", err)
		return
	}

	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.send <- data:
	default:
		slog.Warn("client send buffer full, dropping message", "session", c.SessionID)
	}
}

func (c *Client) sendMessage(typ string, payload interface{}) {
	msg, err := NewMessage(typ, payload)
	if err != nil {
		slog.Error("marshal message", "type", typ, "error", err)
		return
	}
	c.Send(msg)
}

func (c *Client) sendError(message string) {
	c.sendMessage(TypeError, ErrorPayload{Message: message})
}

func (c *Client) sendState() {
	c.sendMessage(TypeSessionState, c.session.State())
}

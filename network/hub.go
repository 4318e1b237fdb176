package network

import (
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/DJG-inc/DodgeBallThreeJS/parameter"
)

// Handler receives decoded client messages on the client's read goroutine
type Handler interface {
	HandleInput(clientID string, in *InputMessage)
	HandleControl(clientID string, c *ControlMessage)
	HandleDisconnect(clientID string)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub tracks websocket clients and fans frames out to them
type Hub struct {
	handler Handler
	runID   func() string

	mu      sync.RWMutex
	clients map[string]*Client
	closed  bool

	seq     atomic.Uint32
	dropped atomic.Int64
}

// NewHub creates a hub; runID is read for each greeting
func NewHub(handler Handler, runID func() string) *Hub {
	return &Hub{
		handler: handler,
		runID:   runID,
		clients: make(map[string]*Client),
	}
}

// ServeHTTP upgrades the request and starts the client's pumps
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}

	c := newClient(h, conn)
	hello, err := Encode(MsgHello, h.seq.Add(1), &HelloMessage{ClientID: c.ID, RunID: h.runID()})
	if err != nil {
		log.Printf("encode hello: %v", err)
		conn.Close()
		return
	}
	c.send <- hello

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c.ID] = c
	h.mu.Unlock()
	log.Printf("client %s connected from %s", c.ID, conn.RemoteAddr())

	go c.writePump()
	go c.readPump()
}

// Broadcast encodes v once and queues it to every client
// A client whose buffer is full is disconnected instead of stalling the simulation
func (h *Hub) Broadcast(t MessageType, v any) error {
	frame, err := Encode(t, h.seq.Add(1), v)
	if err != nil {
		return err
	}

	h.mu.RLock()
	var slow []*Client
	for _, c := range h.clients {
		select {
		case c.send <- frame:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.dropped.Add(1)
		log.Printf("client %s too slow, disconnecting", c.ID)
		c.close()
	}
	return nil
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Dropped counts clients disconnected for falling behind
func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}

// Close disconnects every client and rejects new ones
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c.ID]
	delete(h.clients, c.ID)
	h.mu.Unlock()
	if ok {
		log.Printf("client %s disconnected", c.ID)
		h.handler.HandleDisconnect(c.ID)
	}
}

// Client is one websocket connection
type Client struct {
	ID   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	done      chan struct{}
	closeOnce sync.Once
}

func newClient(h *Hub, conn *websocket.Conn) *Client {
	return &Client{
		ID:   uuid.NewString(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, parameter.ClientSendBuffer),
		done: make(chan struct{}),
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.hub.remove(c)
	})
}

func (c *Client) readPump() {
	defer func() {
		c.close()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(parameter.MaxPayloadSize)
	c.conn.SetReadDeadline(time.Now().Add(parameter.ClientPongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(parameter.ClientPongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("client %s read: %v", c.ID, err)
			}
			return
		}
		c.dispatch(data)
	}
}

// dispatch decodes one inbound frame; malformed frames are logged and skipped
func (c *Client) dispatch(data []byte) {
	msg, err := Decode(data)
	if err != nil {
		log.Printf("client %s: %v", c.ID, err)
		return
	}

	switch msg.Type {
	case MsgInput:
		var in InputMessage
		if err := msg.Unmarshal(&in); err != nil {
			log.Printf("client %s: %v", c.ID, err)
			return
		}
		c.hub.handler.HandleInput(c.ID, &in)

	case MsgControl:
		var ctl ControlMessage
		if err := msg.Unmarshal(&ctl); err != nil {
			log.Printf("client %s: %v", c.ID, err)
			return
		}
		c.hub.handler.HandleControl(c.ID, &ctl)

	default:
		log.Printf("client %s: unexpected message type %#x", c.ID, msg.Type)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(parameter.ClientPingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(parameter.ClientWriteWait))
			if err := c.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				c.close()
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(parameter.ClientWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(parameter.ClientWriteWait))
			c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

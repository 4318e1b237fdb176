package network

import (
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

type recordingHandler struct {
	mu           sync.Mutex
	inputs       []InputMessage
	controls     []string
	disconnected []string
	got          chan struct{}
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{got: make(chan struct{}, 16)}
}

func (r *recordingHandler) HandleInput(_ string, in *InputMessage) {
	r.mu.Lock()
	r.inputs = append(r.inputs, *in)
	r.mu.Unlock()
	r.got <- struct{}{}
}

func (r *recordingHandler) HandleControl(_ string, c *ControlMessage) {
	r.mu.Lock()
	r.controls = append(r.controls, c.Action)
	r.mu.Unlock()
	r.got <- struct{}{}
}

func (r *recordingHandler) HandleDisconnect(id string) {
	r.mu.Lock()
	r.disconnected = append(r.disconnected, id)
	r.mu.Unlock()
	r.got <- struct{}{}
}

func (r *recordingHandler) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.got:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected handler call, timed out")
	}
}

func dial(t *testing.T, hub *Hub) (*websocket.Conn, *HelloMessage, func()) {
	t.Helper()
	srv := httptest.NewServer(hub)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("Dial failed: %v", err)
	}

	msg := readMessage(t, conn)
	if msg.Type != MsgHello {
		t.Fatalf("Expected hello first, got %#x", msg.Type)
	}
	var hello HelloMessage
	if err := msg.Unmarshal(&hello); err != nil {
		t.Fatalf("Unmarshal hello: %v", err)
	}
	return conn, &hello, func() {
		conn.Close()
		hub.Close()
		srv.Close()
	}
}

func readMessage(t *testing.T, conn *websocket.Conn) *Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	msg, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return msg
}

func send(t *testing.T, conn *websocket.Conn, mt MessageType, v any) {
	t.Helper()
	frame, err := Encode(mt, 1, v)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
}

func TestEncodeDecodeInput(t *testing.T) {
	frame, err := Encode(MsgInput, 7, &InputMessage{Forward: true, Trigger: true, LookDX: 3.5})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	msg, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if msg.Type != MsgInput || msg.Seq != 7 {
		t.Errorf("Expected input seq 7, got %#x seq %d", msg.Type, msg.Seq)
	}
	var in InputMessage
	if err := msg.Unmarshal(&in); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !in.Forward || !in.Trigger || in.Back || in.LookDX != 3.5 {
		t.Errorf("Expected forward+trigger with look 3.5, got %+v", in)
	}
}

func TestEncodeRejectsOversizedPayload(t *testing.T) {
	big := EventMessage{Type: "blob", Payload: strings.Repeat("x", 2<<20)}
	if _, err := Encode(MsgEvent, 1, &big); !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("Expected ErrPayloadTooLarge, got %v", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode([]byte{0xc1}); !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
}

func TestHubGreetsAndRoutesInput(t *testing.T) {
	h := newRecordingHandler()
	hub := NewHub(h, func() string { return "run-1" })
	conn, hello, cleanup := dial(t, hub)
	defer cleanup()

	if hello.RunID != "run-1" || hello.ClientID == "" {
		t.Errorf("Expected run-1 with client id, got %+v", hello)
	}

	send(t, conn, MsgInput, &InputMessage{Left: true, Jump: true})
	h.wait(t)
	send(t, conn, MsgControl, &ControlMessage{Action: ControlPause})
	h.wait(t)

	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.inputs) != 1 || !h.inputs[0].Left || !h.inputs[0].Jump {
		t.Errorf("Expected one left+jump input, got %+v", h.inputs)
	}
	if len(h.controls) != 1 || h.controls[0] != ControlPause {
		t.Errorf("Expected pause control, got %v", h.controls)
	}
}

func TestHubIgnoresUnknownAndMalformed(t *testing.T) {
	h := newRecordingHandler()
	hub := NewHub(h, func() string { return "" })
	conn, _, cleanup := dial(t, hub)
	defer cleanup()

	conn.WriteMessage(websocket.BinaryMessage, []byte{0xc1})
	send(t, conn, MsgStateSync, &HelloMessage{})
	send(t, conn, MsgControl, &ControlMessage{Action: ControlReset})
	h.wait(t)

	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.inputs) != 0 || len(h.controls) != 1 {
		t.Errorf("Expected only the reset control, got inputs %d controls %v", len(h.inputs), h.controls)
	}
}

func TestHubBroadcast(t *testing.T) {
	h := newRecordingHandler()
	hub := NewHub(h, func() string { return "" })
	conn, _, cleanup := dial(t, hub)
	defer cleanup()

	if hub.ClientCount() != 1 {
		t.Fatalf("Expected 1 client, got %d", hub.ClientCount())
	}
	if err := hub.Broadcast(MsgEvent, &EventMessage{Type: "thrown", Frame: 12}); err != nil {
		t.Fatalf("Broadcast failed: %v", err)
	}

	msg := readMessage(t, conn)
	if msg.Type != MsgEvent {
		t.Fatalf("Expected event message, got %#x", msg.Type)
	}
	var ev EventMessage
	if err := msg.Unmarshal(&ev); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if ev.Type != "thrown" || ev.Frame != 12 {
		t.Errorf("Expected thrown at frame 12, got %+v", ev)
	}
}

func TestHubDisconnectNotifiesHandler(t *testing.T) {
	h := newRecordingHandler()
	hub := NewHub(h, func() string { return "" })
	conn, hello, cleanup := dial(t, hub)
	defer cleanup()

	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()
	h.wait(t)

	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.disconnected) != 1 || h.disconnected[0] != hello.ClientID {
		t.Errorf("Expected disconnect of %s, got %v", hello.ClientID, h.disconnected)
	}
	if hub.ClientCount() != 0 {
		t.Errorf("Expected 0 clients, got %d", hub.ClientCount())
	}
}

package network

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/DJG-inc/DodgeBallThreeJS/parameter"
)

// MessageType identifies the semantic meaning of a message
type MessageType uint8

const (
	// Control messages
	MsgHello   MessageType = 0x02 // Server greets a client with its id and run
	MsgControl MessageType = 0x03 // Client session command

	// Game messages
	MsgInput     MessageType = 0x10 // Client control state
	MsgStateSync MessageType = 0x11 // Full snapshot
	MsgEvent     MessageType = 0x12 // Game event broadcast
)

var (
	ErrPayloadTooLarge = errors.New("payload exceeds maximum size")
	ErrMalformed       = errors.New("malformed message")
)

// Message is one websocket frame; Payload stays encoded until the receiver knows its type
type Message struct {
	Type    MessageType        `msgpack:"t"`
	Seq     uint32             `msgpack:"s"`
	Payload msgpack.RawMessage `msgpack:"p"`
}

// HelloMessage is sent once per connection
type HelloMessage struct {
	ClientID string `msgpack:"client_id"`
	RunID    string `msgpack:"run_id"`
}

// InputMessage is the full held-control state; look deltas accumulate since the previous message
type InputMessage struct {
	Forward bool    `msgpack:"fwd"`
	Back    bool    `msgpack:"back"`
	Left    bool    `msgpack:"left"`
	Right   bool    `msgpack:"right"`
	Jump    bool    `msgpack:"jump"`
	Trigger bool    `msgpack:"trigger"`
	LookDX  float64 `msgpack:"look_dx"`
	LookDY  float64 `msgpack:"look_dy"`
	Touch   bool    `msgpack:"touch"` // Look delta came from a touch surface
}

// Control actions
const (
	ControlPause  = "pause"
	ControlResume = "resume"
	ControlReset  = "reset"
)

type ControlMessage struct {
	Action string `msgpack:"action"`
}

// EventMessage carries one core event by name
type EventMessage struct {
	Type    string `msgpack:"type"`
	Frame   int64  `msgpack:"frame"`
	Payload any    `msgpack:"payload"`
}

// Encode frames v as a message of type t
func Encode(t MessageType, seq uint32, v any) ([]byte, error) {
	payload, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %#x payload: %w", t, err)
	}
	if len(payload) > parameter.MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(payload))
	}
	return msgpack.Marshal(&Message{Type: t, Seq: seq, Payload: payload})
}

// Decode parses a frame; the payload is decoded later with Unmarshal
func Decode(data []byte) (*Message, error) {
	if len(data) > parameter.MaxPayloadSize {
		return nil, ErrPayloadTooLarge
	}
	var m Message
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &m, nil
}

// Unmarshal decodes the payload into v
func (m *Message) Unmarshal(v any) error {
	if err := msgpack.Unmarshal(m.Payload, v); err != nil {
		return fmt.Errorf("%w: %#x payload: %v", ErrMalformed, m.Type, err)
	}
	return nil
}

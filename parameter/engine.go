package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the host render cadence (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta bounds the wall-clock delta consumed by a single frame, seconds
	// Larger deltas are clamped to prevent tunneling through geometry at low frame rates
	MaxFrameDelta = 0.05

	// Substeps is the number of fixed physics substeps per rendered frame
	Substeps = 5

	// SessionTickInterval is the real-time cadence of the session countdown
	SessionTickInterval = 1 * time.Second

	// DefaultSeed seeds the simulation PRNG when no seed is configured
	DefaultSeed = 0x5EED_BA11
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the outbound event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Network Host
const (
	// ServerAddr is the default listen address of the websocket host
	ServerAddr = ":8080"

	// ServerTickRate is the headless simulation frame rate
	ServerTickRate = 60

	// SnapshotEvery sends one snapshot per N simulated frames
	SnapshotEvery = 2

	// ClientSendBuffer is the per-client outbound frame buffer
	ClientSendBuffer = 64

	// MaxPayloadSize caps a single websocket frame payload in bytes
	MaxPayloadSize = 1 << 20

	// ClientWriteWait bounds a single websocket write
	ClientWriteWait = 5 * time.Second

	// ClientPongWait is the read deadline extended on every pong
	ClientPongWait = 30 * time.Second

	// ClientPingPeriod must be shorter than ClientPongWait
	ClientPingPeriod = 20 * time.Second
)

// Host Input
const (
	// KeyTapHold is how long a terminal key press holds its action; terminals report no key-up
	KeyTapHold = 0.15

	// MouseLookScale converts one terminal cell of mouse travel into pointer pixels
	MouseLookScale = 12.0
)

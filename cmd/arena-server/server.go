package main

import (
	"log"
	"sync"

	"github.com/DJG-inc/DodgeBallThreeJS/engine"
	"github.com/DJG-inc/DodgeBallThreeJS/event"
	"github.com/DJG-inc/DodgeBallThreeJS/input"
	"github.com/DJG-inc/DodgeBallThreeJS/manifest"
	"github.com/DJG-inc/DodgeBallThreeJS/network"
)

// heldControls pairs each held input flag with its action
var heldControls = []struct {
	action input.Action
	get    func(*network.InputMessage) bool
}{
	{input.ActionForward, func(m *network.InputMessage) bool { return m.Forward }},
	{input.ActionBack, func(m *network.InputMessage) bool { return m.Back }},
	{input.ActionLeft, func(m *network.InputMessage) bool { return m.Left }},
	{input.ActionRight, func(m *network.InputMessage) bool { return m.Right }},
	{input.ActionJump, func(m *network.InputMessage) bool { return m.Jump }},
	{input.ActionTrigger, func(m *network.InputMessage) bool { return m.Trigger }},
}

// server bridges websocket clients to one simulation
// Every client steers the same player; the most recent message wins per control
type server struct {
	world      *engine.World
	integrator *engine.Integrator
	sampler    *input.Sampler
	hub        *network.Hub

	snapshotEvery int64

	mu   sync.Mutex
	held map[string]network.InputMessage
}

func newServer(w *engine.World, it *engine.Integrator, s *input.Sampler) *server {
	srv := &server{
		world:         w,
		integrator:    it,
		sampler:       s,
		snapshotEvery: int64(w.Config.Server.SnapshotEvery),
		held:          make(map[string]network.InputMessage),
	}
	srv.hub = network.NewHub(srv, srv.runID)
	return srv
}

func (s *server) runID() string {
	var id string
	s.world.RunSafe(func() { id = s.world.RunID })
	return id
}

func (s *server) HandleInput(clientID string, in *network.InputMessage) {
	s.mu.Lock()
	s.held[clientID] = *in
	s.mu.Unlock()

	for _, c := range heldControls {
		if c.get(in) {
			s.sampler.Press(c.action)
		} else {
			s.sampler.Release(c.action)
		}
	}
	if in.Touch {
		s.sampler.AddTouch(in.LookDX, in.LookDY)
	} else {
		s.sampler.AddPointer(in.LookDX, in.LookDY)
	}
}

func (s *server) HandleControl(clientID string, c *network.ControlMessage) {
	log.Printf("client %s: %s", clientID, c.Action)
	switch c.Action {
	case network.ControlPause:
		s.world.RunSafe(func() {
			if s.world.Session.Playing() {
				s.world.TogglePause()
			}
		})
	case network.ControlResume:
		s.world.RunSafe(s.world.Resume)
	case network.ControlReset:
		s.sampler.Clear()
		manifest.RunCommand(s.world, s.integrator, input.ActionReset)
	default:
		log.Printf("client %s: unknown control %q", clientID, c.Action)
	}
}

// HandleDisconnect releases whatever the departing client was holding
func (s *server) HandleDisconnect(clientID string) {
	s.mu.Lock()
	in, ok := s.held[clientID]
	delete(s.held, clientID)
	s.mu.Unlock()
	if !ok {
		return
	}
	for _, c := range heldControls {
		if c.get(&in) {
			s.sampler.Release(c.action)
		}
	}
}

// step advances one frame and broadcasts its events, plus a snapshot every snapshotEvery frames
func (s *server) step(wall float64) *engine.Snapshot {
	snap := s.integrator.Step(wall)
	for _, msg := range eventMessages(s.world.Events.Consume()) {
		if err := s.hub.Broadcast(network.MsgEvent, &msg); err != nil {
			log.Printf("broadcast event %s: %v", msg.Type, err)
		}
	}
	if snap.Frame%s.snapshotEvery == 0 {
		if err := s.hub.Broadcast(network.MsgStateSync, snap); err != nil {
			log.Printf("broadcast snapshot: %v", err)
		}
	}
	return snap
}

func eventMessages(events []event.GameEvent) []network.EventMessage {
	if len(events) == 0 {
		return nil
	}
	out := make([]network.EventMessage, len(events))
	for i, ev := range events {
		out[i] = network.EventMessage{Type: ev.Type.String(), Frame: ev.Frame, Payload: ev.Payload}
	}
	return out
}

package wire

import (
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/rs/zerolog"
)

// Role distinguishes which side of the handshake a Conn performs.
type Role int

const (
	RoleService Role = iota
	RoleClient
)

// State is a connection lifecycle state, per spec.md §4.1:
//
//	setup -> preparing -> ready -> handshaking -> established -> cancelled
//	                         |                          ^
//	                      waiting ----------------------|
//	                      failed -----------------------|
type State int

const (
	StateSetup State = iota
	StatePreparing
	StateReady
	StateHandshaking
	StateEstablished
	StateWaiting
	StateFailed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StatePreparing:
		return "preparing"
	case StateReady:
		return "ready"
	case StateHandshaking:
		return "handshaking"
	case StateEstablished:
		return "established"
	case StateWaiting:
		return "waiting"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Conn is a single, single-use framed connection. All sends are serialized
// per-connection; the receive loop delivers frames in wire order. A Conn
// that reaches StateCancelled must be discarded — callers construct a fresh
// Conn to reconnect.
type Conn struct {
	mu    sync.Mutex
	nc    net.Conn
	role  Role
	state State
	log   zerolog.Logger
}

// NewConn wraps an established net.Conn. The connection begins in
// StateSetup and must be prepared and handshaked before Send/Recv.
func NewConn(nc net.Conn, role Role, log zerolog.Logger) *Conn {
	return &Conn{nc: nc, role: role, state: StateSetup, log: log}
}

// State returns the connection's current lifecycle state.
func (c *Conn) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Prepare transitions setup -> preparing -> ready.
func (c *Conn) Prepare() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateSetup {
		return fmt.Errorf("wire: cannot prepare from state %s", c.state)
	}
	c.state = StatePreparing
	c.state = StateReady
	return nil
}

// Wait marks the connection as recoverably paused (no viable network yet).
func (c *Conn) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateReady || c.state == StateEstablished {
		c.state = StateWaiting
	}
}

// Resume clears a prior Wait, returning to StateReady.
func (c *Conn) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateWaiting {
		c.state = StateReady
	}
}

// Handshake performs the version handshake appropriate to Role, then
// transitions to StateEstablished. On any failure the connection is torn
// down and transitions through StateFailed to StateCancelled.
func (c *Conn) Handshake() error {
	c.mu.Lock()
	if c.state != StateReady {
		c.mu.Unlock()
		return fmt.Errorf("wire: cannot handshake from state %s", c.state)
	}
	c.state = StateHandshaking
	nc := c.nc
	role := c.role
	c.mu.Unlock()

	var err error
	switch role {
	case RoleService:
		err = serviceHandshake(nc)
	case RoleClient:
		err = clientHandshake(nc)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.log.Error().Err(err).Str("role", roleName(role)).Msg("wire handshake failed")
		c.state = StateFailed
		c.teardownLocked()
		return err
	}
	c.state = StateEstablished
	c.log.Debug().Str("role", roleName(role)).Msg("wire handshake established")
	return nil
}

// Send writes one frame atomically with respect to other sends on this
// connection. A partial write tears the connection down.
func (c *Conn) Send(metadata, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateEstablished {
		return ErrNoConnection
	}
	if err := WriteFrame(c.nc, Frame{Metadata: metadata, Payload: payload}); err != nil {
		c.log.Error().Err(err).Msg("wire send failed, tearing down connection")
		c.state = StateFailed
		c.teardownLocked()
		return err
	}
	return nil
}

// Recv blocks for the next complete frame. Any short-read failure is fatal
// and tears the connection down.
func (c *Conn) Recv() (metadata, payload []byte, err error) {
	c.mu.Lock()
	if c.state != StateEstablished {
		c.mu.Unlock()
		return nil, nil, ErrNoConnection
	}
	nc := c.nc
	c.mu.Unlock()

	f, err := ReadFrame(nc)
	if err != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.log.Error().Err(err).Msg("wire recv failed, tearing down connection")
		if err == ErrCorruptMessage {
			c.state = StateFailed
		} else {
			c.state = StateFailed
		}
		c.teardownLocked()
		return nil, nil, err
	}
	return f.Metadata, f.Payload, nil
}

// Cancel tears down the connection unconditionally.
func (c *Conn) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.teardownLocked()
}

func (c *Conn) teardownLocked() error {
	if c.state == StateCancelled {
		return nil
	}
	c.state = StateCancelled
	if c.nc == nil {
		return nil
	}
	err := c.nc.Close()
	if err != nil && err != io.ErrClosedPipe {
		return fmt.Errorf("%w: closing connection: %v", ErrUnknown, err)
	}
	return nil
}

func roleName(r Role) string {
	if r == RoleService {
		return "service"
	}
	return "client"
}

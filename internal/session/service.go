package session

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/apparata/appconsole/internal/catalog"
	"github.com/apparata/appconsole/internal/invocation"
	"github.com/apparata/appconsole/internal/wire"
)

// Handler executes an Invocation and streams responses back over conn.
// It decides for itself whether to emit intermediate consoleOutput,
// screenshot, or file messages before the dispatcher sends the closing
// readyForCommand.
type Handler interface {
	Handle(conn *wire.Conn, inv invocation.Invocation) error
}

// Table owns the service's active connections, keyed by a
// google/uuid-assigned identity. A mutex guards it, so Add and Forget
// may be called from each connection's own goroutine.
type Table struct {
	mu    sync.Mutex
	conns map[uuid.UUID]*wire.Conn
}

// NewTable constructs an empty connection table.
func NewTable() *Table {
	return &Table{conns: map[uuid.UUID]*wire.Conn{}}
}

// Add assigns a fresh identity to conn and adds it to the table.
func (t *Table) Add(conn *wire.Conn) uuid.UUID {
	id := uuid.New()
	t.mu.Lock()
	t.conns[id] = conn
	t.mu.Unlock()
	return id
}

// Forget removes a connection once it has reached StateCancelled.
func (t *Table) Forget(id uuid.UUID) {
	t.mu.Lock()
	delete(t.conns, id)
	t.mu.Unlock()
}

// Len reports the number of connections currently tracked.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.conns)
}

// ServiceSession drives one accepted connection through its full
// message-type obligation per spec.md §4.2: send generalInfo unsolicited,
// then on listCommands send commandsSpecification + readyForCommand, on
// executeCommand run the handler and send readyForCommand. Unknown
// message types are ignored, not fatal.
type ServiceSession struct {
	conn    *wire.Conn
	cat     catalog.Catalog
	info    GeneralInfo
	handler Handler
	log     zerolog.Logger
}

// NewServiceSession constructs the per-connection dispatcher.
func NewServiceSession(conn *wire.Conn, cat catalog.Catalog, info GeneralInfo, handler Handler, log zerolog.Logger) *ServiceSession {
	return &ServiceSession{conn: conn, cat: cat, info: info, handler: handler, log: log}
}

// Run blocks dispatching frames until the connection is torn down.
func (s *ServiceSession) Run() error {
	if err := s.sendInfo(); err != nil {
		return err
	}
	for {
		meta, payload, err := s.conn.Recv()
		if err != nil {
			return err
		}
		m, err := DecodeMetadata(meta)
		if err != nil {
			s.log.Warn().Err(err).Msg("session: malformed metadata, ignoring frame")
			continue
		}
		switch m.MessageType {
		case MessageListCommands:
			if err := s.sendCatalog(); err != nil {
				return err
			}
			if err := s.sendReady(); err != nil {
				return err
			}
		case MessageExecuteCommand:
			inv, err := invocation.Decode(payload)
			if err != nil {
				s.log.Warn().Err(err).Msg("session: malformed invocation, skipping")
				continue
			}
			if s.handler != nil {
				if err := s.handler.Handle(s.conn, inv); err != nil {
					s.log.Error().Err(err).Msg("session: handler failed")
				}
			}
			if err := s.sendReady(); err != nil {
				return err
			}
		default:
			s.log.Debug().Str("messageType", string(m.MessageType)).Msg("session: unknown message type, ignoring")
		}
	}
}

func (s *ServiceSession) sendInfo() error {
	payload, err := json.Marshal(s.info)
	if err != nil {
		return err
	}
	return s.send(MessageGeneralInfo, payload)
}

func (s *ServiceSession) sendCatalog() error {
	payload, err := catalog.Encode(s.cat)
	if err != nil {
		return err
	}
	return s.send(MessageCommandsSpecification, payload)
}

func (s *ServiceSession) sendReady() error {
	return s.send(MessageReadyForCommand, nil)
}

func (s *ServiceSession) send(mt MessageType, payload []byte) error {
	meta, err := EncodeMetadata(mt)
	if err != nil {
		return err
	}
	return s.conn.Send(meta, payload)
}

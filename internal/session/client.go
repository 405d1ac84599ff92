package session

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/apparata/appconsole/internal/catalog"
	"github.com/apparata/appconsole/internal/invocation"
	"github.com/apparata/appconsole/internal/wire"
)

// OutputSink receives the streamed response messages a service emits
// while processing an executeCommand: console text, raw screenshot
// bytes, and files.
type OutputSink interface {
	ConsoleOutput(text string)
	Screenshot(data []byte)
	File(msg FileMessage)
}

// ClientSession drives the client's half of §4.2's obligation ordering:
// wait for generalInfo, request the catalog, then alternate between
// reading a line and executing it, each round bracketed by
// readyForCommand.
type ClientSession struct {
	conn *wire.Conn
	sink OutputSink
	log  zerolog.Logger

	Info    GeneralInfo
	Catalog catalog.Catalog
}

// NewClientSession constructs a client-side dispatcher over an
// already-handshaked connection.
func NewClientSession(conn *wire.Conn, sink OutputSink, log zerolog.Logger) *ClientSession {
	return &ClientSession{conn: conn, sink: sink, log: log}
}

// Connect performs the connect-time handshake of messages: wait for
// generalInfo, send listCommands, wait for commandsSpecification, then
// the first readyForCommand.
func (c *ClientSession) Connect() error {
	for {
		meta, payload, err := c.conn.Recv()
		if err != nil {
			return err
		}
		m, err := DecodeMetadata(meta)
		if err != nil {
			continue
		}
		if m.MessageType != MessageGeneralInfo {
			continue
		}
		if err := json.Unmarshal(payload, &c.Info); err != nil {
			return fmt.Errorf("session: decoding generalInfo: %w", err)
		}
		break
	}

	if err := c.send(MessageListCommands, nil); err != nil {
		return err
	}

	for {
		meta, payload, err := c.conn.Recv()
		if err != nil {
			return err
		}
		m, err := DecodeMetadata(meta)
		if err != nil {
			continue
		}
		if m.MessageType != MessageCommandsSpecification {
			continue
		}
		cat, err := catalog.Decode(payload)
		if err != nil {
			return err
		}
		c.Catalog = cat
		break
	}

	return c.awaitReady()
}

// ExecuteCommand sends an invocation and drains the response stream
// (consoleOutput/screenshot/file) until the service signals
// readyForCommand.
func (c *ClientSession) ExecuteCommand(inv invocation.Invocation) error {
	payload, err := invocation.Encode(inv)
	if err != nil {
		return err
	}
	if err := c.send(MessageExecuteCommand, payload); err != nil {
		return err
	}
	return c.awaitReady()
}

func (c *ClientSession) awaitReady() error {
	for {
		meta, payload, err := c.conn.Recv()
		if err != nil {
			return err
		}
		m, err := DecodeMetadata(meta)
		if err != nil {
			continue
		}
		switch m.MessageType {
		case MessageReadyForCommand:
			return nil
		case MessageConsoleOutput:
			if c.sink != nil {
				c.sink.ConsoleOutput(string(payload))
			}
		case MessageScreenshot:
			if c.sink != nil {
				c.sink.Screenshot(payload)
			}
		case MessageFile:
			var fm FileMessage
			if err := json.Unmarshal(payload, &fm); err == nil && c.sink != nil {
				c.sink.File(fm)
			}
		default:
			c.log.Debug().Str("messageType", string(m.MessageType)).Msg("session: unknown message type, ignoring")
		}
	}
}

func (c *ClientSession) send(mt MessageType, payload []byte) error {
	meta, err := EncodeMetadata(mt)
	if err != nil {
		return err
	}
	return c.conn.Send(meta, payload)
}

// ReadLine reads one line from r, trimming the trailing newline, for the
// client's command loop.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}

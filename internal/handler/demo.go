package handler

import (
	"fmt"
	"time"

	"github.com/apparata/appconsole/internal/invocation"
	"github.com/apparata/appconsole/internal/session"
	"github.com/apparata/appconsole/internal/wire"
)

// Echo writes back the "text" input argument as consoleOutput. It
// exercises the streamed-response side of §4.2 without needing any
// host-application state.
func Echo(conn *wire.Conn, inv invocation.Invocation) error {
	text := ""
	if v, ok := inv.Arguments["text"]; ok {
		text = v.String
	}
	return sendConsoleOutput(conn, text)
}

// Sleep pauses for the "seconds" option, then confirms completion. It
// exercises a handler that runs long enough to matter before the
// closing readyForCommand.
func Sleep(conn *wire.Conn, inv invocation.Invocation) error {
	seconds := int64(0)
	if v, ok := inv.Arguments["seconds"]; ok {
		seconds = v.Int
	}
	time.Sleep(time.Duration(seconds) * time.Second)
	return sendConsoleOutput(conn, fmt.Sprintf("slept %ds", seconds))
}

func sendConsoleOutput(conn *wire.Conn, text string) error {
	meta, err := session.EncodeMetadata(session.MessageConsoleOutput)
	if err != nil {
		return err
	}
	return conn.Send(meta, []byte(text))
}

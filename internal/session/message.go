// Package session implements the L2-over-L1 dispatcher: message-type
// routing, the client's connect/handshake/command loop, the service's
// connection table, and reconnect backoff.
package session

import "encoding/json"

// MessageType is the string enum transported in a frame's metadata.
type MessageType string

const (
	MessageListCommands          MessageType = "listCommands"
	MessageExecuteCommand        MessageType = "executeCommand"
	MessageGeneralInfo           MessageType = "generalInfo"
	MessageCommandsSpecification MessageType = "commandsSpecification"
	MessageConsoleOutput         MessageType = "consoleOutput"
	MessageScreenshot            MessageType = "screenshot"
	MessageReadyForCommand       MessageType = "readyForCommand"
	MessageFile                  MessageType = "file"
)

// Metadata is the L1 metadata envelope: the only field the core cares
// about is the message type discriminant.
type Metadata struct {
	MessageType MessageType `json:"messageType"`
}

// EncodeMetadata serializes a Metadata envelope.
func EncodeMetadata(mt MessageType) ([]byte, error) {
	return json.Marshal(Metadata{MessageType: mt})
}

// DecodeMetadata parses a Metadata envelope. An unknown message type is
// not an error here — §4.2 says unknown types are ignored by the
// dispatcher, not rejected by the codec.
func DecodeMetadata(data []byte) (Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return Metadata{}, err
	}
	return m, nil
}

// GeneralInfo is the host info document a service sends unsolicited on
// connect.
type GeneralInfo struct {
	InstanceName string `json:"instanceName"`
	Platform     string `json:"platform"`
	Version      string `json:"version"`
}

// FileMessage is the payload shape of the "file" message type.
type FileMessage struct {
	Filename string `json:"filename"`
	Filedata []byte `json:"filedata"`
}

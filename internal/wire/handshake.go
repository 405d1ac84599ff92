package wire

import (
	"bytes"
	"fmt"
	"io"
)

const (
	// ServiceHandshake is written by the service and read by the client.
	ServiceHandshake = "APPSERVICEV0001"
	// ClientHandshake is written by the client and read by the service.
	ClientHandshake = "APPCLIENTV0001"
)

// serviceHandshake performs the service side of the handshake: write
// ServiceHandshake, then read and verify exactly len(ClientHandshake) bytes.
func serviceHandshake(rw io.ReadWriter) error {
	if _, err := io.WriteString(rw, ServiceHandshake); err != nil {
		return fmt.Errorf("%w: writing service handshake: %v", ErrHandshakeFailed, err)
	}
	buf := make([]byte, len(ClientHandshake))
	if _, err := io.ReadFull(rw, buf); err != nil {
		return fmt.Errorf("%w: reading client handshake: %v", ErrHandshakeFailed, err)
	}
	if !bytes.Equal(buf, []byte(ClientHandshake)) {
		return fmt.Errorf("%w: unexpected client handshake %q", ErrHandshakeFailed, buf)
	}
	return nil
}

// clientHandshake performs the client side of the handshake: read and
// verify exactly len(ServiceHandshake) bytes, then write ClientHandshake.
func clientHandshake(rw io.ReadWriter) error {
	buf := make([]byte, len(ServiceHandshake))
	if _, err := io.ReadFull(rw, buf); err != nil {
		return fmt.Errorf("%w: reading service handshake: %v", ErrHandshakeFailed, err)
	}
	if !bytes.Equal(buf, []byte(ServiceHandshake)) {
		return fmt.Errorf("%w: unexpected service handshake %q", ErrHandshakeFailed, buf)
	}
	if _, err := io.WriteString(rw, ClientHandshake); err != nil {
		return fmt.Errorf("%w: writing client handshake: %v", ErrHandshakeFailed, err)
	}
	return nil
}

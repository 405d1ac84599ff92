// Package wire implements the length-framed message transport (L1): a
// two-phase version handshake followed by a stream of (metadata, payload)
// frames on a single full-duplex byte connection.
package wire

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxPayloadLen is the hard cap on a single frame's payload length.
// payload_length values equal to or greater than this are rejected as
// corrupt, per spec.
const MaxPayloadLen = 10_000_000

// Frame is one complete (metadata, payload) wire message.
type Frame struct {
	Metadata []byte
	Payload  []byte
}

// ReadFrame reads a single frame from r using the wire layout:
//
//	int16  metadata_length  (signed, little-endian)
//	bytes  metadata
//	int32  payload_length   (signed, little-endian)
//	bytes  payload          (omitted when 0)
//
// A payload_length that is negative or >= MaxPayloadLen yields
// ErrCorruptMessage without consuming the payload bytes.
func ReadFrame(r io.Reader) (Frame, error) {
	var metaLenBuf [2]byte
	if _, err := io.ReadFull(r, metaLenBuf[:]); err != nil {
		return Frame{}, fmt.Errorf("%w: reading metadata_length: %v", ErrUnknown, err)
	}
	metaLen := int16(binary.LittleEndian.Uint16(metaLenBuf[:]))
	if metaLen < 0 {
		return Frame{}, ErrCorruptMessage
	}

	metadata := make([]byte, metaLen)
	if metaLen > 0 {
		if _, err := io.ReadFull(r, metadata); err != nil {
			return Frame{}, fmt.Errorf("%w: reading metadata: %v", ErrUnknown, err)
		}
	}

	var payloadLenBuf [4]byte
	if _, err := io.ReadFull(r, payloadLenBuf[:]); err != nil {
		return Frame{}, fmt.Errorf("%w: reading payload_length: %v", ErrUnknown, err)
	}
	payloadLen := int32(binary.LittleEndian.Uint32(payloadLenBuf[:]))
	if payloadLen < 0 || payloadLen >= MaxPayloadLen {
		return Frame{}, ErrCorruptMessage
	}

	payload := make([]byte, payloadLen)
	if payloadLen > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			return Frame{}, fmt.Errorf("%w: reading payload: %v", ErrUnknown, err)
		}
	}

	return Frame{Metadata: metadata, Payload: payload}, nil
}

// WriteFrame writes a single frame to w. The caller is responsible for
// serializing concurrent writes on the same connection; see Conn.Send.
func WriteFrame(w io.Writer, f Frame) error {
	if len(f.Payload) >= MaxPayloadLen {
		return ErrCorruptMessage
	}
	if len(f.Metadata) > int(^uint16(0)>>1) {
		return ErrCorruptMessage
	}

	var metaLenBuf [2]byte
	binary.LittleEndian.PutUint16(metaLenBuf[:], uint16(len(f.Metadata)))
	if _, err := w.Write(metaLenBuf[:]); err != nil {
		return fmt.Errorf("%w: writing metadata_length: %v", ErrUnknown, err)
	}
	if len(f.Metadata) > 0 {
		if _, err := w.Write(f.Metadata); err != nil {
			return fmt.Errorf("%w: writing metadata: %v", ErrUnknown, err)
		}
	}

	var payloadLenBuf [4]byte
	binary.LittleEndian.PutUint32(payloadLenBuf[:], uint32(len(f.Payload)))
	if _, err := w.Write(payloadLenBuf[:]); err != nil {
		return fmt.Errorf("%w: writing payload_length: %v", ErrUnknown, err)
	}
	if len(f.Payload) > 0 {
		if _, err := w.Write(f.Payload); err != nil {
			return fmt.Errorf("%w: writing payload: %v", ErrUnknown, err)
		}
	}

	return nil
}

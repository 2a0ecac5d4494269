package ipc

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

const (
	// MaxFrame bounds both the wire payload and the decompressed envelope.
	MaxFrame = 1 << 20

	// compressedFlag marks an lz4 payload in the high bit of the length prefix.
	compressedFlag = 1 << 31
)

// Envelope is the wire format shared with the game host.
// Data is kept as RawMessage so handlers can defer deserialization to the concrete type.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func NewEnvelope(msgType string, data any) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal data: %w", err)
	}
	return Envelope{Type: msgType, Data: raw}, nil
}

// ReadEnvelope reads a single length-prefixed JSON envelope. The 4-byte LE
// prefix carries the payload length; its high bit says the payload is lz4
// compressed.
func ReadEnvelope(r io.Reader) (Envelope, error) {
	var prefix uint32
	if err := binary.Read(r, binary.LittleEndian, &prefix); err != nil {
		return Envelope{}, fmt.Errorf("read length: %w", err)
	}
	compressed := prefix&compressedFlag != 0
	length := prefix &^ compressedFlag

	// Guard against corrupted frames or malicious payloads.
	if length == 0 || length > MaxFrame {
		return Envelope{}, fmt.Errorf("invalid message length: %d", length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Envelope{}, fmt.Errorf("read payload: %w", err)
	}
	if compressed {
		var err error
		if payload, err = decompress(payload); err != nil {
			return Envelope{}, err
		}
	}

	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Envelope{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	return env, nil
}

// WriteEnvelope frames env onto w. Payloads larger than compressAbove bytes
// are lz4 compressed; compressAbove <= 0 disables compression.
func WriteEnvelope(w io.Writer, env Envelope, compressAbove int) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	var flag uint32
	if compressAbove > 0 && len(payload) > compressAbove {
		if payload, err = compress(payload); err != nil {
			return err
		}
		flag = compressedFlag
	}
	if len(payload) > MaxFrame {
		return fmt.Errorf("envelope %q too large: %d bytes", env.Type, len(payload))
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(payload))|flag); err != nil {
		return fmt.Errorf("write length: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}

package ipc

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"net"
	"strings"
	"testing"
	"time"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	tests := []struct {
		name          string
		status        string
		compressAbove int
		wantFlag      bool
	}{
		{"plain", "ok", 0, false},
		{"small under threshold", "ok", 512, false},
		{"compressed", strings.Repeat("terraform ", 200), 512, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := NewEnvelope(TypeAck, AckMessage{Status: tt.status})
			if err != nil {
				t.Fatalf("NewEnvelope: %v", err)
			}
			var buf bytes.Buffer
			if err := WriteEnvelope(&buf, env, tt.compressAbove); err != nil {
				t.Fatalf("WriteEnvelope: %v", err)
			}

			prefix := binary.LittleEndian.Uint32(buf.Bytes()[:4])
			if got := prefix&compressedFlag != 0; got != tt.wantFlag {
				t.Errorf("compressed flag = %v, want %v", got, tt.wantFlag)
			}

			got, err := ReadEnvelope(&buf)
			if err != nil {
				t.Fatalf("ReadEnvelope: %v", err)
			}
			if got.Type != TypeAck {
				t.Errorf("type = %q", got.Type)
			}
			var ack AckMessage
			if err := json.Unmarshal(got.Data, &ack); err != nil {
				t.Fatalf("unmarshal ack: %v", err)
			}
			if ack.Status != tt.status {
				t.Errorf("status mismatch after round trip")
			}
		})
	}
}

func TestReadEnvelopeRejectsBadLength(t *testing.T) {
	for _, length := range []uint32{0, MaxFrame + 1} {
		var buf bytes.Buffer
		binary.Write(&buf, binary.LittleEndian, length)
		if _, err := ReadEnvelope(&buf); err == nil {
			t.Errorf("length %d accepted", length)
		}
	}
}

func TestReadEnvelopeRejectsCorruptCompression(t *testing.T) {
	var buf bytes.Buffer
	payload := []byte("not an lz4 frame")
	binary.Write(&buf, binary.LittleEndian, uint32(len(payload))|compressedFlag)
	buf.Write(payload)
	if _, err := ReadEnvelope(&buf); err == nil {
		t.Error("corrupt lz4 payload accepted")
	}
}

func TestConnectionDispatch(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()

	conn := NewConnection(server, nil, 0)
	conn.RegisterHandler(TypeHello, func(env Envelope) (*Envelope, error) {
		var hello HelloMessage
		if err := json.Unmarshal(env.Data, &hello); err != nil {
			return nil, err
		}
		resp, err := NewEnvelope(TypeAck, AckMessage{Status: "hello " + hello.Name})
		return &resp, err
	})
	go conn.ReadLoop()

	client.SetDeadline(time.Now().Add(5 * time.Second))
	host := NewConnection(client, nil, 0)
	if err := host.Send(TypeHello, HelloMessage{Realm: 2, Name: "Vegan Hegemony"}); err != nil {
		t.Fatalf("write hello: %v", err)
	}
	resp, err := ReadEnvelope(client)
	if err != nil {
		t.Fatalf("read ack: %v", err)
	}
	var ack AckMessage
	json.Unmarshal(resp.Data, &ack)
	if resp.Type != TypeAck || ack.Status != "hello Vegan Hegemony" {
		t.Errorf("unexpected response %s %+v", resp.Type, ack)
	}
}

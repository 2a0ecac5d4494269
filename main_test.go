package main

import (
	"net"
	"testing"

	"github.com/nstehr/orrery/orrery-core/workers"
)

func TestAbortOnPanicRepanics(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"invariant violation", &workers.InvariantViolation{Planet: "Terra", Owner: 1, Race: "Human", Branch: "food", Want: 6, Got: 5}},
		{"other panic", "index out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, client := net.Pipe()
			defer client.Close()

			defer func() {
				if r := recover(); r != tt.value {
					t.Fatalf("recovered %v, want %v", r, tt.value)
				}
				if _, err := client.Write([]byte{0}); err == nil {
					t.Error("session connection left open")
				}
			}()
			func() {
				defer abortOnPanic(server)
				panic(tt.value)
			}()
			t.Fatal("panic was swallowed")
		})
	}
}

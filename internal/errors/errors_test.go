package errors

import (
	"fmt"
	"testing"
)

func TestSessionErrorUnwrap(t *testing.T) {
	err := NewSessionError(2, "spawn", ErrSpawnFailed)

	if !Is(err, ErrSpawnFailed) {
		t.Error("expected errors.Is to match ErrSpawnFailed through SessionError")
	}

	var sessionErr *SessionError
	if !As(err, &sessionErr) {
		t.Fatal("expected errors.As to extract *SessionError")
	}
	if sessionErr.Slot != 2 || sessionErr.Op != "spawn" {
		t.Errorf("unexpected fields: slot=%d op=%q", sessionErr.Slot, sessionErr.Op)
	}
}

func TestSessionErrorMessage(t *testing.T) {
	err := NewSessionError(0, "read", New("broken pipe"))
	want := "session 0: read: broken pipe"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestMuxErrorWrapsCapacity(t *testing.T) {
	err := NewMuxError("add", ErrCapacity)

	if !IsCapacity(err) {
		t.Error("expected IsCapacity to match wrapped ErrCapacity")
	}
	if IsCapacity(New("unrelated")) {
		t.Error("IsCapacity matched an unrelated error")
	}
}

func TestIsSpawnFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"direct sentinel", ErrSpawnFailed, true},
		{"wrapped once", fmt.Errorf("starting shell: %w", ErrSpawnFailed), true},
		{"wrapped in session error", NewSessionError(1, "spawn", ErrSpawnFailed), true},
		{"other sentinel", ErrCapacity, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSpawnFailure(tt.err); got != tt.want {
				t.Errorf("IsSpawnFailure(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

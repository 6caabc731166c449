package session

import (
	"strings"
	"testing"
)

func TestOutputBufferBelowCap(t *testing.T) {
	b := NewOutputBuffer(16)
	b.Write([]byte("hello"))
	b.Write([]byte(" world"))

	if got := b.String(); got != "hello world" {
		t.Errorf("String() = %q, want %q", got, "hello world")
	}
	if got := b.Len(); got != 11 {
		t.Errorf("Len() = %d, want 11", got)
	}
}

func TestOutputBufferEvictsOldest(t *testing.T) {
	b := NewOutputBuffer(8)
	b.Write([]byte("abcdefgh"))
	b.Write([]byte("XY"))

	if got := b.String(); got != "cdefghXY" {
		t.Errorf("String() = %q, want %q", got, "cdefghXY")
	}
	if got := b.Len(); got != 8 {
		t.Errorf("Len() = %d, want cap 8", got)
	}
}

func TestOutputBufferLengthNeverExceedsCap(t *testing.T) {
	b := NewOutputBuffer(32)
	for i := 0; i < 100; i++ {
		b.Write([]byte("0123456789"))
	}
	if got := b.Len(); got != 32 {
		t.Errorf("Len() = %d, want exactly cap 32", got)
	}
	if got := len(b.String()); got != 32 {
		t.Errorf("len(String()) = %d, want 32", got)
	}
}

func TestOutputBufferOversizedWrite(t *testing.T) {
	b := NewOutputBuffer(4)
	b.Write([]byte("one"))
	b.Write([]byte("abcdefgh"))

	if got := b.String(); got != "efgh" {
		t.Errorf("String() = %q, want %q (tail of oversized write)", got, "efgh")
	}
}

func TestOutputBufferRetainsMostRecent(t *testing.T) {
	b := NewOutputBuffer(10)
	b.Write([]byte(strings.Repeat("x", 10)))
	b.Write([]byte("recent"))

	if got := b.String(); !strings.HasSuffix(got, "recent") {
		t.Errorf("String() = %q, want suffix %q", got, "recent")
	}
}

func TestOutputBufferReset(t *testing.T) {
	b := NewOutputBuffer(8)
	b.Write([]byte("abcdefghij"))
	b.Reset()

	if got := b.Len(); got != 0 {
		t.Errorf("Len() after Reset = %d, want 0", got)
	}
	if got := b.String(); got != "" {
		t.Errorf("String() after Reset = %q, want empty", got)
	}

	b.Write([]byte("fresh"))
	if got := b.String(); got != "fresh" {
		t.Errorf("String() after refill = %q, want %q", got, "fresh")
	}
}

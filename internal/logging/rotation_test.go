package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRotatingWriterNoRotationBelowCap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sigmaterm.log")

	rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 1, MaxBackups: 2})
	if err != nil {
		t.Fatalf("NewRotatingWriter() error: %v", err)
	}
	defer rw.Close()

	if _, err := rw.Write([]byte("small entry\n")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	if _, err := os.Stat(path + ".1"); !os.IsNotExist(err) {
		t.Error("backup file created without exceeding cap")
	}
}

func TestRotatingWriterRotatesAtCap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sigmaterm.log")

	rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 1, MaxBackups: 2})
	if err != nil {
		t.Fatalf("NewRotatingWriter() error: %v", err)
	}
	defer rw.Close()

	// Two writes that together exceed 1MB force exactly one rotation.
	big := bytes.Repeat([]byte("x"), 600*1024)
	for i := 0; i < 2; i++ {
		if _, err := rw.Write(big); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
	}

	info, err := os.Stat(path + ".1")
	if err != nil {
		t.Fatalf("expected backup file after rotation: %v", err)
	}
	if info.Size() != int64(len(big)) {
		t.Errorf("backup size = %d, want %d", info.Size(), len(big))
	}

	current, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected fresh log file after rotation: %v", err)
	}
	if current.Size() != int64(len(big)) {
		t.Errorf("current size = %d, want %d", current.Size(), len(big))
	}
}

func TestRotatingWriterDropsOldestBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sigmaterm.log")

	rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 1, MaxBackups: 1})
	if err != nil {
		t.Fatalf("NewRotatingWriter() error: %v", err)
	}
	defer rw.Close()

	big := bytes.Repeat([]byte("y"), 700*1024)
	for i := 0; i < 4; i++ {
		if _, err := rw.Write(big); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
	}

	if _, err := os.Stat(path + ".2"); !os.IsNotExist(err) {
		t.Error("backup beyond MaxBackups was kept")
	}
}

func TestRotatingWriterClosedWriteFails(t *testing.T) {
	dir := t.TempDir()
	rw, err := NewRotatingWriter(filepath.Join(dir, "sigmaterm.log"), DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewRotatingWriter() error: %v", err)
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if _, err := rw.Write([]byte("late")); err == nil {
		t.Error("Write after Close succeeded, want error")
	}
	// Second close is a no-op.
	if err := rw.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}

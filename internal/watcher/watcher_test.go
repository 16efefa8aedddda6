package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_SignalsOnChange(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	if err := os.WriteFile(filepath.Join(dir, "ref"), []byte("c1"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no signal after write")
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	for i := 0; i < 10; i++ {
		if err := os.WriteFile(filepath.Join(dir, "ref"), []byte{byte(i)}, 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no signal after burst")
	}

	// The burst collapses into one signal.
	select {
	case <-w.Events():
		t.Error("unexpected second signal")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_MissingDir(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("New() on missing dir: %v", err)
	}
	w.Close()
}

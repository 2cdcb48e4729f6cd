package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherNotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kanaflow.toml")
	if err := os.WriteFile(path, []byte("input_mode = \"direct\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changes := make(chan string, 8)
	w, err := NewWatcher(func(p string) { changes <- p }, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch() error: %v", err)
	}

	if err := os.WriteFile(path, []byte("input_mode = \"hiragana\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case changed := <-changes:
		if filepath.Base(changed) != "kanaflow.toml" {
			t.Errorf("changed path = %q", changed)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification within 5s")
	}
}

func TestWatcherCoalescesRapidWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kanaflow.toml")
	if err := os.WriteFile(path, []byte("a = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changes := make(chan string, 64)
	w, err := NewWatcher(func(p string) { changes <- p }, WithDebounce(200*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch() error: %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("a = 2\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification within 5s")
	}

	// The debounce window should have folded the burst into one
	// notification.
	select {
	case <-changes:
		t.Error("burst of writes produced more than one notification")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(func(string) {})
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
	if err := w.Watch("anything"); err != ErrWatcherClosed {
		t.Errorf("Watch() after Close = %v, want ErrWatcherClosed", err)
	}
}

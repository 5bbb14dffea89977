package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestCache(t *testing.T) *PerftCache {
	t.Helper()
	dir := t.TempDir()
	c, err := Open(filepath.Join(dir, "db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestPerftCacheMiss(t *testing.T) {
	c := openTestCache(t)

	_, ok, err := c.Get("startpos", 4)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected a miss on an empty cache")
	}
}

func TestPerftCachePutGet(t *testing.T) {
	c := openTestCache(t)

	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	if err := c.Put(fen, 4, 197281); err != nil {
		t.Fatalf("Put: %v", err)
	}

	nodes, ok, err := c.Get(fen, 4)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit after Put")
	}
	if nodes != 197281 {
		t.Errorf("nodes = %d, want 197281", nodes)
	}

	// Different depth, same FEN, must miss.
	if _, ok, _ := c.Get(fen, 5); ok {
		t.Error("expected a miss for an un-memoized depth")
	}
}

func TestPerftCacheStats(t *testing.T) {
	c := openTestCache(t)

	if err := c.Put("a", 1, 20); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Put("b", 2, 400); err != nil {
		t.Fatalf("Put: %v", err)
	}

	n, err := c.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if n != 2 {
		t.Errorf("Stats() = %d, want 2", n)
	}
}

func TestDefaultDirCreatesDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")

	dir, err := DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir: %v", err)
	}
	if dir == "" {
		t.Fatal("DefaultDir returned empty path")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected directory to exist: %v", err)
	}
}

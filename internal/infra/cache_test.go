package infra

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("key", "value", time.Minute)

	got, ok := c.Get("key")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != "value" {
		t.Errorf("got %v, want value", got)
	}
}

func TestCacheMiss(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	if _, ok := c.Get("absent"); ok {
		t.Error("expected cache miss")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("key", "value", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("key"); ok {
		t.Error("expired entry should miss")
	}
	if c.Size() != 0 {
		t.Errorf("Size = %d, want 0 after lazy expiry", c.Size())
	}
}

func TestCacheDelete(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("key", "value", time.Minute)
	c.Delete("key")

	if _, ok := c.Get("key"); ok {
		t.Error("deleted entry should miss")
	}
}

func TestCacheOverwrite(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("key", "first", time.Minute)
	c.Set("key", "second", time.Minute)

	got, _ := c.Get("key")
	if got != "second" {
		t.Errorf("got %v, want second", got)
	}
	if c.Size() != 1 {
		t.Errorf("Size = %d, want 1", c.Size())
	}
}

func TestCacheLRUEviction(t *testing.T) {
	c := NewCache(2)
	defer c.Close()

	c.Set("a", 1, time.Minute)
	time.Sleep(time.Millisecond)
	c.Set("b", 2, time.Minute)
	time.Sleep(time.Millisecond)

	// Touch "a" so "b" becomes the least recently used.
	c.Get("a")
	time.Sleep(time.Millisecond)

	c.Set("c", 3, time.Minute)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should survive, it was touched last")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c should be present")
	}
}

func TestCacheZeroMaxUsesDefault(t *testing.T) {
	c := NewCache(0)
	defer c.Close()

	if c.maxEntries != DefaultMaxCacheEntries {
		t.Errorf("maxEntries = %d, want %d", c.maxEntries, DefaultMaxCacheEntries)
	}
}

func TestCacheCloseIdempotent(t *testing.T) {
	c := NewCache(10)
	c.Close()
	c.Close()
}

package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string](10, time.Hour)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get() on empty cache reported a hit")
	}

	c.Set("a", "one")
	got, ok := c.Get("a")
	if !ok {
		t.Fatal("Get() after Set() reported a miss")
	}
	if got != "one" {
		t.Errorf("Get() = %q, want %q", got, "one")
	}
}

func TestCache_CapacityEvictsOldestInserted(t *testing.T) {
	const maxSize = 3
	c := New[int](maxSize, time.Hour)

	for i := 0; i < maxSize+1; i++ {
		c.Set(fmt.Sprintf("key-%d", i), i)
	}

	if _, ok := c.Get("key-0"); ok {
		t.Error("first-inserted entry survived capacity eviction")
	}
	for i := 1; i <= maxSize; i++ {
		if _, ok := c.Get(fmt.Sprintf("key-%d", i)); !ok {
			t.Errorf("entry key-%d was evicted, want only key-0 evicted", i)
		}
	}
	if c.Len() != maxSize {
		t.Errorf("Len() = %d, want %d", c.Len(), maxSize)
	}
}

func TestCache_EvictionIsInsertionOrderNotAccessOrder(t *testing.T) {
	c := New[int](2, time.Hour)
	c.Set("old", 1)
	c.Set("new", 2)

	// Reading "old" must not promote it.
	if _, ok := c.Get("old"); !ok {
		t.Fatal("Get(old) reported a miss")
	}

	c.Set("newest", 3)
	if _, ok := c.Get("old"); ok {
		t.Error("oldest-inserted entry survived despite recent access")
	}
	if _, ok := c.Get("new"); !ok {
		t.Error("second-inserted entry was evicted")
	}
}

func TestCache_TTLExpiryAtReadTime(t *testing.T) {
	c := New[string](10, time.Minute)

	current := time.Now()
	c.now = func() time.Time { return current }

	c.Set("a", "one")

	current = current.Add(30 * time.Second)
	if _, ok := c.Get("a"); !ok {
		t.Error("entry expired before its TTL elapsed")
	}

	current = current.Add(31 * time.Second)
	if _, ok := c.Get("a"); ok {
		t.Error("entry readable after its TTL elapsed")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after expiry read, want 0 (lazy eviction)", c.Len())
	}
}

func TestCache_SetSameKeyRefreshesInsertionOrder(t *testing.T) {
	c := New[int](2, time.Hour)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 3) // re-insert, "b" is now oldest

	c.Set("c", 4)
	if _, ok := c.Get("b"); ok {
		t.Error("re-inserted key kept its original insertion slot")
	}
	if got, ok := c.Get("a"); !ok || got != 3 {
		t.Errorf("Get(a) = %d, %v, want 3, true", got, ok)
	}
}

func TestCache_Clear(t *testing.T) {
	c := New[int](10, time.Hour)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear(), want 0", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("Get() reported a hit after Clear()")
	}
}

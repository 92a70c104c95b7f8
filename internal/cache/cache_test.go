package cache

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 42)

	if val, ok := c.Get("key1"); !ok || val != 42 {
		t.Errorf("Get(key1) = %d, %v; want 42, true", val, ok)
	}
	if _, ok := c.Get("nonexistent"); ok {
		t.Error("expected nonexistent key to not exist")
	}

	c.Set("key1", 7)
	if val, _ := c.Get("key1"); val != 7 || c.Len() != 1 {
		t.Errorf("overwrite: val=%d len=%d", val, c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	c.Get("a") // b is now the oldest
	c.Set("d", 4)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s should still be cached", k)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
	if ev := c.Stats().Evictions; ev != 1 {
		t.Errorf("Evictions = %d, want 1", ev)
	}
}

func TestCacheGetOrLoad(t *testing.T) {
	c := New[string, int](10)
	loads := 0
	load := func() (int, error) {
		loads++
		return 100, nil
	}

	for i := 0; i < 3; i++ {
		val, err := c.GetOrLoad("key", load)
		if err != nil || val != 100 {
			t.Fatalf("GetOrLoad = %d, %v", val, err)
		}
	}
	if loads != 1 {
		t.Errorf("load called %d times, want 1", loads)
	}

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("stats = %+v, want 2 hits 1 miss", s)
	}
	if s.HitRate < 0.66 || s.HitRate > 0.67 {
		t.Errorf("HitRate = %v", s.HitRate)
	}
}

func TestCacheGetOrLoadErrorNotCached(t *testing.T) {
	c := New[string, int](10)
	boom := errors.New("boom")

	if _, err := c.GetOrLoad("key", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Errorf("failed load was cached")
	}
	if val, err := c.GetOrLoad("key", func() (int, error) { return 5, nil }); err != nil || val != 5 {
		t.Errorf("retry = %d, %v", val, err)
	}
}

func TestCacheDeleteClear(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < 100; i++ {
		c.Set(i, i)
	}
	if c.Len() != 100 {
		t.Fatalf("unlimited cache Len = %d", c.Len())
	}
	if !c.Delete(5) || c.Delete(5) {
		t.Error("Delete should report presence once")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d", c.Len())
	}
	c.Set(1, 1)
	if v, ok := c.Get(1); !ok || v != 1 {
		t.Error("cache unusable after Clear")
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := strconv.Itoa((g * i) % 32)
				_, _ = c.GetOrLoad(key, func() (int, error) { return i, nil })
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len = %d exceeds capacity", c.Len())
	}
}

func TestLRUList(t *testing.T) {
	l := newLRUList[int]()
	n1 := l.PushFront(1)
	l.PushFront(2)
	n3 := l.PushFront(3)

	l.MoveToFront(n1) // order: 1 3 2
	if k, _ := l.RemoveOldest(); k != 2 {
		t.Errorf("oldest = %d, want 2", k)
	}
	l.Remove(n3)
	l.Remove(n3)
	if l.Len() != 1 {
		t.Errorf("Len = %d, want 1", l.Len())
	}
	if k, ok := l.RemoveOldest(); !ok || k != 1 {
		t.Errorf("oldest = %d, %v", k, ok)
	}
	if _, ok := l.RemoveOldest(); ok {
		t.Error("RemoveOldest on empty list reported a key")
	}
}

package redacted

import (
	"sync"
	"testing"
)

type cacheTestUser struct {
	Name  string
	Token string `redacted:"true"`
}

func TestUse_Caching(t *testing.T) {
	Reset()

	r1, err := Use[cacheTestUser]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}
	r2, err := Use[cacheTestUser]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if Fingerprint(r1) != Fingerprint(r2) {
		t.Error("Use() should return the cached request")
	}

	registryMu.RLock()
	n := len(registry)
	registryMu.RUnlock()
	if n != 1 {
		t.Errorf("registry size = %d, want 1", n)
	}
}

func TestUse_ReturnsClone(t *testing.T) {
	Reset()

	r1, _ := Use[cacheTestUser]()
	r1.Properties[1].Redacted = false

	r2, _ := Use[cacheTestUser]()
	if !r2.Properties[1].Redacted {
		t.Error("editing a returned request changed the cache")
	}
}

func TestUse_Concurrent(t *testing.T) {
	Reset()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := Use[cacheTestUser](); err != nil {
				t.Errorf("Use() error: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestReset(t *testing.T) {
	_, _ = Use[cacheTestUser]()

	Reset()

	registryMu.RLock()
	n := len(registry)
	registryMu.RUnlock()
	if n != 0 {
		t.Errorf("registry size after Reset() = %d, want 0", n)
	}
}

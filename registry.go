package redacted

import (
	"reflect"
	"sync"
)

var (
	registry   = make(map[reflect.Type]Request)
	registryMu sync.RWMutex
)

// Use returns the cached request for T, scanning it on first use.
func Use[T any]() (Request, error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[typ]; ok {
		registryMu.RUnlock()
		return cached.Clone(), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[typ]; ok {
		return cached.Clone(), nil
	}

	req, err := Scan[T]()
	if err != nil {
		return Request{}, err
	}

	registry[typ] = req
	return req.Clone(), nil
}

// Reset clears the request registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]Request)
}

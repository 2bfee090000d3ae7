package backend

import (
	"slices"
	"sync"
)

var (
	registryMu sync.RWMutex
	encoders   = make(map[string]LineEncoder)
	// Selection order for Default; the first registered name wins.
	backendPriority = preferredOrder()
)

// Register adds enc to the registry under enc.Name(), replacing any encoder
// already registered with that name. A nil encoder is ignored.
//
// Encoders are shared by every caller, so they must be safe for concurrent
// use. The built-in encoders are stateless values.
func Register(enc LineEncoder) {
	if enc == nil {
		return
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	encoders[enc.Name()] = enc
}

// Unregister removes the encoder registered under name.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(encoders, name)
}

// Available returns the registered encoder names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return sortedNames()
}

// sortedNames must be called with registryMu held.
func sortedNames() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered reports whether an encoder is registered under name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := encoders[name]
	return ok
}

// Get returns the encoder registered under name, or nil.
func Get(name string) LineEncoder {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return encoders[name]
}

// Lookup is like Get but reports a missing encoder as ErrBackendNotAvailable.
func Lookup(name string) (LineEncoder, error) {
	if enc := Get(name); enc != nil {
		return enc, nil
	}
	return nil, ErrBackendNotAvailable
}

// Default returns the best registered encoder for the running CPU: the first
// name in the CPU preference order, else the first registered name in sorted
// order. Returns nil if nothing is registered.
func Default() LineEncoder {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if enc, ok := encoders[name]; ok {
			return enc
		}
	}
	if names := sortedNames(); len(names) > 0 {
		return encoders[names[0]]
	}
	return nil
}

// MustDefault returns the default encoder or panics.
func MustDefault() LineEncoder {
	enc := Default()
	if enc == nil {
		panic("backend: no backend available")
	}
	return enc
}

// Package tsync contains type-safe wrappers around functionality from the sync package in the standard library.
package tsync

import "sync"

// Map is a type-safe version of a sync.Map. The zero Map is empty and ready for use.
type Map[K comparable, V any] struct {
	m sync.Map
}

// Delete deletes the value for a key.
func (sm *Map[K, V]) Delete(key K) {
	sm.m.Delete(key)
}

// Load returns the value stored in the map for a key, or the zero value of V if no value is present.
// The ok result indicates whether value was found in the map.
func (sm *Map[K, V]) Load(key K) (value V, ok bool) {
	v, ok := sm.m.Load(key)
	if !ok {
		return value, false
	}
	return v.(V), true
}

// LoadOrStore returns the existing value for the key if present. Otherwise, it stores and returns the given value.
// The loaded result is true if the value was loaded, false if stored.
func (sm *Map[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	v, loaded := sm.m.LoadOrStore(key, value)
	return v.(V), loaded
}

// Range calls f sequentially for each key and value present in the map. If f returns false, range stops the
// iteration. Range has the same consistency guarantees as sync.Map.Range.
func (sm *Map[K, V]) Range(f func(key K, value V) bool) {
	sm.m.Range(func(key, value any) bool {
		return f(key.(K), value.(V))
	})
}

// Store sets the value for a key.
func (sm *Map[K, V]) Store(key K, value V) {
	sm.m.Store(key, value)
}

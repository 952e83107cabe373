package helper

import "sync"

// SyncMap is a typed view of a sync.Map. The zero value is empty and ready to
// use. Like sync.Map, it is meant for caches whose entries are written once and
// read many times from many goroutines.
type SyncMap[Key comparable, Value any] struct {
	inner sync.Map
}

func (m *SyncMap[Key, Value]) Get(key Key) (value Value, exists bool) {
	rawValue, exists := m.inner.Load(key)
	if !exists {
		return value, exists
	}
	return rawValue.(Value), exists
}

func (m *SyncMap[Key, Value]) PutIfAbsent(key Key, value Value) (actual Value, exists bool) {
	actualValue, exists := m.inner.LoadOrStore(key, value)
	if !exists {
		return value, exists
	}
	return actualValue.(Value), exists
}

// GetOrCompute returns the value stored for key, computing and storing it
// first if absent. When two goroutines race on the same key, compute may run
// twice but both callers get the value that was stored first.
func (m *SyncMap[Key, Value]) GetOrCompute(key Key, compute func(Key) Value) Value {
	if value, exists := m.Get(key); exists {
		return value
	}
	actual, _ := m.PutIfAbsent(key, compute(key))
	return actual
}

package registry

import (
	"fmt"
	"lnodelist/logger"
	"sync"
)

// Handle is an opaque key into a Registry. The zero Handle is never issued.
type Handle int

// IsValid returns true if h could have been issued by a Registry.
func (h Handle) IsValid() bool {
	return h > 0
}

type entry struct {
	value any
	refs  int
}

// Stats is a snapshot of the registry counters.
type Stats struct {
	Live     int    `json:"live" structs:"live"`
	Acquired uint64 `json:"acquired" structs:"acquired"`
	Released uint64 `json:"released" structs:"released"`
}

// Registry maps handles to host values that cannot be boxed by copy.
// It is shared by every list that boxes such a value, so it is guarded by a mutex.
type Registry struct {
	mu       sync.Mutex
	next     Handle
	entries  map[Handle]*entry
	acquired uint64
	released uint64
}

// Default is the process-wide registry.
var Default = New()

func New() *Registry {
	return &Registry{
		next:    1,
		entries: make(map[Handle]*entry),
	}
}

// Acquire stores v and returns a fresh handle holding one claim on it.
func (r *Registry) Acquire(v any) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.next
	r.next++
	r.entries[h] = &entry{value: v, refs: 1}
	r.acquired++
	logger.Debug(fmt.Sprintf("registry: acquired handle %d (%T)", h, v))
	return h
}

// Retain adds a claim to an existing handle.
func (r *Registry) Retain(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[h]; ok {
		e.refs++
		return
	}
	logger.Warn(fmt.Sprintf("registry: retain of unknown handle %d", h))
}

// Resolve returns the value behind h without touching its claims.
func (r *Registry) Resolve(h Handle) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[h]; ok {
		return e.value, true
	}
	return nil, false
}

// Release drops one claim; the value is forgotten when no claim is left.
func (r *Registry) Release(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[h]
	if !ok {
		logger.Warn(fmt.Sprintf("registry: release of unknown handle %d", h))
		return
	}
	e.refs--
	r.released++
	if e.refs <= 0 {
		delete(r.entries, h)
		logger.Debug(fmt.Sprintf("registry: handle %d freed", h))
	}
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Stats{
		Live:     len(r.entries),
		Acquired: r.acquired,
		Released: r.released,
	}
}

// Package registry tracks the editor windows that are currently open and
// fans appearance changes out to all of them.
//
// Membership is what matters: an empty registry means the application has
// no windows left and should exit. Broadcasts walk a snapshot of the members
// taken when the broadcast starts, in registration order, so a window that
// registers or unregisters during a broadcast does not disturb it.
package registry

import (
	"sort"

	"github.com/treykane/landtext/internal/theme"
)

// Window is the part of an editor window the registry needs.
type Window interface {
	ApplyTheme(name theme.Name)
	ApplyFontSize(size int)
}

type entry struct {
	seq    uint64
	window Window
}

// Registry is the set of live windows keyed by window id.
//
// It is owned by the application state and only used from the UI event loop.
type Registry struct {
	entries map[int]entry
	nextSeq uint64
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: map[int]entry{}}
}

// Register adds w under id. Registering an id again replaces the window but
// keeps its original position.
func (r *Registry) Register(id int, w Window) {
	if existing, ok := r.entries[id]; ok {
		r.entries[id] = entry{seq: existing.seq, window: w}
		return
	}
	r.nextSeq++
	r.entries[id] = entry{seq: r.nextSeq, window: w}
}

// Unregister removes id and reports whether it was present.
func (r *Registry) Unregister(id int) bool {
	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	return true
}

// Contains reports whether id is registered.
func (r *Registry) Contains(id int) bool {
	_, ok := r.entries[id]
	return ok
}

// Len is the number of registered windows.
func (r *Registry) Len() int {
	return len(r.entries)
}

// IsEmpty reports whether no windows remain.
func (r *Registry) IsEmpty() bool {
	return len(r.entries) == 0
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return r.entries[ids[i]].seq < r.entries[ids[j]].seq
	})
	return ids
}

// Snapshot returns the registered windows in registration order.
func (r *Registry) Snapshot() []Window {
	ids := r.IDs()
	windows := make([]Window, 0, len(ids))
	for _, id := range ids {
		windows = append(windows, r.entries[id].window)
	}
	return windows
}

// BroadcastTheme applies name to every window registered at call time.
func (r *Registry) BroadcastTheme(name theme.Name) {
	for _, w := range r.Snapshot() {
		w.ApplyTheme(name)
	}
}

// BroadcastFontSize applies size to every window registered at call time.
func (r *Registry) BroadcastFontSize(size int) {
	for _, w := range r.Snapshot() {
		w.ApplyFontSize(size)
	}
}

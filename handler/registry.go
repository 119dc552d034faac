package handler

import (
	"io"
	"strings"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/multierr"

	"github.com/philipp01105/nlogd/core"
)

// Entry is one sink registration at one level.
type Entry struct {
	// Name is the display name given at registration
	Name string
	// Key is the lowercase lookup key
	Key  string
	Sink Sink
}

// Registry maps (level, name) to sinks. Names are case-insensitive;
// iteration follows first-registration order per level.
type Registry struct {
	mu     sync.RWMutex
	levels [core.DebugLevel + 1]*orderedmap.OrderedMap[string, Entry]
	names  *orderedmap.OrderedMap[string, string]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	r := &Registry{names: orderedmap.New[string, string]()}
	for i := range r.levels {
		r.levels[i] = orderedmap.New[string, Entry]()
	}
	return r
}

// Register adds sink under name for the given levels, or all levels when
// none are given. Invalid levels are skipped. An existing registration
// under the same name is replaced at the given levels only. A nil sink is
// ignored.
func (r *Registry) Register(name string, sink Sink, levels ...core.Level) {
	if sink == nil {
		return
	}
	key := strings.ToLower(name)
	entry := Entry{Name: name, Key: key, Sink: sink}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range core.ValidLevels(levels) {
		r.levels[l].Set(key, entry)
	}
	r.names.Set(key, name)
}

// Unregister removes name from the given levels, or all levels when none
// are given, and returns how many level registrations were removed. The
// name is dropped from Names even when other levels still hold it.
func (r *Registry) Unregister(name string, levels ...core.Level) int {
	key := strings.ToLower(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.names.Get(key); !ok {
		return 0
	}
	removed := 0
	for _, l := range core.ValidLevels(levels) {
		if _, ok := r.levels[l].Delete(key); ok {
			removed++
		}
	}
	r.names.Delete(key)
	return removed
}

// UnregisterAll calls Unregister for each name and sums the results.
func (r *Registry) UnregisterAll(names []string, levels ...core.Level) int {
	total := 0
	for _, name := range names {
		total += r.Unregister(name, levels...)
	}
	return total
}

// Names returns the registered display names in first-registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, r.names.Len())
	for pair := r.names.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// At returns a snapshot of the registrations at exactly level.
func (r *Registry) At(level core.Level) []Entry {
	if !level.Valid() {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	m := r.levels[level]
	if m.Len() == 0 {
		return nil
	}
	out := make([]Entry, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Has reports whether any sink is registered at level.
func (r *Registry) Has(level core.Level) bool {
	if !level.Valid() {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.levels[level].Len() > 0
}

// LevelsOf returns the levels name is currently registered at.
func (r *Registry) LevelsOf(name string) []core.Level {
	key := strings.ToLower(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []core.Level
	for i, m := range r.levels {
		if _, ok := m.Get(key); ok {
			out = append(out, core.Level(i))
		}
	}
	return out
}

// Close closes every registered sink that implements io.Closer, once per
// registration name, and returns the combined errors.
func (r *Registry) Close() error {
	r.mu.RLock()
	seen := make(map[string]struct{})
	var closers []io.Closer
	for _, m := range r.levels {
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			if _, ok := seen[pair.Key]; ok {
				continue
			}
			seen[pair.Key] = struct{}{}
			if c, ok := pair.Value.Sink.(io.Closer); ok {
				closers = append(closers, c)
			}
		}
	}
	r.mu.RUnlock()

	var err error
	for _, c := range closers {
		err = multierr.Append(err, c.Close())
	}
	return err
}

package processor

import (
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/philipp01105/nlogd/core"
)

// Processor transforms a record context.
type Processor interface {
	Process(ctx core.Context) core.Context
}

// Func adapts a function to the Processor interface.
type Func func(ctx core.Context) core.Context

// Process calls f(ctx).
func (f Func) Process(ctx core.Context) core.Context {
	return f(ctx)
}

// Entry is one named stage of a Chain.
type Entry struct {
	Name      string
	Processor Processor
}

// Chain is an ordered, named list of processors.
type Chain struct {
	mu    sync.RWMutex
	procs *orderedmap.OrderedMap[string, Processor]
}

// NewChain creates an empty chain
func NewChain() *Chain {
	return &Chain{procs: orderedmap.New[string, Processor]()}
}

// Register inserts p under name, or replaces the processor already
// registered under name while keeping its position. A nil processor is
// ignored.
func (c *Chain) Register(name string, p Processor) {
	if p == nil {
		return
	}
	c.mu.Lock()
	c.procs.Set(name, p)
	c.mu.Unlock()
}

// Unregister removes name from the chain. Unknown names are ignored.
func (c *Chain) Unregister(name string) {
	c.mu.Lock()
	c.procs.Delete(name)
	c.mu.Unlock()
}

// Names returns the processor names in application order.
func (c *Chain) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, c.procs.Len())
	for pair := c.procs.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Entries returns a snapshot of the chain.
func (c *Chain) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Entry, 0, c.procs.Len())
	for pair := c.procs.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Entry{Name: pair.Key, Processor: pair.Value})
	}
	return out
}

// Len returns the number of processors in the chain.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.procs.Len()
}

// Apply threads ctx through every processor in order. The lock is not
// held while processors run.
func (c *Chain) Apply(ctx core.Context) core.Context {
	for _, e := range c.Entries() {
		ctx = e.Processor.Process(ctx)
		if ctx == nil {
			ctx = core.Context{}
		}
	}
	return ctx
}

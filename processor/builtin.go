package processor

import (
	"os"

	"github.com/google/uuid"

	"github.com/philipp01105/nlogd/core"
)

// RedactedValue replaces the values of redacted keys.
const RedactedValue = "[REDACTED]"

// StaticProcessor fills fixed keys that the context does not already carry.
type StaticProcessor struct {
	fields core.Context
}

// Static creates a StaticProcessor for fields
func Static(fields core.Context) *StaticProcessor {
	return &StaticProcessor{fields: fields.Clone()}
}

// Process implements Processor
func (p *StaticProcessor) Process(ctx core.Context) core.Context {
	return ctx.Union(p.fields)
}

// UUIDProcessor stamps each record with a random UUID under Key.
type UUIDProcessor struct {
	Key string
}

// UUID creates a UUIDProcessor writing to key. An existing value is kept.
func UUID(key string) *UUIDProcessor {
	return &UUIDProcessor{Key: key}
}

// Process implements Processor
func (p *UUIDProcessor) Process(ctx core.Context) core.Context {
	if _, ok := ctx[p.Key]; ok {
		return ctx
	}
	out := ctx.Clone()
	out[p.Key] = uuid.NewString()
	return out
}

// HostnameProcessor adds the machine's host name under Key.
type HostnameProcessor struct {
	Key  string
	host string
}

// Hostname creates a HostnameProcessor. The host name is read once.
func Hostname(key string) *HostnameProcessor {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return &HostnameProcessor{Key: key, host: host}
}

// Process implements Processor
func (p *HostnameProcessor) Process(ctx core.Context) core.Context {
	if _, ok := ctx[p.Key]; ok {
		return ctx
	}
	out := ctx.Clone()
	out[p.Key] = p.host
	return out
}

// RedactProcessor masks the values of a fixed set of keys.
type RedactProcessor struct {
	keys map[string]struct{}
}

// Redact creates a RedactProcessor for keys
func Redact(keys ...string) *RedactProcessor {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return &RedactProcessor{keys: set}
}

// Process implements Processor
func (p *RedactProcessor) Process(ctx core.Context) core.Context {
	var out core.Context
	for k := range ctx {
		if _, ok := p.keys[k]; !ok {
			continue
		}
		if out == nil {
			out = ctx.Clone()
		}
		out[k] = RedactedValue
	}
	if out == nil {
		return ctx
	}
	return out
}

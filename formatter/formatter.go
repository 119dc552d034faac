package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/nlogd/core"
)

// Formatter defines the interface for record formatters
type Formatter interface {
	// Format formats a record into bytes
	Format(record *core.Record) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a record and writes it directly to the writer
	FormatTo(record *core.Record, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// IncludeHandler adds the name of the receiving handler to the output
	IncludeHandler bool
	// RawMessage writes the message template instead of the interpolated text
	RawMessage bool
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
}

func (c Config) message(record *core.Record) string {
	if c.RawMessage {
		return record.Message
	}
	return record.Formatted()
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

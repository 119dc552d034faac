package consolehandler

import (
	"errors"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/nlogd/core"
	"github.com/philipp01105/nlogd/formatter"
)

// ErrClosed is returned by Log after Close.
var ErrClosed = errors.New("consolehandler: handler closed")

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls. Formatters prepare data in their own pooled buffers
// and call Write once, so the lock is held only during the actual I/O.
type lockedWriter struct {
	mu *sync.Mutex // points to handler's mu
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// Automatically detected for io.Discard and *os.File.
	ConcurrentWriter bool
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// ConsoleHandler is a sink that formats each record and writes it to an
// io.Writer, one line per record.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	concurrentSafe  bool // true if writer is safe for concurrent Write calls
	mu              sync.Mutex
	lw              lockedWriter
	written         atomic.Uint64
	closed          chan struct{}
	closeOnce       sync.Once
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)
	h := &ConsoleHandler{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
		closed:         make(chan struct{}),
	}
	// Cache WriterFormatter to skip the intermediate byte slice
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	h.lw = lockedWriter{mu: &h.mu, w: h.writer}
	return h
}

// Log formats message and ctx and writes the result.
func (h *ConsoleHandler) Log(message string, ctx core.Context) error {
	select {
	case <-h.closed:
		return ErrClosed
	default:
	}

	record := core.NewRecord(message, ctx)

	var w io.Writer = &h.lw
	if h.concurrentSafe {
		w = h.writer
	}

	var err error
	if h.writerFormatter != nil {
		err = h.writerFormatter.FormatTo(record, w)
	} else {
		var data []byte
		data, err = h.formatter.Format(record)
		if err == nil {
			_, err = w.Write(data)
		}
	}
	if err == nil {
		h.written.Add(1)
	}
	return err
}

// Written returns the number of records written successfully
func (h *ConsoleHandler) Written() uint64 {
	return h.written.Load()
}

// Close marks the handler closed. The writer itself is left open.
func (h *ConsoleHandler) Close() error {
	h.closeOnce.Do(func() { close(h.closed) })
	return nil
}

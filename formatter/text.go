package formatter

import (
	"bytes"
	"io"
	"time"

	"github.com/philipp01105/nlogd/core"
)

// TextFormatter formats records as human-readable text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a record as text
func (f *TextFormatter) Format(record *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(record, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(record *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(record, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.EmergencyLevel: " [EMERGENCY] ",
	core.AlertLevel:     " [ALERT] ",
	core.CriticalLevel:  " [CRITICAL] ",
	core.ErrorLevel:     " [ERROR] ",
	core.WarningLevel:   " [WARNING] ",
	core.NoticeLevel:    " [NOTICE] ",
	core.InfoLevel:      " [INFO] ",
	core.DebugLevel:     " [DEBUG] ",
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextFormatter) formatToBuffer(record *core.Record, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(record.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if record.Level.Valid() {
		buf.WriteString(levelBrackets[record.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	if f.IncludeHandler {
		if name := record.Context.String(core.KeyHandler); name != "" {
			buf.WriteByte('<')
			buf.WriteString(name)
			buf.WriteString("> ")
		}
	}

	buf.WriteString(f.message(record))

	for _, key := range record.PublicKeys() {
		buf.WriteByte(' ')
		buf.WriteString(key)
		buf.WriteByte('=')
		buf.WriteString(core.Stringify(record.Context[key]))
	}

	buf.WriteByte('\n')
}

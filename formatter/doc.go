// Package formatter defines how dispatched records are rendered.
//
// Interpolate is the template collaborator used by the dispatcher to
// compute the _formatted metadata: {key} tokens in the message are
// replaced with the context value under key, and tokens with no
// matching key are left untouched.
//
// Formatter and WriterFormatter serialize a core.Record into bytes for
// sinks that write to an io.Writer. Both built-in formatters
// (TextFormatter and JSONFormatter) implement both interfaces, use a
// pooled bytes.Buffer internally and rely on Append-style functions
// (time.AppendFormat, strconv.AppendInt) on the write path. Context keys
// are written in sorted order; dispatcher metadata (keys starting with
// an underscore) is left out.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter

// Package consolehandler provides a sink that writes formatted records
// to any io.Writer (default: os.Stdout).
//
// Writes are serialized with a mutex unless the writer is known to be
// safe for concurrent use (io.Discard, *os.File, or ConcurrentWriter
// set in ConsoleConfig).
package consolehandler

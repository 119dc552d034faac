// Package multihandler provides a fan-out sink that passes each record
// to several child sinks under a single registration name.
package multihandler

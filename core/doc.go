// Package core defines the shared types used across the dispatcher.
//
// It provides the Level type and the fixed severity table, the Context
// map that travels with every record, the Message sum type that a log
// call's message argument is resolved into, and the typed Field helper
// for building contexts without stringly-typed maps.
//
// The severity table is closed: the eight syslog levels from Emergency
// (most severe) to Debug (least severe), in that order. Level values
// equal the syslog severity codes, so Emergency is 0 and Debug is 7.
// Any other value is invalid and is skipped wherever levels are taken
// as input, except for LevelsAtOrAbove which returns the whole table
// for an unknown level.
//
// A message passed to the dispatcher is resolved once into one of three
// variants: Scalar (plain text), Structured (a value implementing
// Loggable that renders its own text and contributes context) or
// Sequence (a list of messages logged one after another).
package core

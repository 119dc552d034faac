// Package processor provides the ordered chain of context transforms the
// dispatcher applies to every record before fan-out.
//
// A Processor takes a Context and returns the Context to hand to the
// next stage. Processors are named; registering a name that already
// exists replaces the processor in its original slot, so the chain
// order is always the order in which names were first registered.
//
// Processors are expected to be total and cheap. They may return the
// context they were given after mutating it, or a fresh one.
//
// Built-in processors cover common enrichment: Static fills fixed keys,
// UUID stamps a random record id, Hostname adds the machine name and
// Redact masks sensitive values.
package processor

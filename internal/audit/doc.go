// Package audit implements the engine's structured audit pipeline: the
// canonical event model, the sink implementations, and the asynchronous
// dispatcher that decouples engine operations from sink latency.
//
// Session tokens never appear in audit events; an event identifies the
// affected account by identity id and, where useful, by login name in
// metadata.
package audit

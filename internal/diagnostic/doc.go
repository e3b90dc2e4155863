// Package diagnostic provides structured warnings and errors for
// accessor synthesis and model validation.
//
// Diagnostics are data, not control flow: a field that fails the
// private-target check still flows through synthesis, and the caller
// decides what to do with the accumulated messages. Severity-bucketed
// collections support merging results from independent per-field
// synthesis calls.
package diagnostic

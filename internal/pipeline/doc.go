// Package pipeline is the application layer: it wires the classifiers,
// scorers, risk detector, and merge store into the two run modes (date-keyed
// dashboard runs and accumulate-and-resort posts runs).
//
// Runs are batch and single-threaded: one batch is scored and merged to
// completion before state persists. Callers serialize runs externally.
package pipeline

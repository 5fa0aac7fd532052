// Package domain defines the core model types and interfaces shared across
// the scoring pipeline.
//
// Mention is the normalized input record, ScoredMention its immutable scored
// derivative. DashboardState and PostState are the two persisted shapes the
// merge store reconciles against.
package domain

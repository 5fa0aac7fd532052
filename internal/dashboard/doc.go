// Package dashboard implements the rolling merge store.
//
// Two persisted shapes exist on purpose: the date-keyed DashboardState
// (score series, capped alerts, top-mention snapshot) and the
// accumulate-and-resort PostState. The Store interface has file, in-memory,
// and Redis implementations; the file store writes atomically via temp file
// and rename.
package dashboard

// Package store defines the persistence interfaces for boards, lists,
// cards, comments and activity entries, the errors every implementation
// reports, and the transaction helper services use to group writes.
//
// Implementations live in internal/platform/gormstore.
package store

// Package postgres provides PostgreSQL implementations of the store
// interfaces. Schedule state and performance counters are persisted as
// JSONB documents so the stored shape matches the domain shape exactly and
// can survive algorithm migrations without schema changes.
package postgres

// Package store defines the persistence interfaces for users, personal
// profiles, listings and applications, together with the sentinel errors
// every implementation reports. Services depend on these interfaces only;
// the PostgreSQL implementations live in internal/platform/postgres.
package store

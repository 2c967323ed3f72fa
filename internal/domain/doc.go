// Package domain contains the core business records of the job board: users,
// personal profiles, listings, and applications, together with their closed
// enum sets and identifier format. It is independent of storage and transport.
package domain

// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx driver.
//
// Every write validates the JSON form of the resulting record against the
// collection's embedded JSON schema before it is committed, so a record that
// slips past request validation still cannot reach the table in a shape the
// rest of the system does not expect. Partial updates run in a transaction:
// the UPDATE returns the new row, the row is validated, and the transaction
// is rolled back when validation fails.
//
// PostgreSQL errors are translated to the store sentinels by MapError. The
// goose migrations that create the tables are embedded as Migrations.
package postgres

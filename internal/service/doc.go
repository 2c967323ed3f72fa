// Package service contains the use cases of the job board: accounts,
// personal profiles, listings and applications.
//
// Each operation wraps one store call and is the single place where store
// failures are classified. Every error a service returns is an *Error whose
// Kind decides the HTTP status:
//
//   - KindNotFound: the record or, for plural reads, any record is missing
//   - KindUniqueConstraint: the write would duplicate a unique value
//   - KindConstraint: the write failed schema or reference checks
//   - KindUnauthorized: login failed
//   - KindServer: anything else, reported to clients with a generic message
//
// An error that is already an *Error passes through unchanged. Every failure
// is logged with an "operation" attribute before it is returned.
package service

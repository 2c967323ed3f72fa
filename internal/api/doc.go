// Package api is the HTTP surface of the job board. Handlers decode and
// validate request DTOs, map them to domain records, call one service
// operation and write the {message, data} envelope. Service errors carry
// their own status and client message; any other error is reported as a
// generic server error.
package api

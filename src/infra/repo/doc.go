// Package repo contains the PostgreSQL implementation of the repository
// ports defined in src/core/ports.
//
// The single PostgresRepository covers all aggregates (players, rounds,
// ratings, comments, comment votes). It receives the pool via constructor
// injection and translates Postgres constraint violations (23505, 23503)
// into domain errors.
package repo

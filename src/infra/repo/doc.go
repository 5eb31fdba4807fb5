// Package repo contains PostgreSQL implementations of repository interfaces.
//
// This package implements the ports defined in src/core/ports.
// Each repository is responsible for a specific domain aggregate.
//
// Naming convention:
//   - Files: <entity>_repo.go (e.g., thread_repo.go, comment_repo.go)
//   - Types: <Entity>Repository (e.g., ThreadRepository, CommentRepository)
//
// All repositories receive the database pool via constructor injection,
// together with an IDGenerator and a Clock. Public identifiers are the
// generated suffix behind a fixed prefix ("thread-", "comment-", "user-"),
// and timestamps are stored as fixed-width UTC ISO-8601 text so that
// ordering by the column is chronological.
//
// The in-memory adapter in the memory subpackage honours the same contracts.
package repo

// Package domain contains the core domain model for the forum.
//
// This package defines:
//   - Entities: validated value objects built from loosely-typed payloads
//     (NewThread, AddedThread, NewComment, AddedComment, RegisterUser, ...)
//   - Read models: ThreadDetail and the DetailComment projection, which masks
//     the content of soft-deleted comments
//   - Domain Errors: business rule violation errors with stable codes
//
// Rules for this package:
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Entities validate their own payloads: presence of every required
//     property first, then types
//   - Entities are immutable once constructed
package domain

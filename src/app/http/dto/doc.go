// Package dto contains the data objects of HTTP responses.
//
// Request bodies are not bound to DTOs: they are decoded into domain.Payload
// so that entities can tell a missing property from one of the wrong type.
// Responses wrap domain read models under the keys clients expect.
//
// Naming convention:
//   - <Resource>Data for the `data` member of a success response
//     (e.g., AddedThreadData -> {"addedThread": {...}})
package dto

// Package apperr defines the application error taxonomy.
//
// Services resolve every internal failure to one of four kinds before it
// reaches the HTTP layer: NotFound, Conflict, ExternalService, Validation.
// The HTTP handlers map kinds to status codes and only ever expose the
// user-facing message, never the wrapped cause.
package apperr

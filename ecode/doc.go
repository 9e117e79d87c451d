// Package ecode defines the business error codes used by the example API
// responses.
//
// Codes follow a standardized numbering scheme:
//   - 0: Success (OK)
//   - -4xx: Request errors, mirroring their HTTP counterparts
//   - -5xx: Server errors
package ecode

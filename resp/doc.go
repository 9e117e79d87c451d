// Package resp provides standardized JSON response helpers for the example
// HTTP applications.
//
// Success responses write the payload directly; failure responses follow a
// standard structure:
//
//	{
//	  "code": -400,            // Business error code
//	  "message": "...",        // Human-readable message
//	  "errors": {...}          // Optional error details
//	}
//
// Usage:
//
//	resp.Success(w, connection)
//	resp.Fail(w, resp.BadRequest("invalid after cursor"))
package resp

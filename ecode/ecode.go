package ecode

// Business error codes.
const (
	OK               = 0
	Unauthorized     = -401
	AccessDenied     = -403
	NothingFound     = -404
	MethodNotAllowed = -405
	Conflict         = -409
	RequestErr       = -400
	ServerErr        = -500
)

var messages = map[int]string{
	OK:               "success",
	Unauthorized:     "unauthorized",
	AccessDenied:     "access denied",
	NothingFound:     "nothing found",
	MethodNotAllowed: "method not allowed",
	Conflict:         "conflict",
	RequestErr:       "invalid request",
	ServerErr:        "server error",
}

// Text returns the human-readable message for a code.
func Text(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[ServerErr]
}

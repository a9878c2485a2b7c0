package errno

const (
	StatusOK = 10000
)

const (
	InternalError = 50000 + iota
	InvalidParam
)

// Fixed client-facing messages. The HTTP error handler returns these
// verbatim; anything more specific stays in the server logs.
const (
	MsgMissingParams = "Missing required parameters"
	MsgInternalError = "Internal Server Error"
)

package errors

// Code represents an error code. Values mirror the gRPC status codes so the
// service surface can convert them losslessly.
type Code string

// Error codes
const (
	CodeOK       Code = "OK"
	CodeCanceled Code = "CANCELED"
	// CodeInvalidArgument covers malformed exports, bad requests and bad config
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"
	// CodeNotFound is returned for unknown characters and missing catalog records
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	// CodeUnavailable is returned when the host store or a remote catalog cannot be reached
	CodeUnavailable     Code = "UNAVAILABLE"
	CodeDataLoss        Code = "DATA_LOSS"
	CodeUnauthenticated Code = "UNAUTHENTICATED"
)

// Process exit statuses used by the command line
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitNotFound    = 3
	ExitUnavailable = 4
	ExitCanceled    = 130
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitStatus returns the process exit status for the code
func (c Code) ExitStatus() int {
	switch c {
	case CodeOK:
		return ExitOK
	case CodeInvalidArgument, CodeOutOfRange, CodeFailedPrecondition:
		return ExitUsage
	case CodeNotFound:
		return ExitNotFound
	case CodeUnavailable, CodeDeadlineExceeded, CodeResourceExhausted:
		return ExitUnavailable
	case CodeCanceled:
		return ExitCanceled
	default:
		return ExitFailure
	}
}

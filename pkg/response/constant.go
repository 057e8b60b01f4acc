package response

const (
	// MessageSuccess is the message of successful responses.
	MessageSuccess = "Success"

	// InternalServerErrorCode is the error code of internal errors.
	InternalServerErrorCode = 500

	// DefaultErrorMessage is sent instead of internal error details.
	DefaultErrorMessage = "internal server error"
)

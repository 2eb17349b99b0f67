package v1

// ErrorReason values carried by greeting.v1 errors.
type ErrorReason string

const (
	ErrorReason_GREETING_NOT_FOUND     ErrorReason = "GREETING_NOT_FOUND"
	ErrorReason_DEPENDENCY_UNAVAILABLE ErrorReason = "DEPENDENCY_UNAVAILABLE"
)

func (x ErrorReason) String() string {
	return string(x)
}

package repository

// Status tags the outcome of a data-access call.
type Status int

const (
	StatusOK Status = iota
	StatusNotFound
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	default:
		return "failure"
	}
}

// Result is returned by every repository operation. Data is only meaningful
// when Status is StatusOK; Message carries the human readable reason otherwise.
type Result[T any] struct {
	Status  Status
	Data    T
	Message string
}

// OK wraps data in a successful result.
func OK[T any](data T) Result[T] {
	return Result[T]{Status: StatusOK, Data: data}
}

// NotFound reports that the requested record does not exist.
func NotFound[T any](message string) Result[T] {
	return Result[T]{Status: StatusNotFound, Message: message}
}

// Failure reports that the request could not be served.
func Failure[T any](message string) Result[T] {
	return Result[T]{Status: StatusFailure, Message: message}
}

// Success reports whether the call succeeded.
func (r Result[T]) Success() bool {
	return r.Status == StatusOK
}

// Envelope is the {success, data, message} shape exposed over HTTP.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// Envelope converts the result into its wire shape. Data is nil unless the
// call succeeded.
func (r Result[T]) Envelope() Envelope {
	if !r.Success() {
		return Envelope{Success: false, Message: r.Message}
	}
	return Envelope{Success: true, Data: r.Data, Message: r.Message}
}

package probe

import "time"

// F builds a Field. Probes use it to keep result construction compact.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

func NewResult(status Status, fields ...Field) Result {
	return Result{
		Status:    status,
		Fields:    fields,
		Timestamp: time.Now(),
	}
}

func PassResult(fields ...Field) Result {
	return NewResult(StatusPass, fields...)
}

func FailResult(fields ...Field) Result {
	return NewResult(StatusFail, fields...)
}

func WarningResult(fields ...Field) Result {
	return NewResult(StatusWarning, fields...)
}

func CriticalResult(fields ...Field) Result {
	return NewResult(StatusCritical, fields...)
}

// ErrorResult is the shape the engine synthesizes when a probe faults. Probes
// may also return it directly for faults they detect themselves.
func ErrorResult(message string) Result {
	return NewResult(StatusError, F("error", message))
}

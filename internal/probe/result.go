package probe

import (
	"bytes"
	"encoding/json"
	"time"
)

type Status string

const (
	StatusPass     Status = "pass"
	StatusFail     Status = "fail"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
	StatusError    Status = "error"
)

// Field is one probe-specific measurement. Fields keep the order the probe
// recorded them in so report renderers can dump them verbatim.
type Field struct {
	Key   string
	Value any
}

// Result is the outcome of exactly one probe invocation. It is immutable
// after creation; the engine owns it for the duration of the run and hands
// copies to readers.
type Result struct {
	Status    Status
	Fields    []Field
	Timestamp time.Time
}

// Lookup returns the value for key, if the probe recorded it.
func (r Result) Lookup(key string) (any, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Bool returns the value for key as a bool. Absent or non-bool values
// report false.
func (r Result) Bool(key string) bool {
	v, ok := r.Lookup(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Float64 returns the value for key as a float64, widening integer values.
func (r Result) Float64(key string) (float64, bool) {
	v, ok := r.Lookup(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Strings returns the value for key as a string slice. Absent or
// differently-typed values report nil.
func (r Result) Strings(key string) []string {
	v, ok := r.Lookup(key)
	if !ok {
		return nil
	}
	s, _ := v.([]string)
	return s
}

// MarshalJSON emits the result as a single JSON object: status first, then
// every field in recorded order, then the timestamp. This mirrors the shape
// external report consumers expect.
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writePair := func(key string, value any) error {
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	if err := writePair("status", r.Status); err != nil {
		return nil, err
	}
	for _, f := range r.Fields {
		if err := writePair(f.Key, f.Value); err != nil {
			return nil, err
		}
	}
	if err := writePair("timestamp", r.Timestamp); err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

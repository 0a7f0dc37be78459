package probe

import (
	"bytes"
	"encoding/json"
)

// Results is an ordered collection of named probe results. Insertion order is
// the probe declaration order, which report renderers rely on.
type Results struct {
	names  []string
	byName map[string]Result
}

func NewResults() *Results {
	return &Results{byName: make(map[string]Result)}
}

// Add stores res under name. Re-adding a name overwrites the result but keeps
// its original position.
func (rs *Results) Add(name string, res Result) {
	if rs.byName == nil {
		rs.byName = make(map[string]Result)
	}
	if _, exists := rs.byName[name]; !exists {
		rs.names = append(rs.names, name)
	}
	rs.byName[name] = res
}

func (rs *Results) Get(name string) (Result, bool) {
	if rs == nil {
		return Result{}, false
	}
	r, ok := rs.byName[name]
	return r, ok
}

// Names returns the probe names in insertion order.
func (rs *Results) Names() []string {
	if rs == nil {
		return nil
	}
	out := make([]string, len(rs.names))
	copy(out, rs.names)
	return out
}

func (rs *Results) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.names)
}

// Clone returns an independent copy. Result values themselves are immutable,
// so a shallow copy of the collection suffices.
func (rs *Results) Clone() *Results {
	out := NewResults()
	if rs == nil {
		return out
	}
	out.names = make([]string, len(rs.names))
	copy(out.names, rs.names)
	for k, v := range rs.byName {
		out.byName[k] = v
	}
	return out
}

// MarshalJSON emits a JSON object keyed by probe name, in insertion order.
func (rs *Results) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range rs.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(rs.byName[name])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

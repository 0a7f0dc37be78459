package probe

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestResults_PreservesInsertionOrder(t *testing.T) {
	rs := NewResults()
	rs.Add("Battery Health", PassResult())
	rs.Add("Camera Module", FailResult())
	rs.Add("Thermal Monitoring", WarningResult())

	want := []string{"Battery Health", "Camera Module", "Thermal Monitoring"}
	if got := rs.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	if rs.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", rs.Len())
	}
}

func TestResults_OverwriteKeepsPosition(t *testing.T) {
	rs := NewResults()
	rs.Add("first", PassResult())
	rs.Add("second", PassResult())
	rs.Add("first", FailResult())

	want := []string{"first", "second"}
	if got := rs.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() after overwrite = %v, want %v", got, want)
	}
	r, ok := rs.Get("first")
	if !ok || r.Status != StatusFail {
		t.Fatalf("Get(first) = %v, %v; want overwritten fail result", r.Status, ok)
	}
}

func TestResults_CloneIsIndependent(t *testing.T) {
	rs := NewResults()
	rs.Add("a", PassResult())

	clone := rs.Clone()
	clone.Add("b", FailResult())

	if rs.Len() != 1 {
		t.Fatalf("original mutated through clone: Len() = %d, want 1", rs.Len())
	}
	if clone.Len() != 2 {
		t.Fatalf("clone Len() = %d, want 2", clone.Len())
	}
}

func TestResults_NilReceiver(t *testing.T) {
	var rs *Results

	if rs.Len() != 0 {
		t.Error("nil Results Len() != 0")
	}
	if rs.Names() != nil {
		t.Error("nil Results Names() != nil")
	}
	if _, ok := rs.Get("x"); ok {
		t.Error("nil Results Get() reported ok")
	}
	if clone := rs.Clone(); clone == nil || clone.Len() != 0 {
		t.Error("nil Results Clone() did not return empty collection")
	}
}

func TestResults_MarshalJSON_KeyOrder(t *testing.T) {
	rs := NewResults()
	rs.Add("zeta", PassResult())
	rs.Add("alpha", PassResult())

	data, err := json.Marshal(rs)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	s := string(data)
	if strings.Index(s, `"zeta"`) > strings.Index(s, `"alpha"`) {
		t.Fatalf("keys not in insertion order: %s", s)
	}
}

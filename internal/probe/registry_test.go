package probe

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"hwmedic/internal/config"
	"hwmedic/internal/hostcmd"
)

type stubProbe struct {
	name string
}

func (p *stubProbe) Name() string        { return p.name }
func (p *stubProbe) Title() string       { return p.name }
func (p *stubProbe) Description() string { return "stub" }
func (p *stubProbe) Run(ctx context.Context, cfg *config.Config, host hostcmd.Runner) (Result, error) {
	return PassResult(), nil
}

func init() {
	Register(&stubProbe{name: "alpha"})
	Register(&stubProbe{name: "beta"})
	Register(&stubProbe{name: "gamma"})
}

func registeredNames(probes []Probe) []string {
	names := make([]string, len(probes))
	for i, p := range probes {
		names[i] = p.Name()
	}
	return names
}

func TestList_RegistrationOrder(t *testing.T) {
	want := []string{"alpha", "beta", "gamma"}
	if got := registeredNames(List()); !reflect.DeepEqual(got, want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
}

func TestRegister_DuplicatePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on duplicate registration")
		}
		if !strings.Contains(r.(string), "already registered") {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()
	Register(&stubProbe{name: "alpha"})
}

func TestResolve_EmptySelectorReturnsAll(t *testing.T) {
	probes, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if got := registeredNames(probes); !reflect.DeepEqual(got, want) {
		t.Fatalf("Resolve(\"\") = %v, want %v", got, want)
	}
}

func TestResolve_KeepsRegistrationOrder(t *testing.T) {
	// Selector order must not affect execution order.
	probes, err := Resolve("gamma, alpha")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	want := []string{"alpha", "gamma"}
	if got := registeredNames(probes); !reflect.DeepEqual(got, want) {
		t.Fatalf("Resolve(gamma, alpha) = %v, want %v", got, want)
	}
}

func TestResolve_UnknownName(t *testing.T) {
	_, err := Resolve("alpha,unknown")
	if err == nil {
		t.Fatal("expected error for unknown probe name")
	}
	if !strings.Contains(err.Error(), "probe not found: unknown") {
		t.Fatalf("unexpected error: %v", err)
	}
}

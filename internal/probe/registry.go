package probe

import (
	"fmt"
	"strings"
	"sync"
)

// The registry preserves registration order: the engine runs probes in the
// order their files register them, and several probes (CPU and memory stress)
// claim exclusive system resources and rely on never overlapping.
var (
	registry []Probe
	byName   = make(map[string]Probe)
	mu       sync.RWMutex
)

func Register(p Probe) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := byName[p.Name()]; exists {
		panic(fmt.Sprintf("probe %s already registered", p.Name()))
	}
	byName[p.Name()] = p
	registry = append(registry, p)
}

// List returns all registered probes in registration order.
func List() []Probe {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Probe, len(registry))
	copy(out, registry)
	return out
}

// Resolve selects probes by a comma-separated name list. An empty selector
// means all probes. Selected probes keep their registration order regardless
// of selector order, so a partial battery still runs in the declared sequence.
func Resolve(selector string) ([]Probe, error) {
	mu.RLock()
	defer mu.RUnlock()

	if selector == "" {
		out := make([]Probe, len(registry))
		copy(out, registry)
		return out, nil
	}

	wanted := make(map[string]bool)
	for _, name := range strings.Split(selector, ",") {
		name = strings.TrimSpace(name)
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("probe not found: %s", name)
		}
		wanted[name] = true
	}

	var selected []Probe
	for _, p := range registry {
		if wanted[p.Name()] {
			selected = append(selected, p)
		}
	}
	return selected, nil
}

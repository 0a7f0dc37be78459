package hostcmd

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Fake is a Runner for tests. Responses are keyed by the full command line
// (name and args joined by spaces).
type Fake struct {
	mu        sync.Mutex
	responses map[string]FakeResponse
	calls     []string
}

type FakeResponse struct {
	Output []byte
	Err    error
}

func NewFake() *Fake {
	return &Fake{responses: make(map[string]FakeResponse)}
}

// Stub registers the response for a command line.
func (f *Fake) Stub(cmdline string, output string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[cmdline] = FakeResponse{Output: []byte(output), Err: err}
}

// Calls returns every command line executed so far.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *Fake) run(name string, args []string) ([]byte, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	f.mu.Lock()
	f.calls = append(f.calls, cmdline)
	resp, ok := f.responses[cmdline]
	f.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("hostcmd fake: no stub for %q", cmdline)
	}
	return resp.Output, resp.Err
}

func (f *Fake) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return f.run(name, args)
}

func (f *Fake) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return f.run(name, args)
}

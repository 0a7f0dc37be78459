package checks

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"hwmedic/internal/config"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/probe"
)

func memoryStressCmdline(mb int) string {
	return fmt.Sprintf("stress-ng --vm 1 --vm-bytes %dM --timeout 30s --verify", mb)
}

func TestMemoryStressProbe_Clean(t *testing.T) {
	host := hostcmd.NewFake()
	host.Stub(memoryStressCmdline(1024), "stress-ng: info: successful run completed", nil)

	res, err := (&MemoryStressProbe{}).Run(context.Background(), config.New(), host)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if res.Status != probe.StatusPass {
		t.Fatalf("status = %s, want pass", res.Status)
	}
	if res.Bool("errors_detected") {
		t.Error("errors_detected = true on clean run")
	}
	if mb, _ := res.Float64("memory_tested_mb"); mb != 1024 {
		t.Errorf("memory_tested_mb = %v, want 1024", mb)
	}
}

func TestMemoryStressProbe_FailureInOutput(t *testing.T) {
	host := hostcmd.NewFake()
	host.Stub(memoryStressCmdline(1024), "stress-ng: error: vm verify FAILED", nil)

	res, err := (&MemoryStressProbe{}).Run(context.Background(), config.New(), host)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if res.Status != probe.StatusFail {
		t.Fatalf("status = %s, want fail", res.Status)
	}
	if !res.Bool("errors_detected") {
		t.Error("errors_detected = false despite verify failure in output")
	}
}

func TestMemoryStressProbe_NonZeroExitIsTestSignal(t *testing.T) {
	host := hostcmd.NewFake()
	host.Stub(memoryStressCmdline(1024), "", &exec.ExitError{})

	res, err := (&MemoryStressProbe{}).Run(context.Background(), config.New(), host)
	if err != nil {
		t.Fatalf("non-zero exit must not be a probe fault: %v", err)
	}

	if res.Status != probe.StatusFail {
		t.Fatalf("status = %s, want fail", res.Status)
	}
	if !res.Bool("errors_detected") {
		t.Error("errors_detected = false despite non-zero exit")
	}
}

func TestMemoryStressProbe_InvocationFailureIsFault(t *testing.T) {
	host := hostcmd.NewFake()
	host.Stub(memoryStressCmdline(1024), "", errors.New("executable not found"))

	_, err := (&MemoryStressProbe{}).Run(context.Background(), config.New(), host)
	if err == nil {
		t.Fatal("expected error when stress-ng cannot be invoked")
	}
}

func TestMemoryStressProbe_SizesFromConfig(t *testing.T) {
	host := hostcmd.NewFake()
	host.Stub(memoryStressCmdline(2048), "ok", nil)

	cfg := config.New()
	cfg.Stress.MemoryTestMB = 2048

	res, err := (&MemoryStressProbe{}).Run(context.Background(), cfg, host)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if res.Status != probe.StatusPass {
		t.Fatalf("status = %s, want pass", res.Status)
	}
	if mb, _ := res.Float64("memory_tested_mb"); mb != 2048 {
		t.Errorf("memory_tested_mb = %v, want 2048", mb)
	}
}

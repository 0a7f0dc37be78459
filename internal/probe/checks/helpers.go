package checks

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/sensors"

	"hwmedic/internal/hostcmd"
)

// defaultCPUTemp is the fallback reading when no temperature source works.
const defaultCPUTemp = 45.0

// detectTimeout bounds the quick detection probes.
const detectTimeout = 15 * time.Second

// readCPUTemp reads the CPU die temperature, best effort: powermetrics first,
// then gopsutil sensors, then the fallback constant.
func readCPUTemp(ctx context.Context, host hostcmd.Runner) float64 {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out, err := host.Output(ctx, "powermetrics", "--samplers", "smc", "-i", "1000", "-n", "1")
	if err == nil {
		for _, line := range strings.Split(string(out), "\n") {
			if !strings.Contains(line, "CPU die temperature") {
				continue
			}
			_, after, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			fields := strings.Fields(after)
			if len(fields) == 0 {
				continue
			}
			if temp, err := strconv.ParseFloat(fields[0], 64); err == nil {
				return temp
			}
		}
	}

	if temps, err := sensors.TemperaturesWithContext(ctx); err == nil {
		for _, t := range temps {
			if strings.Contains(strings.ToLower(t.SensorKey), "cpu") && t.Temperature > 0 {
				return t.Temperature
			}
		}
	}

	return defaultCPUTemp
}

// profilerValue extracts the trimmed value of the first "Key: value" line
// containing key.
func profilerValue(out, key string) (string, bool) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, key) {
			continue
		}
		if _, after, ok := strings.Cut(line, ":"); ok {
			return strings.TrimSpace(after), true
		}
	}
	return "", false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

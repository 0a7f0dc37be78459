package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Thresholds Thresholds `yaml:"thresholds"`
	Stress     Stress     `yaml:"stress"`
	Report     Report     `yaml:"reporting"`
	Server     Server     `yaml:"server"`
}

type Thresholds struct {
	// BatteryCyclesCritical is the charge cycle count above which the battery
	// probe reports a warning (see battery_cycles_critical).
	BatteryCyclesCritical int `yaml:"battery_cycles_critical"`

	// BatteryHealthWarning is the charge percentage below which the battery
	// probe reports a warning (see battery_health_warning).
	BatteryHealthWarning float64 `yaml:"battery_health_warning"`

	// CPUTempWarning is the CPU temperature in °C above which the thermal
	// probe reports a warning (see cpu_temp_warning).
	CPUTempWarning float64 `yaml:"cpu_temp_warning"`

	// CPUTempCritical is the CPU temperature in °C above which the thermal
	// probe reports critical, and above which the CPU stress probe classifies
	// the machine as thermally throttled (see cpu_temp_critical).
	CPUTempCritical float64 `yaml:"cpu_temp_critical"`
}

type Stress struct {
	// DurationSeconds is the CPU stress probe's load duration (see
	// stress_duration). The probe's own exec timeout is derived from it.
	DurationSeconds int `yaml:"stress_duration"`

	// MemoryTestMB is how many megabytes the memory endurance probe exercises
	// (see memory_test_mb).
	MemoryTestMB int `yaml:"memory_test_mb"`
}

// Duration returns the CPU stress load duration.
func (s Stress) Duration() time.Duration {
	return time.Duration(s.DurationSeconds) * time.Second
}

type Report struct {
	// Directory is where exported report artifacts are written.
	Directory string `yaml:"directory"`
}

type Server struct {
	// Host and Port are the serve command's listen address.
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func New() *Config {
	return &Config{
		Thresholds: Thresholds{
			BatteryCyclesCritical: 1000,
			BatteryHealthWarning:  80,
			CPUTempWarning:        85,
			CPUTempCritical:       95,
		},
		Stress: Stress{
			DurationSeconds: 60,
			MemoryTestMB:    1024,
		},
		Report: Report{
			Directory: "reports",
		},
		Server: Server{
			Host: "127.0.0.1",
			Port: 8686,
		},
	}
}

// Load reads a YAML config file over the defaults from New. Keys absent from
// the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the engine must not be constructed with.
// A bad threshold surfaces here, never mid-run.
func (c *Config) Validate() error {
	if c.Thresholds.BatteryCyclesCritical <= 0 {
		return errors.New("battery_cycles_critical must be > 0")
	}
	if c.Thresholds.BatteryHealthWarning <= 0 || c.Thresholds.BatteryHealthWarning > 100 {
		return fmt.Errorf("battery_health_warning must be in (0, 100], got %v", c.Thresholds.BatteryHealthWarning)
	}
	if c.Thresholds.CPUTempWarning <= 0 {
		return errors.New("cpu_temp_warning must be > 0")
	}
	if c.Thresholds.CPUTempCritical <= 0 {
		return errors.New("cpu_temp_critical must be > 0")
	}
	if c.Thresholds.CPUTempWarning >= c.Thresholds.CPUTempCritical {
		return fmt.Errorf("cpu_temp_warning (%v) must be below cpu_temp_critical (%v)",
			c.Thresholds.CPUTempWarning, c.Thresholds.CPUTempCritical)
	}
	if c.Stress.DurationSeconds <= 0 {
		return errors.New("stress_duration must be > 0")
	}
	if c.Stress.MemoryTestMB <= 0 {
		return errors.New("memory_test_mb must be > 0")
	}
	if c.Report.Directory == "" {
		return errors.New("reporting directory must not be empty")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be in [1, 65535], got %d", c.Server.Port)
	}
	return nil
}

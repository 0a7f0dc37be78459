// Package checks implements the fixed hardware probe battery.
package checks

import "hwmedic/internal/probe"

// Registration order is execution order. Keep the stress probes (CPU, memory)
// adjacent and sequential: they claim exclusive system resources and must
// never overlap.
func init() {
	probe.Register(&SystemInfoProbe{})
	probe.Register(&BatteryProbe{})
	probe.Register(&CameraProbe{})
	probe.Register(&MicrophoneProbe{})
	probe.Register(&AudioProbe{})
	probe.Register(&MIDIProbe{})
	probe.Register(&BluetoothProbe{})
	probe.Register(&WiFiProbe{})
	probe.Register(&USBProbe{})
	probe.Register(&CPUStressProbe{})
	probe.Register(&MemoryStressProbe{})
	probe.Register(&SSDHealthProbe{})
	probe.Register(&ThermalProbe{})
	probe.Register(&AuthenticityProbe{})
}

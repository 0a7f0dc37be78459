package probe

// Well-known probe names. The analyzer keys its detection rules off these, so
// they live here rather than in the individual probe files.
const (
	NameSystemInfo   = "System Information"
	NameBattery      = "Battery Health"
	NameCamera       = "Camera Module"
	NameMicrophone   = "Microphone"
	NameAudio        = "Audio System"
	NameMIDI         = "MIDI System"
	NameBluetooth    = "Bluetooth"
	NameWiFi         = "Wi-Fi"
	NameUSB          = "USB/Thunderbolt"
	NameCPUStress    = "CPU Stress Test"
	NameMemoryStress = "Memory Endurance"
	NameSSDHealth    = "SSD Health"
	NameThermal      = "Thermal Monitoring"
	NameAuthenticity = "Part Authenticity"
)

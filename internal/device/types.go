package device

// Platform represents a target platform
type Platform string

const (
	PlatformIOS      Platform = "ios"
	PlatformMacOS    Platform = "macos"
	PlatformWatchOS  Platform = "watchos"
	PlatformTVOS     Platform = "tvos"
	PlatformVisionOS Platform = "visionos"
)

// DeviceState represents the current state of a simulator
type DeviceState string

const (
	StateShutdown     DeviceState = "Shutdown"
	StateBooted       DeviceState = "Booted"
	StateBooting      DeviceState = "Booting"
	StateShuttingDown DeviceState = "Shutting Down"
)

// Device represents one available simulator destination
type Device struct {
	UDID        string      `json:"udid"`
	Name        string      `json:"name"`
	Platform    Platform    `json:"platform"`
	OSVersion   string      `json:"os_version"`
	State       DeviceState `json:"state"`
	IsAvailable bool        `json:"is_available"`
}

package entities

import "runtime"

// HostPlatform is the operating system family the build runs on
type HostPlatform string

// Recognized host platforms
const (
	PlatformWindows HostPlatform = "windows"
	PlatformLinux   HostPlatform = "linux"
	PlatformDarwin  HostPlatform = "darwin"
	PlatformOther   HostPlatform = "other"
)

// DetectPlatform maps runtime.GOOS to a HostPlatform
func DetectPlatform() HostPlatform {
	return PlatformFromGOOS(runtime.GOOS)
}

// PlatformFromGOOS maps a GOOS value to a HostPlatform
func PlatformFromGOOS(goos string) HostPlatform {
	switch goos {
	case "windows":
		return PlatformWindows
	case "linux":
		return PlatformLinux
	case "darwin":
		return PlatformDarwin
	default:
		return PlatformOther
	}
}

// IsWindows reports whether the platform is the Windows family
func (p HostPlatform) IsWindows() bool {
	return p == PlatformWindows
}

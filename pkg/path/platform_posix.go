//go:build !windows

package path

// NativeStyle is the Style corresponding to the platform the binary was
// built for. It is the default used by convenience functions that don't
// accept an explicit Style, mirroring the compile-time platform
// conditioning the teacher applies to its own filesystem code (e.g.
// DeviceID having separate POSIX and Windows implementations).
const NativeStyle = StylePOSIX

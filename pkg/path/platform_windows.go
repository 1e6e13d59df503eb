//go:build windows

package path

// NativeStyle is the Style corresponding to the platform the binary was
// built for.
const NativeStyle = StyleWindows

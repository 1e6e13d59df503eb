//go:build !windows

package fsnode

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// deviceID returns the device number of the filesystem containing path,
// used to detect mount-point boundaries during a directory walk (the same
// concern the teacher's DeviceID addresses for its own traversal). On
// POSIX it comes straight from stat(2).
func deviceID(path string) (uint64, error) {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return 0, errors.Wrap(err, "unable to stat path for device id")
	}
	return uint64(stat.Dev), nil
}

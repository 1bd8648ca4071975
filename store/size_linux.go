package store

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// deviceSize asks the kernel for the block device size in bytes.
func deviceSize(f *os.File) (int64, error) {
	size, err := unix.IoctlGetInt(int(f.Fd()), unix.BLKGETSIZE64)
	if err != nil {
		return 0, fmt.Errorf("unable to determine device size: %w", err)
	}
	return int64(size), nil
}

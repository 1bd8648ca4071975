package store

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// these constants should be part of "golang.org/x/sys/unix", but aren't
const (
	dkiocGetBlockSize  = 0x40046418
	dkiocGetBlockCount = 0x40086419
)

// deviceSize asks the kernel for the block size and count of a device.
func deviceSize(f *os.File) (int64, error) {
	fd := int(f.Fd())

	blockSize, err := unix.IoctlGetInt(fd, dkiocGetBlockSize)
	if err != nil {
		return 0, fmt.Errorf("unable to determine block size: %w", err)
	}
	blockCount, err := unix.IoctlGetInt(fd, dkiocGetBlockCount)
	if err != nil {
		return 0, fmt.Errorf("unable to determine block count: %w", err)
	}

	return int64(blockSize) * int64(blockCount), nil
}

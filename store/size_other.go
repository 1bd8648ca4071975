//go:build !linux && !darwin

package store

import (
	"errors"
	"os"
)

func deviceSize(_ *os.File) (int64, error) {
	return 0, errors.New("block devices not supported on this platform")
}

//go:build !darwin

package main

import "errors"

func defaultMountPoint() (string, error) {
	return "", errors.New("mount point required")
}

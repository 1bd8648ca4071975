package main

import (
	"errors"
	"fmt"
	"os"
)

// defaultMountPoint creates a directory under /Volumes, where the
// Finder expects removable volumes to appear.
func defaultMountPoint() (string, error) {
	path := "/Volumes/Focus"
	if err := os.Mkdir(path, 0777); err == nil || os.IsPermission(err) {
		return path, nil
	}
	for i := 1; i < 256; i++ {
		numbered := fmt.Sprintf("%s-%d", path, i)
		if err := os.Mkdir(numbered, 0777); err == nil || os.IsPermission(err) {
			return numbered, nil
		}
	}
	return "", errors.New("unable to create a mount point under /Volumes")
}

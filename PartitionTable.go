// Package iipart exposes the partition table of an Apple II era
// hard disk image as an ordered list of named byte ranges.
package iipart

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// HeaderSize is the number of bytes detection and parsing need
	// from the start of the image.
	HeaderSize = 1536

	// BlockSize is the disk block size. Every partition offset and
	// length is a multiple of it.
	BlockSize = 512
)

var ErrUnknownFormat = errors.New("unknown partition table format")

// Partition is a single named byte range of the backing image.
type Partition struct {
	Name   string
	Start  int64
	Length int64
}

// Table holds the partitions in header order. That order is the order
// of every directory listing.
type Table []Partition

// Lookup returns the first partition with the given name. Duplicate
// names shadow by first match.
func (t Table) Lookup(name string) (Partition, bool) {
	for _, p := range t {
		if p.Name == name {
			return p, true
		}
	}
	return Partition{}, false
}

// Validate rejects what Lookup silently tolerates: duplicate names and
// zero length partitions. The default mount is permissive; strict
// mounts call this before presenting the filesystem.
func (t Table) Validate() error {
	seen := make(map[string]struct{}, len(t))
	for i, p := range t {
		if p.Length == 0 {
			return fmt.Errorf("partition %d (%s): zero length", i+1, p.Name)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("partition %d: duplicate name %q", i+1, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}

// String creates a human readable listing, start and length in blocks.
func (t Table) String() string {
	var b strings.Builder
	for i, p := range t {
		fmt.Fprintf(&b, "%2d: %-20s %8d %8d\n", i+1, p.Name, p.Start/BlockSize, p.Length/BlockSize)
	}
	return b.String()
}

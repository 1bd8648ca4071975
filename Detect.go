package iipart

import (
	"bytes"
	"encoding/binary"
)

// Format identifies a partition table layout.
type Format int

const (
	Unknown Format = iota
	Focus
	Zip
	MicroDrive
)

func (f Format) String() string {
	switch f {
	case Focus:
		return "Focus"
	case Zip:
		return "Zip"
	case MicroDrive:
		return "MicroDrive"
	default:
		return "unknown"
	}
}

// The vendor strings are NUL terminated on disk and the terminator
// takes part in the comparison.
var (
	focusSignature = []byte("Parsons Engin.\x00")
	zipSignature   = []byte("Zip Technolog.\x00")
)

// Detect classifies the first HeaderSize bytes of an image. Focus and
// Zip share one layout and one parser; only the vendor string differs.
// Anything unrecognized, including a short buffer, is Unknown.
func Detect(header []byte) Format {
	if len(header) < HeaderSize {
		return Unknown
	}
	switch {
	case bytes.Equal(header[:len(focusSignature)], focusSignature):
		return Focus
	case bytes.Equal(header[:len(zipSignature)], zipSignature):
		return Zip
	case header[0] == 0xca && header[1] == 0xcc &&
		binary.LittleEndian.Uint32(header[0x20:]) == 256:
		return MicroDrive
	}
	return Unknown
}

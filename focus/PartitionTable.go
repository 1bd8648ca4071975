// Package focus parses the partition table written by Focus and Zip
// Technologies drive controllers. The two vendors share one layout;
// only the signature string differs.
package focus

import (
	"encoding/binary"
	"fmt"
	"strings"

	iipart "github.com/ksherlock/ii-part"
)

const (
	countOffset = 15

	// each partition has a 16 byte size record and, one block later,
	// a 32 byte name
	sizeBase   = 0x20
	sizeStride = 0x10
	nameBase   = 512 + 0x20
	nameStride = 0x20
)

// Parse decodes a Focus/Zip header. The caller has already matched the
// vendor signature; start and length come out as byte values.
func Parse(header []byte) (iipart.Table, error) {
	if len(header) < iipart.HeaderSize {
		return nil, fmt.Errorf("focus: header is %d bytes, need %d", len(header), iipart.HeaderSize)
	}

	count := int(header[countOffset])
	table := make(iipart.Table, 0, count)

	for i := 0; i < count; i++ {
		nameOffset := nameBase + i*nameStride
		if nameOffset+nameStride > len(header) {
			// the header cannot describe any more entries
			break
		}
		size := header[sizeBase+i*sizeStride:]
		start := binary.LittleEndian.Uint32(size)
		blocks := binary.LittleEndian.Uint32(size[4:])

		table = append(table, iipart.Partition{
			Name:   strings.TrimRight(string(header[nameOffset:nameOffset+nameStride]), "\x00"),
			Start:  int64(start) * iipart.BlockSize,
			Length: int64(blocks) * iipart.BlockSize,
		})
	}

	return table, nil
}

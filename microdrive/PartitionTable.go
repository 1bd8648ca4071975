// Package microdrive parses the ///SHH Systeme MicroDrive partition
// table. A single header carries two independent partition groups.
package microdrive

import (
	"encoding/binary"
	"fmt"

	iipart "github.com/ksherlock/ii-part"
)

type group struct {
	countOffset int
	startBase   int
	blocksBase  int
	prefix      string
}

var groups = []group{
	{0x0c, 0x20, 0x40, "MicroDrive1-"},
	{0x0d, 0x80, 0xa0, "MicroDrive2-"},
}

// Parse decodes a MicroDrive header. Group 1 precedes group 2 in the
// table; names are numbered from 1 and restart per group.
func Parse(header []byte) (iipart.Table, error) {
	if len(header) < iipart.HeaderSize {
		return nil, fmt.Errorf("microdrive: header is %d bytes, need %d", len(header), iipart.HeaderSize)
	}

	var table iipart.Table
	for _, g := range groups {
		count := int(header[g.countOffset])
		for i := 0; i < count; i++ {
			start := binary.LittleEndian.Uint32(header[g.startBase+i*4:])
			blocks := read24(header[g.blocksBase+i*4:])

			table = append(table, iipart.Partition{
				Name:   fmt.Sprintf("%s%d", g.prefix, i+1),
				Start:  int64(start) * iipart.BlockSize,
				Length: int64(blocks) * iipart.BlockSize,
			})
		}
	}

	return table, nil
}

// read24 zero extends a 24 bit little endian block count. The fourth
// byte of each 4 byte slot belongs to the next entry.
func read24(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

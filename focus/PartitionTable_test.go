package focus_test

import (
	"encoding/binary"
	"testing"

	iipart "github.com/ksherlock/ii-part"
	"github.com/ksherlock/ii-part/focus"
)

// focusHeader builds a header with the given entries already encoded.
type entry struct {
	name   string
	start  uint32
	blocks uint32
}

func focusHeader(entries []entry) []byte {
	header := make([]byte, iipart.HeaderSize)
	copy(header, "Parsons Engin.\x00")
	header[15] = byte(len(entries))
	for i, e := range entries {
		binary.LittleEndian.PutUint32(header[0x20+i*0x10:], e.start)
		binary.LittleEndian.PutUint32(header[0x20+i*0x10+4:], e.blocks)
		copy(header[512+0x20+i*0x20:], e.name)
	}
	return header
}

func TestParse(t *testing.T) {
	table, err := focus.Parse(focusHeader([]entry{
		{"BOOT", 1, 100},
		{"DATA", 101, 4000},
	}))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	expected := iipart.Table{
		{Name: "BOOT", Start: 512, Length: 51200},
		{Name: "DATA", Start: 51712, Length: 2048000},
	}
	if len(table) != len(expected) {
		t.Fatalf("Parse() produced %d partitions, expected %d", len(table), len(expected))
	}
	for i, p := range expected {
		if table[i] != p {
			t.Errorf("partition %d = %+v, expected %+v", i, table[i], p)
		}
	}
}

func TestParseZeroLength(t *testing.T) {
	// zero length partitions are still recorded
	table, err := focus.Parse(focusHeader([]entry{
		{"EMPTY", 1, 0},
		{"DATA", 1, 16},
	}))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("Parse() produced %d partitions, expected 2", len(table))
	}
	if table[0].Name != "EMPTY" || table[0].Length != 0 {
		t.Errorf("partition 0 = %+v, expected a zero length EMPTY", table[0])
	}
}

func TestParseNamePadding(t *testing.T) {
	header := focusHeader([]entry{{"", 1, 1}})
	// a full 32 byte name field padded with trailing NULs
	copy(header[512+0x20:], "PRODOS.PART\x00\x00\x00")

	table, err := focus.Parse(header)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if table[0].Name != "PRODOS.PART" {
		t.Errorf("name = %q, expected trailing NULs stripped", table[0].Name)
	}
}

func TestParseCountBeyondHeader(t *testing.T) {
	// entry 31 is the last one whose name field fits in 1536 bytes; a
	// larger declared count cannot describe more
	header := focusHeader(nil)
	header[15] = 255

	table, err := focus.Parse(header)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(table) != 31 {
		t.Errorf("Parse() produced %d partitions, expected 31", len(table))
	}
}

func TestParseShortHeader(t *testing.T) {
	if _, err := focus.Parse(make([]byte, 512)); err == nil {
		t.Errorf("Parse() accepted a short header")
	}
}

package iipart_test

import (
	"strings"
	"testing"

	iipart "github.com/ksherlock/ii-part"
)

func TestLookup(t *testing.T) {
	table := iipart.Table{
		{Name: "BOOT", Start: 512, Length: 51200},
		{Name: "DATA", Start: 51712, Length: 2048000},
		{Name: "BOOT", Start: 4096, Length: 1024},
	}

	p, ok := table.Lookup("DATA")
	if !ok || p.Start != 51712 {
		t.Errorf("Lookup(DATA) = %+v, %v", p, ok)
	}

	// duplicates shadow by first match
	p, ok = table.Lookup("BOOT")
	if !ok || p.Start != 512 {
		t.Errorf("Lookup(BOOT) = %+v, %v, expected the first entry", p, ok)
	}

	if _, ok := table.Lookup("SWAP"); ok {
		t.Errorf("Lookup(SWAP) found a partition that does not exist")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		table iipart.Table
		ok    bool
	}{
		{"valid", iipart.Table{{Name: "A", Length: 512}, {Name: "B", Length: 1024}}, true},
		{"empty", iipart.Table{}, true},
		{"duplicate name", iipart.Table{{Name: "A", Length: 512}, {Name: "A", Length: 512}}, false},
		{"zero length", iipart.Table{{Name: "A", Length: 0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tt.ok && err == nil {
				t.Errorf("Validate() = nil, expected an error")
			}
		})
	}
}

func TestString(t *testing.T) {
	table := iipart.Table{{Name: "BOOT", Start: 512, Length: 51200}}
	listing := table.String()
	if !strings.Contains(listing, "BOOT") || !strings.Contains(listing, "100") {
		t.Errorf("String() = %q, expected name and block count", listing)
	}
}

package casemap_test

import (
	"testing"

	"github.com/unitext/nls-engine/casemap"
	"github.com/unitext/nls-engine/tables"
)

func loadTables(t *testing.T) (upper, lower casemap.Table) {
	t.Helper()
	blob, err := tables.Default().CaseTable()
	if err != nil {
		t.Fatalf("CaseTable: %v", err)
	}
	upper, lower, err = casemap.ParseBlob(blob)
	if err != nil {
		t.Fatalf("ParseBlob: %v", err)
	}
	return upper, lower
}

func TestMap(t *testing.T) {
	upper, lower := loadTables(t)

	tests := []struct {
		name   string
		ch     uint16
		up, lo uint16
	}{
		{"ascii letter", 'g', 'G', 'g'},
		{"ascii upper", 'G', 'G', 'g'},
		{"digit unchanged", '7', '7', '7'},
		{"latin1", 0x00e9, 0x00c9, 0x00e9},
		{"greek", 0x03b1, 0x0391, 0x03b1},
		{"cyrillic", 0x0414, 0x0414, 0x0434},
		{"unmapped", 0x2603, 0x2603, 0x2603},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := upper.Map(tt.ch); got != tt.up {
				t.Errorf("upper.Map(%#x) = %#x, want %#x", tt.ch, got, tt.up)
			}
			if got := lower.Map(tt.ch); got != tt.lo {
				t.Errorf("lower.Map(%#x) = %#x, want %#x", tt.ch, got, tt.lo)
			}
		})
	}
}

func TestASCIIFallbacks(t *testing.T) {
	if casemap.ToUpperASCII('q') != 'Q' || casemap.ToUpperASCII('Q') != 'Q' {
		t.Error("ToUpperASCII")
	}
	if casemap.ToLowerASCII('Q') != 'q' || casemap.ToLowerASCII('q') != 'q' {
		t.Error("ToLowerASCII")
	}
	if casemap.ToUpperASCII(0x00e9) != 0x00e9 {
		t.Error("ToUpperASCII must not touch non-ASCII")
	}
}

func TestParseRejectsCorrupt(t *testing.T) {
	if _, _, err := casemap.ParseBlob(nil); err == nil {
		t.Error("nil blob accepted")
	}
	if _, _, err := casemap.ParseBlob([]byte{1, 0}); err == nil {
		t.Error("truncated blob accepted")
	}
	if _, _, err := casemap.Parse([]uint16{9, 1, 0, 0}); err == nil {
		t.Error("bad version accepted")
	}
}

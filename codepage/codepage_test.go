package codepage_test

import (
	"bytes"
	"testing"

	"github.com/unitext/nls-engine/casemap"
	"github.com/unitext/nls-engine/codepage"
	"github.com/unitext/nls-engine/status"
	"github.com/unitext/nls-engine/tables"
)

func load(t *testing.T, page uint32) *codepage.Table {
	t.Helper()
	blob, err := tables.Default().CodePage(page)
	if err != nil {
		t.Fatalf("CodePage(%d): %v", page, err)
	}
	cp, err := codepage.ParseBlob(blob)
	if err != nil {
		t.Fatalf("ParseBlob(%d): %v", page, err)
	}
	return cp
}

func TestParse(t *testing.T) {
	cp := load(t, tables.CP1252)
	if cp.CodePage != 1252 || cp.MaxCharSize != 1 || cp.IsDouble() {
		t.Errorf("cp1252 = {page %d, max %d, double %v}", cp.CodePage, cp.MaxCharSize, cp.IsDouble())
	}
	sjis := load(t, tables.CP932)
	if !sjis.IsDouble() {
		t.Error("cp932 not detected as double-byte")
	}
	if !sjis.IsLeadByte(0x81) || !sjis.IsLeadByte(0xe0) || sjis.IsLeadByte(0x41) || sjis.IsLeadByte(0xa1) {
		t.Error("cp932 lead byte classification wrong")
	}
}

func TestParseUTF8Sentinel(t *testing.T) {
	cp := load(t, tables.CPUTF8)
	if cp.CodePage != codepage.UTF8 || cp.MaxCharSize != 4 {
		t.Errorf("utf8 descriptor = {page %d, max %d}", cp.CodePage, cp.MaxCharSize)
	}
	dst := make([]byte, 8)
	n, err := cp.FromUnicode(dst, []uint16{0x00e9})
	if err != nil || !bytes.Equal(dst[:n], []byte{0xc3, 0xa9}) {
		t.Errorf("utf8 FromUnicode = % x, %v", dst[:n], err)
	}
}

func TestParseRejectsCorrupt(t *testing.T) {
	blob, err := tables.Default().CodePage(tables.CP1252)
	if err != nil {
		t.Fatalf("CodePage: %v", err)
	}
	for _, n := range []int{0, 2, 20, 600} {
		if _, err := codepage.ParseBlob(blob[:n]); err == nil {
			t.Errorf("ParseBlob with %d bytes succeeded", n)
		}
	}
}

func TestToUnicodeSingleByte(t *testing.T) {
	cp := load(t, tables.CP1252)

	src := []byte("Hello")
	n, err := cp.ToUnicode(nil, src)
	if err != nil || n != 5 {
		t.Fatalf("size-only = %d, %v, want 5", n, err)
	}
	dst := make([]uint16, n)
	n, err = cp.ToUnicode(dst, src)
	if err != nil || n != 5 {
		t.Fatalf("ToUnicode = %d, %v", n, err)
	}
	for i, ch := range dst {
		if ch != uint16(src[i]) {
			t.Errorf("dst[%d] = %#x", i, ch)
		}
	}

	// 0x80 is the euro sign in cp1252.
	n, err = cp.ToUnicode(dst, []byte{0x80})
	if err != nil || n != 1 || dst[0] != 0x20ac {
		t.Errorf("euro = %#x (%d, %v)", dst[0], n, err)
	}
}

func TestToUnicodeDoubleByte(t *testing.T) {
	cp := load(t, tables.CP932)

	tests := []struct {
		name string
		src  []byte
		want []uint16
	}{
		{"ascii", []byte("abc"), []uint16{'a', 'b', 'c'}},
		{"katakana pair", []byte{0x83, 0x41}, []uint16{0x30a2}},
		{"halfwidth kana", []byte{0xb1}, []uint16{0xff71}},
		{"mixed", []byte{'a', 0x83, 0x41, 'b'}, []uint16{'a', 0x30a2, 'b'}},
		{"trailing lead byte", []byte{'a', 0x83}, []uint16{'a', 0x30fb}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := cp.ToUnicode(nil, tt.src)
			if err != nil || n != len(tt.want) {
				t.Fatalf("size-only = %d, %v, want %d", n, err, len(tt.want))
			}
			dst := make([]uint16, n)
			n, err = cp.ToUnicode(dst, tt.src)
			if err != nil {
				t.Fatalf("ToUnicode: %v", err)
			}
			for i := range tt.want {
				if dst[i] != tt.want[i] {
					t.Errorf("dst[%d] = %#x, want %#x", i, dst[i], tt.want[i])
				}
			}
			if n != len(tt.want) {
				t.Errorf("n = %d, want %d", n, len(tt.want))
			}
		})
	}
}

func TestToUnicodeBufferTooSmall(t *testing.T) {
	cp := load(t, tables.CP1252)
	dst := make([]uint16, 2)
	n, err := cp.ToUnicode(dst, []byte("Hello"))
	if n != 2 || !status.IsBufferTooSmall(err) {
		t.Errorf("ToUnicode = %d, %v", n, err)
	}
}

func TestFromUnicode(t *testing.T) {
	cp := load(t, tables.CP1252)

	src := []uint16{'H', 'i', 0x20ac}
	n, err := cp.FromUnicode(nil, src)
	if err != nil || n != 3 {
		t.Fatalf("size-only = %d, %v", n, err)
	}
	dst := make([]byte, n)
	n, err = cp.FromUnicode(dst, src)
	if err != nil || !bytes.Equal(dst[:n], []byte{'H', 'i', 0x80}) {
		t.Errorf("FromUnicode = % x, %v", dst[:n], err)
	}

	// An unmappable code unit substitutes the default character and
	// raises the advisory status.
	n, err = cp.FromUnicode(dst, []uint16{0x4e00})
	if n != 1 || dst[0] != '?' || !status.IsSomeNotMapped(err) {
		t.Errorf("unmappable = %q, %v", dst[:n], err)
	}

	// A literal question mark is not a substitution.
	n, err = cp.FromUnicode(dst, []uint16{'?'})
	if n != 1 || err != nil {
		t.Errorf("literal default = %d, %v", n, err)
	}
}

func TestFromUnicodeNeverSplitsPair(t *testing.T) {
	cp := load(t, tables.CP932)

	src := []uint16{'A', 0x30a2}
	n, err := cp.FromUnicode(nil, src)
	if err != nil || n != 3 {
		t.Fatalf("size-only = %d, %v, want 3", n, err)
	}

	// One byte short of the trailing pair: stop before it, never emit a
	// lone lead byte.
	dst := make([]byte, 2)
	n, err = cp.FromUnicode(dst, src)
	if n != 1 || !status.IsBufferTooSmall(err) {
		t.Fatalf("short dst = %d, %v", n, err)
	}
	if dst[0] != 'A' {
		t.Errorf("dst[0] = %#x", dst[0])
	}

	full := make([]byte, 3)
	n, err = cp.FromUnicode(full, src)
	if err != nil || !bytes.Equal(full[:n], []byte{'A', 0x83, 0x41}) {
		t.Errorf("full = % x, %v", full[:n], err)
	}
}

func TestRoundTripDoubleByte(t *testing.T) {
	cp := load(t, tables.CP932)

	src := []byte{'b', 'o', 'o', 'k', 0x83, 0x41, 0x82, 0xa0, 0xb1}
	wide := make([]uint16, len(src))
	wn, err := cp.ToUnicode(wide, src)
	if err != nil {
		t.Fatalf("ToUnicode: %v", err)
	}
	back := make([]byte, len(src))
	bn, err := cp.FromUnicode(back, wide[:wn])
	if err != nil {
		t.Fatalf("FromUnicode: %v", err)
	}
	if !bytes.Equal(back[:bn], src) {
		t.Errorf("round trip = % x, want % x", back[:bn], src)
	}
}

func TestFromUnicodeUpcase(t *testing.T) {
	cp := load(t, tables.CP1252)
	caseBlob, err := tables.Default().CaseTable()
	if err != nil {
		t.Fatalf("CaseTable: %v", err)
	}
	upper, _, err := casemap.ParseBlob(caseBlob)
	if err != nil {
		t.Fatalf("casemap parse: %v", err)
	}

	dst := make([]byte, 8)
	n, err := cp.FromUnicodeUpcase(dst, []uint16{'a', 0x00e9, 'Z'}, upper)
	if err != nil || !bytes.Equal(dst[:n], []byte{'A', 0xc9, 'Z'}) {
		t.Errorf("FromUnicodeUpcase = % x, %v", dst[:n], err)
	}
}

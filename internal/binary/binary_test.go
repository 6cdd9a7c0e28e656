package binary

import (
	"bytes"
	"errors"
	"testing"
)

func TestWordsRoundTrip(t *testing.T) {
	words := []uint16{0x0000, 0x0001, 0x1234, 0xffff, 0xabcd}
	blob := Bytes(words)
	if len(blob) != 2*len(words) {
		t.Fatalf("blob length: got %d, want %d", len(blob), 2*len(words))
	}
	got, err := Words(blob)
	if err != nil {
		t.Fatalf("Words: %v", err)
	}
	for i := range words {
		if got[i] != words[i] {
			t.Errorf("word %d: got 0x%04x, want 0x%04x", i, got[i], words[i])
		}
	}
}

func TestWordsLittleEndian(t *testing.T) {
	blob := Bytes([]uint16{0x1234})
	if !bytes.Equal(blob, []byte{0x34, 0x12}) {
		t.Errorf("expected little-endian layout, got %v", blob)
	}
}

func TestWordsOddLength(t *testing.T) {
	if _, err := Words([]byte{0x01, 0x02, 0x03}); !errors.Is(err, ErrOddLength) {
		t.Errorf("expected ErrOddLength, got %v", err)
	}
}

func TestReaderSequential(t *testing.T) {
	r := NewReader([]uint16{0x0001, 0x0002, 0x5678, 0x1234})

	v, err := r.U16()
	if err != nil || v != 1 {
		t.Fatalf("U16: got %d, %v", v, err)
	}
	if r.Position() != 1 {
		t.Errorf("position: got %d, want 1", r.Position())
	}

	if _, err := r.U16(); err != nil {
		t.Fatal(err)
	}

	u, err := r.U32()
	if err != nil {
		t.Fatal(err)
	}
	if u != 0x12345678 {
		t.Errorf("U32: got 0x%08x, want 0x12345678", u)
	}

	if _, err := r.U16(); !errors.Is(err, ErrShortBlob) {
		t.Errorf("expected ErrShortBlob, got %v", err)
	}
}

func TestReaderSeek(t *testing.T) {
	r := NewReader([]uint16{10, 20, 30})
	if err := r.Seek(2); err != nil {
		t.Fatal(err)
	}
	v, err := r.U16()
	if err != nil || v != 30 {
		t.Fatalf("after seek: got %d, %v", v, err)
	}
	if err := r.Seek(4); err == nil {
		t.Error("expected error seeking past end")
	}
	if err := r.Seek(-1); err == nil {
		t.Error("expected error seeking before start")
	}
}

func TestReaderU16s(t *testing.T) {
	r := NewReader([]uint16{1, 2, 3, 4})
	run, err := r.U16s(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(run) != 3 || run[2] != 3 {
		t.Errorf("U16s: got %v", run)
	}
	if len(r.Rest()) != 1 {
		t.Errorf("Rest: got %v", r.Rest())
	}
	if _, err := r.U16s(2); !errors.Is(err, ErrShortBlob) {
		t.Errorf("expected ErrShortBlob, got %v", err)
	}
}

func TestWriterPatch(t *testing.T) {
	w := NewWriter()
	w.U16(0) // offset placeholder
	w.U32(0) // length placeholder
	w.U16s([]uint16{7, 8, 9})

	w.Patch(0, uint16(w.Len()))
	w.PatchU32(1, 0xdeadbeef)

	words := w.Words()
	if words[0] != 6 {
		t.Errorf("patched offset: got %d, want 6", words[0])
	}
	if words[1] != 0xbeef || words[2] != 0xdead {
		t.Errorf("patched u32: got %04x %04x", words[1], words[2])
	}
}

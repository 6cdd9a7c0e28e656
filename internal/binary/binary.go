// Package binary provides positioned little-endian readers and writers for
// the engine's table blobs.
//
// Table blobs are arrays of 16-bit words addressed by word offsets held in
// their own headers, so the reader works over an in-memory slice with
// explicit seeking rather than a forward-only stream.
package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrShortBlob is returned when a read extends past the end of the blob.
	ErrShortBlob = errors.New("binary: read past end of blob")
	// ErrOddLength is returned when a word-addressed blob has an odd byte length.
	ErrOddLength = errors.New("binary: blob length not a multiple of 2")
)

// Words reinterprets a little-endian byte blob as a slice of 16-bit words.
func Words(blob []byte) ([]uint16, error) {
	if len(blob)%2 != 0 {
		return nil, ErrOddLength
	}
	words := make([]uint16, len(blob)/2)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(blob[2*i:])
	}
	return words, nil
}

// Bytes serializes a slice of 16-bit words into a little-endian byte blob.
func Bytes(words []uint16) []byte {
	blob := make([]byte, 2*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint16(blob[2*i:], w)
	}
	return blob
}

// Reader reads 16- and 32-bit values from a word blob with position tracking.
type Reader struct {
	words []uint16
	pos   int
}

// NewReader creates a Reader over the given words.
func NewReader(words []uint16) *Reader {
	return &Reader{words: words}
}

// Len returns the total length of the blob in words.
func (r *Reader) Len() int {
	return len(r.words)
}

// Position returns the current word position.
func (r *Reader) Position() int {
	return r.pos
}

// Seek moves the read position to the given word offset.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.words) {
		return fmt.Errorf("binary: seek to %d outside blob of %d words", pos, len(r.words))
	}
	r.pos = pos
	return nil
}

// U16 reads one word and advances the position.
func (r *Reader) U16() (uint16, error) {
	if r.pos >= len(r.words) {
		return 0, r.wrapError(ErrShortBlob)
	}
	w := r.words[r.pos]
	r.pos++
	return w, nil
}

// U32 reads two words as a little-endian uint32 and advances the position.
func (r *Reader) U32() (uint32, error) {
	lo, err := r.U16()
	if err != nil {
		return 0, err
	}
	hi, err := r.U16()
	if err != nil {
		return 0, err
	}
	return uint32(lo) | uint32(hi)<<16, nil
}

// U16s reads n words and advances the position.
func (r *Reader) U16s(n int) ([]uint16, error) {
	if n < 0 || r.pos+n > len(r.words) {
		return nil, r.wrapError(ErrShortBlob)
	}
	out := r.words[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// Rest returns the words from the current position to the end of the blob
// without advancing.
func (r *Reader) Rest() []uint16 {
	return r.words[r.pos:]
}

// WrapError adds positional context to an error for diagnostics.
func (r *Reader) WrapError(what string, err error) error {
	return fmt.Errorf("%s at word %d: %w", what, r.pos, err)
}

func (r *Reader) wrapError(err error) error {
	return fmt.Errorf("at word %d: %w", r.pos, err)
}

// Writer builds a word blob, with support for back-patching header fields
// whose values are only known once later sections are laid out.
type Writer struct {
	words []uint16
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Len returns the number of words written so far.
func (w *Writer) Len() int {
	return len(w.words)
}

// U16 appends one word.
func (w *Writer) U16(v uint16) {
	w.words = append(w.words, v)
}

// U32 appends a uint32 as two little-endian words.
func (w *Writer) U32(v uint32) {
	w.words = append(w.words, uint16(v), uint16(v>>16))
}

// U16s appends a run of words.
func (w *Writer) U16s(vs []uint16) {
	w.words = append(w.words, vs...)
}

// Patch overwrites a previously written word, typically a header offset.
func (w *Writer) Patch(pos int, v uint16) {
	w.words[pos] = v
}

// PatchU32 overwrites a previously written uint32.
func (w *Writer) PatchU32(pos int, v uint32) {
	w.words[pos] = uint16(v)
	w.words[pos+1] = uint16(v >> 16)
}

// Words returns the accumulated blob.
func (w *Writer) Words() []uint16 {
	return w.words
}

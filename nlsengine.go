package nlsengine

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/unitext/nls-engine/casemap"
	"github.com/unitext/nls-engine/codepage"
	"github.com/unitext/nls-engine/status"
)

// TableSource supplies the blobs a table set is built from.
type TableSource interface {
	CodePage(page uint32) ([]byte, error)
	CaseTable() ([]byte, error)
}

// TableSet bundles the ANSI and OEM code pages with the case-mapping pair.
// A set is immutable once built and safe to share.
type TableSet struct {
	Ansi  *codepage.Table
	Oem   *codepage.Table
	Upper casemap.Table
	Lower casemap.Table
}

// NewTableSet parses the ANSI, OEM and case blobs into a ready set.
func NewTableSet(ansi, oem, cases []byte) (*TableSet, error) {
	ts := &TableSet{}
	var err error
	if ts.Ansi, err = codepage.ParseBlob(ansi); err != nil {
		return nil, err
	}
	if ts.Oem, err = codepage.ParseBlob(oem); err != nil {
		return nil, err
	}
	if ts.Upper, ts.Lower, err = casemap.ParseBlob(cases); err != nil {
		return nil, err
	}
	return ts, nil
}

var active atomic.Pointer[TableSet]

// Reset publishes ts as the process-wide active set. Passing nil returns
// the process to its uninitialized ASCII fallback state.
func Reset(ts *TableSet) {
	active.Store(ts)
	if ts != nil {
		Logger().Info("active tables reset",
			zap.Uint32("ansi", ts.Ansi.CodePage),
			zap.Uint32("oem", ts.Oem.CodePage))
	}
}

// Active returns the published set, or nil before initialization.
func Active() *TableSet {
	return active.Load()
}

// Init builds a table set from src and publishes it.
func Init(src TableSource, ansiPage, oemPage uint32) error {
	ansi, err := src.CodePage(ansiPage)
	if err != nil {
		return err
	}
	oem, err := src.CodePage(oemPage)
	if err != nil {
		return err
	}
	cases, err := src.CaseTable()
	if err != nil {
		return err
	}
	ts, err := NewTableSet(ansi, oem, cases)
	if err != nil {
		return err
	}
	Reset(ts)
	return nil
}

// AnsiToUnicode converts narrow text with the active ANSI page. Before
// initialization each byte is masked to 7 bits.
func AnsiToUnicode(dst []uint16, src []byte) (int, error) {
	if ts := Active(); ts != nil {
		return ts.Ansi.ToUnicode(dst, src)
	}
	if dst == nil {
		return len(src), nil
	}
	n := len(src)
	var ret error
	if n > len(dst) {
		n = len(dst)
		ret = status.BufferTooSmall(status.OpConvert, len(src))
	}
	for i := 0; i < n; i++ {
		dst[i] = uint16(src[i] & 0x7f)
	}
	return n, ret
}

// UnicodeToAnsi converts UTF-16 text with the active ANSI page. Before
// initialization characters above 0x7f become '?'.
func UnicodeToAnsi(dst []byte, src []uint16) (int, error) {
	if ts := Active(); ts != nil {
		return ts.Ansi.FromUnicode(dst, src)
	}
	if dst == nil {
		return len(src), nil
	}
	n := len(src)
	var ret error
	if n > len(dst) {
		n = len(dst)
		ret = status.BufferTooSmall(status.OpConvert, len(src))
	}
	for i := 0; i < n; i++ {
		if src[i] > 0x7f {
			dst[i] = '?'
		} else {
			dst[i] = byte(src[i])
		}
	}
	return n, ret
}

// OemToUnicode converts narrow text with the active OEM page.
func OemToUnicode(dst []uint16, src []byte) (int, error) {
	ts := Active()
	if ts == nil {
		return AnsiToUnicode(dst, src)
	}
	return ts.Oem.ToUnicode(dst, src)
}

// UnicodeToOem converts UTF-16 text with the active OEM page.
func UnicodeToOem(dst []byte, src []uint16) (int, error) {
	ts := Active()
	if ts == nil {
		return UnicodeToAnsi(dst, src)
	}
	return ts.Oem.FromUnicode(dst, src)
}

// AnsiCharToUnicodeChar decodes the single narrow character at the start
// of src, consuming one byte, or two for a double-byte pair.
func AnsiCharToUnicodeChar(src []byte) (ch uint16, size int) {
	if len(src) == 0 {
		return 0, 0
	}
	if ts := Active(); ts != nil {
		return ts.Ansi.DecodeChar(src)
	}
	return uint16(src[0] & 0x7f), 1
}

package norm_test

import (
	"testing"

	"github.com/unitext/nls-engine/norm"
	"github.com/unitext/nls-engine/status"
	"github.com/unitext/nls-engine/tables"
)

func form(t *testing.T, id uint32) *norm.Form {
	t.Helper()
	f, err := norm.Load(tables.Default(), id)
	if err != nil {
		t.Fatalf("Load(%d): %v", id, err)
	}
	return f
}

func normalize(t *testing.T, f *norm.Form, src []uint16) []uint16 {
	t.Helper()
	n, err := norm.Normalize(f, nil, src)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	dst := make([]uint16, n)
	n, err = norm.Normalize(f, dst, src)
	if status.IsBufferTooSmall(err) {
		dst = make([]uint16, n)
		n, err = norm.Normalize(f, dst, src)
	}
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	return dst[:n]
}

func TestLoadCaching(t *testing.T) {
	a := form(t, norm.NFC)
	b := form(t, norm.NFC)
	if a != b {
		t.Error("expected the published form to be reused")
	}

	if _, err := norm.Load(tables.Default(), 0); !status.IsInvalidParameter(err) {
		t.Errorf("form 0 err = %v", err)
	}
	if _, err := norm.Load(tables.Default(), 16); !status.IsInvalidParameter(err) {
		t.Errorf("form 16 err = %v", err)
	}
	if _, err := norm.Load(tables.Default(), 3); !status.IsNotFound(err) {
		t.Errorf("unknown form err = %v", err)
	}
}

func TestParseRejectsCorrupt(t *testing.T) {
	blob, err := tables.BuildNormBlob(norm.NFC)
	if err != nil {
		t.Fatalf("BuildNormBlob: %v", err)
	}

	if _, err := norm.Parse(blob, norm.NFC); err != nil {
		t.Fatalf("pristine blob rejected: %v", err)
	}
	if _, err := norm.Parse(blob, norm.NFD); err == nil {
		t.Error("form mismatch accepted")
	}
	if _, err := norm.Parse(blob[:8], norm.NFC); err == nil {
		t.Error("truncated blob accepted")
	}

	corrupt := func(pos int, v uint16) []uint16 {
		c := make([]uint16, len(blob))
		copy(c, blob)
		c[pos] = v
		return c
	}
	if _, err := norm.Parse(corrupt(0, 0x1234), norm.NFC); err == nil {
		t.Error("bad magic accepted")
	}
	if _, err := norm.Parse(corrupt(3, 0), norm.NFC); err == nil {
		t.Error("zero length factor accepted")
	}
	if _, err := norm.Parse(corrupt(5, 1), norm.NFC); err == nil {
		t.Error("non-monotonic offsets accepted")
	}
	if _, err := norm.Parse(corrupt(9, blob[9]+7), norm.NFC); err == nil {
		t.Error("end offset mismatch accepted")
	}
}

func TestDecompose(t *testing.T) {
	nfd := form(t, norm.NFD)

	tests := []struct {
		name string
		src  []uint16
		want []uint16
	}{
		{"ascii", []uint16{'a', 'b'}, []uint16{'a', 'b'}},
		{"acute", []uint16{0x00e9}, []uint16{'e', 0x0301}},
		{"multi level", []uint16{0x1e09}, []uint16{'c', 0x0327, 0x0301}},
		{"greek tonos", []uint16{0x03ac}, []uint16{0x03b1, 0x0301}},
		{"kana voiced", []uint16{0x304c}, []uint16{0x304b, 0x3099}},
		{"singleton", []uint16{0x212b}, []uint16{'A', 0x030a}},
		{"reorder marks", []uint16{'e', 0x0301, 0x0323}, []uint16{'e', 0x0323, 0x0301}},
		{"hangul lv", []uint16{0xac00}, []uint16{0x1100, 0x1161}},
		{"hangul lvt", []uint16{0xac01}, []uint16{0x1100, 0x1161, 0x11a8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize(t, nfd, tt.src)
			if !equal(got, tt.want) {
				t.Errorf("NFD(%#x) = %#x, want %#x", tt.src, got, tt.want)
			}
		})
	}
}

func TestCompose(t *testing.T) {
	nfc := form(t, norm.NFC)

	tests := []struct {
		name string
		src  []uint16
		want []uint16
	}{
		{"pair", []uint16{'e', 0x0301}, []uint16{0x00e9}},
		{"already composed", []uint16{0x00e9}, []uint16{0x00e9}},
		{"multi level", []uint16{'c', 0x0327, 0x0301}, []uint16{0x1e09}},
		{"blocked by class", []uint16{'e', 0x0301, 0x0308}, []uint16{0x00e9, 0x0308}},
		{"skip lower class", []uint16{'e', 0x0323, 0x0301}, []uint16{0x00e9, 0x0323}},
		{"kana", []uint16{0x304b, 0x3099}, []uint16{0x304c}},
		{"hangul lv", []uint16{0x1100, 0x1161}, []uint16{0xac00}},
		{"hangul lvt", []uint16{0x1100, 0x1161, 0x11a8}, []uint16{0xac01}},
		{"singleton stays", []uint16{0x212b}, []uint16{0x00c5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize(t, nfc, tt.src)
			if !equal(got, tt.want) {
				t.Errorf("NFC(%#x) = %#x, want %#x", tt.src, got, tt.want)
			}
		})
	}
}

func TestCompatibilityForms(t *testing.T) {
	nfkd := form(t, norm.NFKD)
	nfkc := form(t, norm.NFKC)

	if got := normalize(t, nfkd, []uint16{0xfb01}); !equal(got, []uint16{'f', 'i'}) {
		t.Errorf("NFKD(fi ligature) = %#x", got)
	}
	if got := normalize(t, nfkd, []uint16{0xff21}); !equal(got, []uint16{'A'}) {
		t.Errorf("NFKD(fullwidth A) = %#x", got)
	}
	if got := normalize(t, nfkc, []uint16{0x2122}); !equal(got, []uint16{'T', 'M'}) {
		t.Errorf("NFKC(trade mark) = %#x", got)
	}
	// Compatibility decomposition then canonical recomposition.
	if got := normalize(t, nfkc, []uint16{0xfb01, 0x0301}); !equal(got, []uint16{'f', 0x00ed}) {
		t.Errorf("NFKC(fi + acute) = %#x", got)
	}

	// NFD leaves compatibility mappings alone.
	nfd := form(t, norm.NFD)
	if got := normalize(t, nfd, []uint16{0xfb01}); !equal(got, []uint16{0xfb01}) {
		t.Errorf("NFD(fi ligature) = %#x", got)
	}
}

func TestIdnaFormFolds(t *testing.T) {
	idna := form(t, norm.IDNA)

	tests := []struct {
		name string
		src  []uint16
		want []uint16
	}{
		{"uppercase ascii", []uint16{'B', 'C'}, []uint16{'b', 'c'}},
		{"precomposed upper", []uint16{0x00c9}, []uint16{0x00e9}},
		{"sharp s", []uint16{0x00df}, []uint16{'s', 's'}},
		{"final sigma", []uint16{0x03c2}, []uint16{0x03c3}},
		{"fullwidth upper", []uint16{0xff21}, []uint16{'a'}},
		{"cyrillic io", []uint16{0x0401}, []uint16{0x0451}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize(t, idna, tt.src)
			if !equal(got, tt.want) {
				t.Errorf("IDNA(%#x) = %#x, want %#x", tt.src, got, tt.want)
			}
		})
	}
}

func TestNormalizeErrors(t *testing.T) {
	nfd := form(t, norm.NFD)

	// Lone surrogate is fatal.
	if _, err := norm.Normalize(nfd, make([]uint16, 8), []uint16{0xd800, 'a'}); !status.IsNoTranslation(err) {
		t.Errorf("lone surrogate err = %v", err)
	}
	// Noncharacter is fatal.
	if _, err := norm.Normalize(nfd, make([]uint16, 8), []uint16{0xfdd0}); !status.IsNoTranslation(err) {
		t.Errorf("noncharacter err = %v", err)
	}

	// Too-small destination reports the requirement and is retryable.
	dst := make([]uint16, 1)
	n, err := norm.Normalize(nfd, dst, []uint16{0x00e9})
	if !status.IsBufferTooSmall(err) || n != 2 {
		t.Fatalf("short dst = %d, %v", n, err)
	}
	dst = make([]uint16, n)
	n, err = norm.Normalize(nfd, dst, []uint16{0x00e9})
	if err != nil || n != 2 {
		t.Errorf("retry = %d, %v", n, err)
	}
}

func TestNormalizeEstimate(t *testing.T) {
	nfd := form(t, norm.NFD)
	n, err := norm.Normalize(nfd, nil, []uint16{'a', 'b', 'c'})
	if err != nil || n < 3 {
		t.Errorf("estimate = %d, %v", n, err)
	}
	// Long inputs switch to the damped estimate.
	long := make([]uint16, 1000)
	n, err = norm.Normalize(nfd, nil, long)
	if err != nil || n != 1000+1000/8 {
		t.Errorf("long estimate = %d, %v", n, err)
	}
}

func TestQuickCheck(t *testing.T) {
	nfc := form(t, norm.NFC)
	nfd := form(t, norm.NFD)

	tests := []struct {
		name string
		f    *norm.Form
		src  []uint16
		want norm.Result
	}{
		{"nfc ascii", nfc, []uint16{'a', 'b'}, norm.Yes},
		{"nfc precomposed", nfc, []uint16{0x00e9}, norm.Yes},
		{"nfc combining", nfc, []uint16{'e', 0x0301}, norm.Maybe},
		{"nfc hangul syllable", nfc, []uint16{0xac00}, norm.Yes},
		{"nfc vowel jamo", nfc, []uint16{0x1100, 0x1161}, norm.Maybe},
		{"nfd precomposed", nfd, []uint16{0x00e9}, norm.No},
		{"nfd decomposed", nfd, []uint16{'e', 0x0301}, norm.Yes},
		{"nfd hangul syllable", nfd, []uint16{0xac00}, norm.No},
		{"nfd jamo", nfd, []uint16{0x1100, 0x1161}, norm.Yes},
		{"order violation", nfd, []uint16{'e', 0x0301, 0x0323}, norm.No},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.f.QuickCheck(tt.src)
			if err != nil || got != tt.want {
				t.Errorf("QuickCheck = %v, %v, want %v", got, err, tt.want)
			}
		})
	}
}

func TestIsNormalized(t *testing.T) {
	nfc := form(t, norm.NFC)

	ok, err := nfc.IsNormalized([]uint16{0x00e9})
	if err != nil || !ok {
		t.Errorf("precomposed = %v, %v", ok, err)
	}
	// The combining sequence resolves through the fallback: its NFC form
	// is shorter, so it is not normalized.
	ok, err = nfc.IsNormalized([]uint16{'e', 0x0301})
	if err != nil || ok {
		t.Errorf("combining = %v, %v", ok, err)
	}
	// A mark with no composition for its base survives the fallback.
	ok, err = nfc.IsNormalized([]uint16{'x', 0x0301})
	if err != nil || !ok {
		t.Errorf("non-composing mark = %v, %v", ok, err)
	}

	if _, err := nfc.IsNormalized([]uint16{0xdc00}); !status.IsNoTranslation(err) {
		t.Errorf("lone surrogate err = %v", err)
	}
}

func equal(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

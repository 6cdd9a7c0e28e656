package locale_test

import (
	"testing"

	"github.com/unitext/nls-engine/locale"
	"github.com/unitext/nls-engine/status"
	"github.com/unitext/nls-engine/tables"
)

func registry(t *testing.T) *locale.Registry {
	t.Helper()
	blob, err := tables.Default().Locales()
	if err != nil {
		t.Fatalf("Locales: %v", err)
	}
	r, err := locale.ParseBlob(blob)
	if err != nil {
		t.Fatalf("ParseBlob: %v", err)
	}
	return r
}

func TestFindByName(t *testing.T) {
	r := registry(t)

	tests := []struct {
		name   string
		wantID uint32
	}{
		{"en-US", 0x0409},
		{"EN-US", 0x0409}, // case-insensitive
		{"en_us", 0x0409}, // underscore equivalent to hyphen
		{"de-AT", 0x0c07},
		{"ja", 0x0011},
		{"zh-CN", 0x0804},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := r.FindByName(tt.name)
			if err != nil {
				t.Fatalf("FindByName: %v", err)
			}
			if entry.ID != tt.wantID {
				t.Errorf("ID = %#x, want %#x", entry.ID, tt.wantID)
			}
		})
	}

	if _, err := r.FindByName("xx-XX"); !status.IsNotFound(err) {
		t.Errorf("unknown name error = %v", err)
	}
}

func TestFindByID(t *testing.T) {
	r := registry(t)

	entry, err := r.FindByID(0x0419)
	if err != nil || entry.Name != "ru-RU" || entry.AnsiCodePage != 1251 {
		t.Errorf("FindByID(0x419) = %+v, %v", entry, err)
	}

	entry, err = r.FindByID(0x0009)
	if err != nil || !entry.Neutral || entry.DefaultLang != 0x0409 {
		t.Errorf("FindByID(0x9) = %+v, %v", entry, err)
	}

	if _, err := r.FindByID(0x7fff); !status.IsNotFound(err) {
		t.Errorf("unknown id error = %v", err)
	}
}

// Both indices cover the same records: resolving an entry's id to its name
// and searching the name back must land on the same entry.
func TestIndicesAgree(t *testing.T) {
	r := registry(t)
	for i := 0; i < r.Count(); i++ {
		want := r.At(i)
		byID, err := r.FindByID(want.ID)
		if err != nil {
			t.Fatalf("FindByID(%#x): %v", want.ID, err)
		}
		byName, err := r.FindByName(byID.Name)
		if err != nil {
			t.Fatalf("FindByName(%q): %v", byID.Name, err)
		}
		if byName != want {
			t.Errorf("entry %d: %+v != %+v", i, byName, want)
		}
	}
}

func TestNameToID(t *testing.T) {
	r := registry(t)

	id, err := r.NameToID("fr-FR", false)
	if err != nil || id != 0x040c {
		t.Errorf("NameToID(fr-FR) = %#x, %v", id, err)
	}

	if _, err := r.NameToID("fr", false); !status.IsNotFound(err) {
		t.Errorf("neutral without flag = %v", err)
	}
	id, err = r.NameToID("fr", true)
	if err != nil || id != 0x000c {
		t.Errorf("NameToID(fr, neutral) = %#x, %v", id, err)
	}

	if r.IsValidName("fr", false) || !r.IsValidName("fr", true) || !r.IsValidName("fr-CH", false) {
		t.Error("IsValidName neutral policy wrong")
	}
}

func TestIDToName(t *testing.T) {
	r := registry(t)
	p := locale.NewDefaults(0x0409, 0x0407)

	tests := []struct {
		name         string
		id           uint32
		allowNeutral bool
		want         string
		wantErr      func(error) bool
	}{
		{"specific", 0x0411, false, "ja-JP", nil},
		{"neutral rejected", 0x0011, false, "", status.IsNotFound},
		{"neutral allowed", 0x0011, true, "ja", nil},
		{"user default", locale.UserDefault, false, "en-US", nil},
		{"custom default", locale.CustomDefault, false, "en-US", nil},
		{"system default", locale.SystemDefault, false, "de-DE", nil},
		{"custom unspecified", locale.CustomUnspecified, false, "", status.IsInvalidParameter},
		{"custom ui default", locale.CustomUIDefault, false, "", status.IsUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.IDToName(p, tt.id, tt.allowNeutral)
			if tt.wantErr != nil {
				if !tt.wantErr(err) {
					t.Fatalf("err = %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("IDToName = %q, %v, want %q", got, err, tt.want)
			}
		})
	}
}

func TestDefaultsUpdate(t *testing.T) {
	r := registry(t)
	p := locale.NewDefaults(0x0409, 0x0409)

	p.SetUserDefaultID(0x041f)
	name, err := r.IDToName(p, locale.UserDefault, false)
	if err != nil || name != "tr-TR" {
		t.Errorf("after SetUserDefaultID = %q, %v", name, err)
	}
}

func TestPreferredUILanguages(t *testing.T) {
	r := registry(t)
	p := locale.NewDefaults(0x0409, 0x0409)

	count, n, err := r.PreferredUILanguages(p, locale.LanguageName, nil)
	if err != nil || count != 1 || n != len("en-US")+2 {
		t.Fatalf("size-only = %d, %d, %v", count, n, err)
	}

	dst := make([]uint16, n)
	if _, _, err := r.PreferredUILanguages(p, locale.LanguageName, dst[:n-1]); !status.IsBufferTooSmall(err) {
		t.Fatalf("short dst err = %v", err)
	}
	count, n, err = r.PreferredUILanguages(p, locale.LanguageName, dst)
	if err != nil || count != 1 {
		t.Fatalf("write = %d, %d, %v", count, n, err)
	}
	got := ""
	for _, u := range dst[:n-2] {
		got += string(rune(u))
	}
	if got != "en-US" || dst[n-2] != 0 || dst[n-1] != 0 {
		t.Errorf("list = %q", got)
	}

	// Id form spells the LCID as four hex digits.
	dst = make([]uint16, 8)
	_, n, err = r.PreferredUILanguages(p, locale.LanguageID, dst)
	if err != nil {
		t.Fatalf("id form: %v", err)
	}
	got = ""
	for _, u := range dst[:n-2] {
		got += string(rune(u))
	}
	if got != "0409" {
		t.Errorf("id form = %q", got)
	}

	// A neutral user default reports its specific language.
	p.SetUserDefaultID(0x0016)
	dst = make([]uint16, 16)
	_, n, err = r.PreferredUILanguages(p, locale.LanguageName, dst)
	if err != nil {
		t.Fatalf("neutral default: %v", err)
	}
	got = ""
	for _, u := range dst[:n-2] {
		got += string(rune(u))
	}
	if got != "pt-BR" {
		t.Errorf("neutral default = %q", got)
	}

	if _, _, err := r.PreferredUILanguages(p, 0x3, nil); !status.IsInvalidParameter(err) {
		t.Errorf("bad form err = %v", err)
	}
}

package locale

import (
	"fmt"
	"sync/atomic"

	"github.com/unitext/nls-engine/internal/lcname"
	"github.com/unitext/nls-engine/status"
)

// Sentinel identifiers redirected through a DefaultProvider before any
// index search.
const (
	UserDefault       = 0x0400
	SystemDefault     = 0x0800
	CustomDefault     = 0x0c00
	CustomUnspecified = 0x1000
	CustomUIDefault   = 0x1400
)

// DefaultProvider supplies the live process- and user-scoped default ids
// the sentinels resolve to.
type DefaultProvider interface {
	UserDefaultID() uint32
	SystemDefaultID() uint32
}

// Defaults is the standard DefaultProvider: two atomically updated ids.
type Defaults struct {
	user   atomic.Uint32
	system atomic.Uint32
}

// NewDefaults creates a provider seeded with the given ids.
func NewDefaults(user, system uint32) *Defaults {
	d := &Defaults{}
	d.user.Store(user)
	d.system.Store(system)
	return d
}

func (d *Defaults) UserDefaultID() uint32   { return d.user.Load() }
func (d *Defaults) SystemDefaultID() uint32 { return d.system.Load() }

// SetUserDefaultID updates the user-scoped default id.
func (d *Defaults) SetUserDefaultID(id uint32) { d.user.Store(id) }

// SetSystemDefaultID updates the process-wide default id.
func (d *Defaults) SetSystemDefaultID(id uint32) { d.system.Store(id) }

// ResolveID maps sentinel ids to live defaults. The custom-UI sentinel
// always fails as unsupported and the unspecified sentinel is always an
// invalid parameter; both are fixed policy, not configuration.
func ResolveID(p DefaultProvider, id uint32) (uint32, error) {
	switch id {
	case UserDefault, CustomDefault:
		return p.UserDefaultID(), nil
	case SystemDefault:
		return p.SystemDefaultID(), nil
	case CustomUIDefault:
		return 0, status.Unsupported(status.OpLocale, "custom UI default locale")
	case CustomUnspecified:
		return 0, status.InvalidParameter(status.OpLocale, "unspecified custom locale")
	}
	return id, nil
}

// IDToName resolves an id (sentinels included) to its locale name. Neutral
// entries are rejected unless allowNeutral is set.
func (r *Registry) IDToName(p DefaultProvider, id uint32, allowNeutral bool) (string, error) {
	resolved, err := ResolveID(p, id)
	if err != nil {
		return "", err
	}
	entry, err := r.FindByID(resolved)
	if err != nil {
		return "", err
	}
	if entry.Neutral && !allowNeutral {
		return "", status.NotFound(status.OpLocale, "locale id %#x is neutral", resolved)
	}
	return entry.Name, nil
}

// NameToID resolves a locale name to its id with the same neutral policy
// as IDToName.
func (r *Registry) NameToID(name string, allowNeutral bool) (uint32, error) {
	entry, err := r.FindByName(name)
	if err != nil {
		return 0, err
	}
	if entry.Neutral && !allowNeutral {
		return 0, status.NotFound(status.OpLocale, "locale %q is neutral", name)
	}
	return entry.ID, nil
}

// IsValidName reports whether name resolves under the given neutral policy.
func (r *Registry) IsValidName(name string, allowNeutral bool) bool {
	_, err := r.NameToID(name, allowNeutral)
	return err == nil
}

// Forms for PreferredUILanguages output.
const (
	LanguageID   = 0x4 // four-hex-digit ids
	LanguageName = 0x8 // locale names
)

// PreferredUILanguages writes the user's preferred UI languages as a
// double-NUL-terminated list of names or hex ids. A nil dst runs the
// size-only pass; it returns the language count and the unit count a
// writing call produces. The destination being too short is recoverable
// with the required size reported.
func (r *Registry) PreferredUILanguages(p DefaultProvider, form uint32, dst []uint16) (count, n int, err error) {
	if form != LanguageID && form != LanguageName {
		return 0, 0, status.InvalidParameter(status.OpLocale, "language form %#x", form)
	}

	entry, err := r.FindByID(p.UserDefaultID())
	if err != nil {
		return 0, 0, err
	}
	// A neutral user default reports its specific language.
	if entry.Neutral {
		if entry, err = r.FindByID(entry.DefaultLang); err != nil {
			return 0, 0, err
		}
	}

	var units []uint16
	if form == LanguageID {
		units = lcname.Encode(fmt.Sprintf("%04X", entry.ID))
	} else {
		units = lcname.Encode(entry.Name)
	}
	required := len(units) + 2 // NUL after the name, NUL after the list

	if dst == nil {
		return 1, required, nil
	}
	if len(dst) < required {
		return 0, 0, status.BufferTooSmall(status.OpLocale, required)
	}
	copy(dst, units)
	dst[len(units)] = 0
	dst[len(units)+1] = 0
	return 1, required, nil
}

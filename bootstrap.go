package nlsengine

import (
	"go.uber.org/zap"

	"github.com/unitext/nls-engine/locale"
)

const fallbackLangID = 0x0409 // en-US

// BootstrapDefaults resolves a locale name, typically taken from the
// environment, into a default provider seeded for both the user and the
// system scope. Unknown or neutral names fall back to en-US.
func BootstrapDefaults(r *locale.Registry, name string) *locale.Defaults {
	id, err := r.NameToID(name, false)
	if err != nil {
		Logger().Debug("locale bootstrap falling back",
			zap.String("name", name), zap.Error(err))
		if id, err = r.NameToID("en-US", false); err != nil {
			id = fallbackLangID
		}
	}
	return locale.NewDefaults(id, id)
}

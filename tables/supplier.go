package tables

import (
	"sync"

	"go.uber.org/zap"

	"github.com/unitext/nls-engine/status"
)

// Builtin serves the embedded master data, building each blob on first
// request and caching it. All methods are safe for concurrent use; the
// returned blobs are immutable.
type Builtin struct {
	mu    sync.Mutex
	cache map[sectionKey][]byte
}

type sectionKey struct {
	category string
	id       uint32
}

var defaultSupplier = &Builtin{}

// Default returns the process-wide built-in supplier.
func Default() *Builtin {
	return defaultSupplier
}

func (b *Builtin) section(category string, id uint32, build func() ([]byte, error)) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := sectionKey{category, id}
	if blob, ok := b.cache[key]; ok {
		return blob, nil
	}
	blob, err := build()
	if err != nil {
		return nil, err
	}
	if b.cache == nil {
		b.cache = make(map[sectionKey][]byte)
	}
	b.cache[key] = blob
	Logger().Debug("built table section",
		zap.String("category", category),
		zap.Uint32("id", id),
		zap.Int("bytes", len(blob)))
	return blob, nil
}

// CodePage returns the code page description blob for the given page number.
func (b *Builtin) CodePage(page uint32) ([]byte, error) {
	return b.section("codepage", page, func() ([]byte, error) {
		data, ok := codePages[page]
		if !ok {
			return nil, status.NotFound(status.OpLoad, "code page %d", page)
		}
		return BuildCodePageBlob(data), nil
	})
}

// CaseTable returns the case-mapping blob holding both tries.
func (b *Builtin) CaseTable() ([]byte, error) {
	return b.section("casemap", 0, func() ([]byte, error) {
		upper, lower := caseMappings()
		return BuildCaseBlob(upper, lower), nil
	})
}

// Locales returns the locale metadata blob.
func (b *Builtin) Locales() ([]byte, error) {
	return b.section("locale", 0, func() ([]byte, error) {
		return BuildLocaleBlob(builtinLocales)
	})
}

// Normalization returns the table blob for the given normalization form.
func (b *Builtin) Normalization(form uint32) ([]byte, error) {
	return b.section("normalize", form, func() ([]byte, error) {
		if !knownForm(form) {
			return nil, status.NotFound(status.OpLoad, "normalization form %d", form)
		}
		words, err := BuildNormBlob(form)
		if err != nil {
			return nil, err
		}
		return wordsToBytes(words), nil
	})
}

// Release returns a region to the supplier. The built-in supplier keeps its
// blobs for the process lifetime, so this is a no-op; suppliers backed by
// mapped sections unmap here.
func (b *Builtin) Release([]byte) {}

package norm

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/unitext/nls-engine/status"
)

// Supplier provides normalization table blobs. The returned region must
// stay valid for the process lifetime unless released.
type Supplier interface {
	Normalization(form uint32) ([]byte, error)
	Release([]byte)
}

// One publish-once slot per form id. Losers of the publication race hand
// their blob back to the supplier; winners' forms are immutable and read
// without locks from then on.
var formCache [maxForm + 1]atomic.Pointer[Form]

// Load returns the cached table for a form, loading and publishing it on
// first use. Parse failures are returned to the caller and never cached.
func Load(s Supplier, form uint32) (*Form, error) {
	if form == 0 || form > maxForm {
		return nil, status.InvalidParameter(status.OpNormalize, "normalization form %d", form)
	}
	if f := formCache[form].Load(); f != nil {
		return f, nil
	}

	blob, err := s.Normalization(form)
	if err != nil {
		return nil, err
	}
	f, err := ParseBlob(blob, form)
	if err != nil {
		s.Release(blob)
		return nil, err
	}
	if !formCache[form].CompareAndSwap(nil, f) {
		// Another loader published first; this copy is redundant.
		s.Release(blob)
		return formCache[form].Load(), nil
	}
	Logger().Debug("published normalization form",
		zap.Uint32("form", form),
		zap.Int("bytes", len(blob)))
	return f, nil
}

package dedupe

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/hmap/store/hybrid"
)

// HybridBackend spills elements to a temporary on-disk store,
// used when a dictionary is too large to expand in memory
type HybridBackend struct {
	storage *hybrid.HybridMap
	count   int
}

func NewHybridBackend() *HybridBackend {
	h := &HybridBackend{}
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		gologger.Fatal().Msgf("failed to create temp dir for wordbee dedupe got: %v", err)
	}
	h.storage = db
	return h
}

func (h *HybridBackend) Upsert(key, elem string) {
	if _, ok := h.storage.Get(key); ok {
		return
	}
	if err := h.storage.Set(key, []byte(elem)); err != nil {
		gologger.Error().Msgf("dedupe: hybrid: got %v while writing %v", err, elem)
		return
	}
	h.count++
}

func (h *HybridBackend) Has(key string) bool {
	_, ok := h.storage.Get(key)
	return ok
}

func (h *HybridBackend) Len() int {
	return h.count
}

func (h *HybridBackend) IterCallback(callback func(elem string)) {
	h.storage.Scan(func(_, v []byte) error {
		callback(string(v))
		return nil
	})
}

func (h *HybridBackend) Cleanup() {
	_ = h.storage.Close()
}

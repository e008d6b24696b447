package dedupe

import (
	"runtime/debug"

	"github.com/armon/go-radix"
)

// RadixBackend keeps elements in an in-memory radix tree,
// iteration visits keys in lexical order
type RadixBackend struct {
	storage *radix.Tree
}

func NewRadixBackend() *RadixBackend {
	return &RadixBackend{storage: radix.New()}
}

func (r *RadixBackend) Upsert(key, elem string) {
	if _, ok := r.storage.Get(key); ok {
		return
	}
	r.storage.Insert(key, elem)
}

func (r *RadixBackend) Has(key string) bool {
	_, ok := r.storage.Get(key)
	return ok
}

func (r *RadixBackend) Len() int {
	return r.storage.Len()
}

func (r *RadixBackend) IterCallback(callback func(elem string)) {
	r.storage.Walk(func(_ string, v interface{}) bool {
		callback(v.(string))
		return false
	})
}

func (r *RadixBackend) Cleanup() {
	r.storage = radix.New()
	// release the old tree now instead of waiting for the next GC cycle
	debug.FreeOSMemory()
}

package wordbee

import (
	"strings"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/wordbee/internal/dedupe"
)

// MaxInMemoryDedupeSize (default : 100 MB)
var MaxInMemoryDedupeSize = 100 * 1024 * 1024

type DedupeBackend interface {
	// Upsert stores elem under key unless key is already present
	Upsert(key, elem string)
	// Has reports whether key was stored
	Has(key string) bool
	// Len returns number of stored keys
	Len() int
	// Execute given callback on each element while iterating
	IterCallback(callback func(elem string))
	// Cleanup cleans any residuals after deduping
	Cleanup()
}

// Accumulator collects the words of one category.
// Words are deduplicated case-insensitively and the first spelling
// added is the one kept.
type Accumulator struct {
	backend DedupeBackend
}

// NewAccumulator returns an accumulator sized for roughly byteLen bytes of words
// Note: If byteLen is not correct/specified wordbee may consume lot of memory
func NewAccumulator(byteLen int) *Accumulator {
	a := &Accumulator{}
	if byteLen <= MaxInMemoryDedupeSize {
		a.backend = dedupe.NewRadixBackend()
	} else {
		gologger.Verbose().Msgf("estimated %v bytes of words, using disk backed dedupe", byteLen)
		a.backend = dedupe.NewHybridBackend()
	}
	return a
}

// Add adds words keeping the first spelling of each
func (a *Accumulator) Add(words ...string) {
	for _, w := range words {
		a.backend.Upsert(foldKey(w), w)
	}
}

// Has reports whether word was added in any casing
func (a *Accumulator) Has(word string) bool {
	return a.backend.Has(foldKey(word))
}

// Len returns number of distinct words
func (a *Accumulator) Len() int {
	return a.backend.Len()
}

// Collect returns listable words not present in any of excluded,
// sorted case-insensitively
func (a *Accumulator) Collect(excluded ...*Accumulator) []string {
	words := []string{}
	a.backend.IterCallback(func(elem string) {
		if !isListable(elem) {
			return
		}
		for _, other := range excluded {
			if other.Has(elem) {
				return
			}
		}
		words = append(words, elem)
	})
	sortFold(words)
	return words
}

// Close releases the accumulator storage
func (a *Accumulator) Close() {
	a.backend.Cleanup()
}

func foldKey(word string) string {
	return strings.ToLower(word)
}

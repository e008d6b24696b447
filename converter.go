package wordbee

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/wordbee/affix"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	"golang.org/x/sync/errgroup"
)

// expansionFactor is the rough ratio of expanded word bytes to dictionary bytes
const expansionFactor = 8

// batchSize is the number of stems expanded concurrently before merging
const batchSize = 4096

// Converter Options
type Options struct {
	// Dictionary is the path of the hunspell .dic file
	Dictionary string
	// Affix is the path of the hunspell .aff file
	Affix string
	// Workers is the number of goroutines expanding stems (default 1)
	Workers int
}

// Converter expands a hunspell dictionary into classified wordlists
type Converter struct {
	Options *Options
}

// New creates and returns new converter instance from options
func New(opts *Options) (*Converter, error) {
	if opts.Dictionary == "" || opts.Affix == "" {
		return nil, errorutil.NewWithTag("wordbee", "dictionary and affix paths are required")
	}
	for _, path := range []string{opts.Dictionary, opts.Affix} {
		if !fileutil.FileExists(path) {
			return nil, fmt.Errorf("%v: %w", path, os.ErrNotExist)
		}
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Converter{Options: opts}, nil
}

// Convert parses the affix file, expands every dictionary stem and
// returns the four disjoint wordlists
func (c *Converter) Convert() (*WordlistResult, error) {
	store, err := affix.ParseFile(c.Options.Affix)
	if err != nil {
		return nil, err
	}
	gologger.Verbose().Msgf("parsed %d affix groups from %v", len(store.Groups), c.Options.Affix)

	f, err := os.Open(c.Options.Dictionary)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	byteLen := 0
	if info, err := f.Stat(); err == nil {
		byteLen = int(info.Size()) * expansionFactor
	}
	return convert(f, store, c.Options.Workers, byteLen)
}

// ConvertFiles converts the dictionary at dicPath using the affix rules at affPath
func ConvertFiles(dicPath, affPath string) (*WordlistResult, error) {
	c, err := New(&Options{Dictionary: dicPath, Affix: affPath})
	if err != nil {
		return nil, err
	}
	return c.Convert()
}

// ConvertReaders converts dictionary data read from dic using affix rules read from aff
func ConvertReaders(dic, aff io.Reader) (*WordlistResult, error) {
	store, err := affix.Parse(aff)
	if err != nil {
		return nil, err
	}
	return convert(dic, store, 1, 0)
}

// entry is one stem line of a dictionary
type entry struct {
	stem  string
	flags string
}

// parseEntry splits `stem/flags`, blank lines are reported as not ok
func parseEntry(line string) (entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return entry{}, false
	}
	stem, flags, _ := strings.Cut(line, "/")
	return entry{stem: stem, flags: flags}, true
}

// category a stem's expansions are filed under
type category int

const (
	categoryCommon category = iota
	categoryProperNoun
	categoryAcronym
	categoryProfanity
)

// classify picks a category from the flags and the casing of the stem itself
func classify(e entry, store *affix.Store) category {
	switch {
	case store.IsNoSuggest(e.flags):
		return categoryProfanity
	case isAcronym(e.stem):
		return categoryAcronym
	case hasUppercase(e.stem):
		return categoryProperNoun
	default:
		return categoryCommon
	}
}

type expansion struct {
	category category
	words    []string
}

func convert(dic io.Reader, store *affix.Store, workers, byteLen int) (*WordlistResult, error) {
	accumulators := map[category]*Accumulator{
		categoryCommon:     NewAccumulator(byteLen),
		categoryProperNoun: NewAccumulator(byteLen),
		categoryAcronym:    NewAccumulator(byteLen),
		categoryProfanity:  NewAccumulator(byteLen),
	}
	defer func() {
		for _, a := range accumulators {
			a.Close()
		}
	}()

	scanner := bufio.NewScanner(dic)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	// first line is the word count
	scanner.Scan()

	var stems, skipped int
	batch := make([]entry, 0, batchSize)
	flush := func() error {
		results, err := expandBatch(batch, store, workers)
		if err != nil {
			return err
		}
		for _, r := range results {
			accumulators[r.category].Add(r.words...)
		}
		batch = batch[:0]
		return nil
	}

	for scanner.Scan() {
		e, ok := parseEntry(scanner.Text())
		if !ok {
			continue
		}
		if store.IsOnlyInCompound(e.flags) {
			skipped++
			continue
		}
		stems++
		batch = append(batch, e)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	gologger.Verbose().Msgf("expanded %d stems, skipped %d compound-only stems", stems, skipped)

	profanity := accumulators[categoryProfanity]
	acronyms := accumulators[categoryAcronym]
	properNouns := accumulators[categoryProperNoun]
	return &WordlistResult{
		Profanity:   profanity.Collect(),
		Acronyms:    acronyms.Collect(profanity),
		ProperNouns: properNouns.Collect(profanity, acronyms),
		Words:       accumulators[categoryCommon].Collect(profanity, acronyms, properNouns),
	}, nil
}

// expandBatch expands entries with up to workers goroutines,
// results keep the order of entries
func expandBatch(entries []entry, store *affix.Store, workers int) ([]expansion, error) {
	results := make([]expansion, len(entries))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			expanded := affix.Expand(e.stem, e.flags, store)
			words := make([]string, 0, len(expanded))
			for w := range expanded {
				words = append(words, w)
			}
			// map order is random, sort so the first kept spelling is stable
			sortFold(words)
			results[i] = expansion{category: classify(e, store), words: words}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

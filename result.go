package wordbee

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultOutputTemplate names converted wordlist files, ex: en_US_common.txt
var DefaultOutputTemplate = "{{name}}_{{category}}.txt"

// WordlistResult holds the four disjoint, sorted wordlists of a conversion
type WordlistResult struct {
	Words       []string // common lowercase words
	ProperNouns []string // stems with any uppercase letter, ex: Aaron, GitHub
	Acronyms    []string // all caps stems, ex: NASA
	Profanity   []string // NOSUGGEST stems regardless of case
}

// CategoryList is a wordlist together with its category name
type CategoryList struct {
	Category string
	Words    []string
}

// Lists returns the wordlists in output order
func (r *WordlistResult) Lists() []CategoryList {
	return []CategoryList{
		{Category: CategoryCommon, Words: r.Words},
		{Category: CategoryProperNouns, Words: r.ProperNouns},
		{Category: CategoryAcronyms, Words: r.Acronyms},
		{Category: CategoryProfanity, Words: r.Profanity},
	}
}

// WrittenFile describes one wordlist file written to disk
type WrittenFile struct {
	Category string
	Path     string
	Count    int
}

// WriteFiles writes every non-empty wordlist to dir, one word per line.
// File names are rendered from template with {{name}} and {{category}},
// an empty template uses DefaultOutputTemplate.
func (r *WordlistResult) WriteFiles(dir, name, template string) ([]WrittenFile, error) {
	if template == "" {
		template = DefaultOutputTemplate
	}
	if err := validateTemplate(template, "category", "name", "category"); err != nil {
		return nil, err
	}
	var written []WrittenFile
	for _, list := range r.Lists() {
		if len(list.Words) == 0 {
			continue
		}
		fileName := Replace(template, map[string]interface{}{"name": name, "category": list.Category})
		path := filepath.Join(dir, fileName)
		if err := writeWordlist(path, list.Words); err != nil {
			return written, err
		}
		written = append(written, WrittenFile{Category: list.Category, Path: path, Count: len(list.Words)})
	}
	return written, nil
}

func writeWordlist(path string, words []string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output file %v: %w", path, err)
	}
	w := bufio.NewWriter(f)
	for _, word := range words {
		if _, err := w.WriteString(word + "\n"); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

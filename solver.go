package wordbee

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/utils/errkit"
	fileutil "github.com/projectdiscovery/utils/file"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

const (
	// PuzzleSize is the number of letters of a puzzle
	PuzzleSize = 7
	// MinSolutionLength is the shortest accepted answer
	MinSolutionLength = 4
)

var (
	ErrLetterCount     = errkit.New("expected exactly 7 letters")
	ErrLetterNotAlpha  = errkit.New("letters must be alphabetic characters only")
	ErrLetterDuplicate = errkit.New("all 7 letters must be unique")
)

// ValidateLetters checks a puzzle and returns it upper-cased.
// The first letter is the required main letter.
func ValidateLetters(letters string) (string, error) {
	letters = strings.ToUpper(letters)
	runes := []rune(letters)
	if len(runes) != PuzzleSize {
		return "", ErrLetterCount
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return "", ErrLetterNotAlpha
		}
	}
	if len(sliceutil.Dedupe(runes)) != PuzzleSize {
		return "", ErrLetterDuplicate
	}
	return letters, nil
}

// LetterSet is the set of lowercase letters of a puzzle
type LetterSet map[rune]struct{}

// NewLetterSet returns the lowercase letter set of letters
func NewLetterSet(letters string) LetterSet {
	set := LetterSet{}
	for _, r := range strings.ToLower(letters) {
		set[r] = struct{}{}
	}
	return set
}

// IsValidWord reports whether word is long enough, uses the main letter
// and nothing outside letters
func IsValidWord(word string, letters LetterSet, mainLetter rune) bool {
	lower := strings.ToLower(word)
	if utf8.RuneCountInString(lower) < MinSolutionLength {
		return false
	}
	if !strings.ContainsRune(lower, unicode.ToLower(mainLetter)) {
		return false
	}
	for _, r := range lower {
		if _, ok := letters[r]; !ok {
			return false
		}
	}
	return true
}

// IsPangram reports whether word uses every letter and no other
func IsPangram(word string, letters LetterSet) bool {
	used := NewLetterSet(word)
	if len(used) != len(letters) {
		return false
	}
	for r := range used {
		if _, ok := letters[r]; !ok {
			return false
		}
	}
	return true
}

// LoadWordlist reads one word per line skipping blank lines
func LoadWordlist(path string) ([]string, error) {
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("wordlist %v: %w", path, os.ErrNotExist)
	}
	lines, err := fileutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wordlist %v: %w", path, err)
	}
	var words []string
	for line := range lines {
		if word := strings.TrimSpace(line); word != "" {
			words = append(words, word)
		}
	}
	return words, nil
}

// Section is a named group of solutions
type Section struct {
	Name  string
	Words []string
}

// SolverOptions
type SolverOptions struct {
	// Config locates the wordlists, DefaultConfig when nil
	Config *Config
	// ShowProfanity includes the profanity wordlist
	ShowProfanity bool
	// HideAcronyms excludes the acronyms wordlist
	HideAcronyms bool
}

// Solver finds spelling bee answers in a prioritized set of wordlists
type Solver struct {
	Options *SolverOptions
}

// NewSolver creates a solver from options
func NewSolver(opts *SolverOptions) *Solver {
	if opts.Config == nil {
		cfg := DefaultConfig
		opts.Config = &cfg
	}
	return &Solver{Options: opts}
}

type source struct {
	section string
	path    string
}

// sources returns the wordlists in priority order, earlier lists claim words first
func (s *Solver) sources() []source {
	cfg := s.Options.Config
	all := []source{{section: SectionCommon, path: cfg.Path(cfg.Common)}}
	if s.Options.ShowProfanity {
		all = append(all, source{section: SectionProfanity, path: cfg.Path(cfg.Profanity)})
	}
	all = append(all, source{section: SectionProperNouns, path: cfg.Path(cfg.ProperNouns)})
	if !s.Options.HideAcronyms {
		all = append(all, source{section: SectionAcronyms, path: cfg.Path(cfg.Acronyms)})
	}
	return append(all, source{section: SectionOther, path: cfg.Path(cfg.Other)})
}

// Solve validates letters and returns the answers grouped by section.
// Pangrams always come first, other sections follow wordlist priority
// and are omitted when empty.
func (s *Solver) Solve(letters string) ([]Section, error) {
	letters, err := ValidateLetters(letters)
	if err != nil {
		return nil, err
	}
	mainLetter, _ := utf8.DecodeRuneInString(letters)
	letterSet := NewLetterSet(letters)

	seen := map[string]struct{}{}
	pangrams := []string{}
	var sections []Section
	for _, src := range s.sources() {
		words, err := LoadWordlist(src.path)
		if err != nil {
			return nil, err
		}
		valid := []string{}
		for _, word := range words {
			if !IsValidWord(word, letterSet, mainLetter) {
				continue
			}
			key := strings.ToLower(word)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			if IsPangram(word, letterSet) {
				pangrams = append(pangrams, word)
				continue
			}
			valid = append(valid, word)
		}
		gologger.Verbose().Msgf("%v: %d of %d words match", src.section, len(valid), len(words))
		if len(valid) > 0 {
			sortFold(valid)
			sections = append(sections, Section{Name: src.section, Words: valid})
		}
	}
	sortFold(pangrams)
	return append([]Section{{Name: SectionPangrams, Words: pangrams}}, sections...), nil
}

// FormatSections writes each non-empty section as a header followed by indented words
func FormatSections(w io.Writer, sections []Section) error {
	var b strings.Builder
	for _, section := range sections {
		if len(section.Words) == 0 {
			continue
		}
		b.WriteString(section.Name + ":\n")
		for _, word := range section.Words {
			b.WriteString("  " + word + "\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

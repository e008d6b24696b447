// Package affix parses Hunspell affix files and expands dictionary stems
// into every surface form their PFX/SFX flags allow.
//
// Only prefix/suffix rules are modeled, together with the NOSUGGEST and
// ONLYINCOMPOUND flags. Compounding, continuation classes and the other
// Hunspell directives are ignored.
package affix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/projectdiscovery/gologger"
	mapsutil "github.com/projectdiscovery/utils/maps"
)

// Kind tells whether a group prepends or appends text
type Kind int

const (
	Prefix Kind = iota
	Suffix
)

func (k Kind) String() string {
	if k == Prefix {
		return "PFX"
	}
	return "SFX"
}

// noOp is the strip/add placeholder used by affix files for "nothing"
const noOp = "0"

// Rule is a single strip/add/condition line of a PFX or SFX block
type Rule struct {
	Strip     string // text removed from the stem, empty when none
	Add       string // text added to the stem, empty when none
	Condition string // raw hunspell condition

	matcher *regexp.Regexp // nil matches every stem
}

// HasStrip reports whether the rule removes text before adding
func (r *Rule) HasStrip() bool {
	return r.Strip != ""
}

// Matches reports whether stem satisfies the rule condition
func (r *Rule) Matches(stem string) bool {
	if r.matcher == nil {
		return true
	}
	return r.matcher.MatchString(stem)
}

// Group holds all rules sharing one flag character
type Group struct {
	Kind         Kind
	Flag         rune
	CrossProduct bool
	Rules        []*Rule
}

// Store is the parsed content of an affix file.
// It is never mutated after Parse returns and can be shared freely.
type Store struct {
	Groups             map[rune]*Group
	NoSuggestFlag      rune // 0 when not configured
	OnlyInCompoundFlag rune // 0 when not configured
}

// Group returns the group registered for flag
func (s *Store) Group(flag rune) (*Group, bool) {
	g, ok := s.Groups[flag]
	return g, ok
}

// Flags returns all defined affix flags in sorted order
func (s *Store) Flags() []rune {
	flags := mapsutil.GetKeys(s.Groups)
	slices.Sort(flags)
	return flags
}

// IsNoSuggest reports whether flags carries the NOSUGGEST flag
func (s *Store) IsNoSuggest(flags string) bool {
	return s.NoSuggestFlag != 0 && strings.ContainsRune(flags, s.NoSuggestFlag)
}

// IsOnlyInCompound reports whether flags carries the ONLYINCOMPOUND flag
func (s *Store) IsOnlyInCompound(flags string) bool {
	return s.OnlyInCompoundFlag != 0 && strings.ContainsRune(flags, s.OnlyInCompoundFlag)
}

// ParseFile parses the affix file at path
func ParseFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open affix file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads affix directives from r.
// Unknown directives, comments and malformed lines are skipped.
func Parse(r io.Reader) (*Store, error) {
	s := &Store{Groups: map[rune]*Group{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}

		switch parts[0] {
		case "NOSUGGEST":
			s.NoSuggestFlag = firstRune(parts[1])
		case "ONLYINCOMPOUND":
			s.OnlyInCompoundFlag = firstRune(parts[1])
		case "PFX", "SFX":
			s.parseAffixLine(parts, lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read affix file: %w", err)
	}
	return s, nil
}

func (s *Store) parseAffixLine(parts []string, lineNo int) {
	flag, size := utf8.DecodeRuneInString(parts[1])
	if flag == utf8.RuneError || size != len(parts[1]) {
		gologger.Verbose().Msgf("affix: line %d: unsupported flag %q, skipping", lineNo, parts[1])
		return
	}
	kind := Prefix
	if parts[0] == "SFX" {
		kind = Suffix
	}

	// header: SFX <flag> <Y|N> <count>
	if len(parts) == 4 && isDigits(parts[3]) {
		s.Groups[flag] = &Group{
			Kind:         kind,
			Flag:         flag,
			CrossProduct: parts[2] == "Y",
		}
		return
	}

	// rule: SFX <flag> <strip> <add> <condition>
	group, ok := s.Groups[flag]
	if len(parts) < 5 || !ok {
		return
	}
	rule, err := newRule(parts[2], parts[3], parts[4], group.Kind)
	if err != nil {
		gologger.Verbose().Msgf("affix: line %d: %v, skipping", lineNo, err)
		return
	}
	group.Rules = append(group.Rules, rule)
}

func newRule(strip, add, condition string, kind Kind) (*Rule, error) {
	// continuation classes (add/flags) are not modeled
	if idx := strings.IndexByte(add, '/'); idx >= 0 {
		add = add[:idx]
	}
	r := &Rule{
		Strip:     normalizeOp(strip),
		Add:       normalizeOp(add),
		Condition: condition,
	}
	if condition == "." {
		return r, nil
	}
	expr := condition + "$"
	if kind == Prefix {
		expr = "^" + condition
	}
	matcher, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid condition %q: %v", condition, err)
	}
	r.matcher = matcher
	return r, nil
}

func normalizeOp(v string) string {
	if v == noOp {
		return ""
	}
	return v
}

func firstRune(v string) rune {
	r, _ := utf8.DecodeRuneInString(v)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

func isDigits(v string) bool {
	if v == "" {
		return false
	}
	for _, c := range v {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

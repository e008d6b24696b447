package wordbee

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeWordlists creates a wordlist directory laid out like DefaultConfig
func writeWordlists(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	lists := map[string][]string{
		DefaultConfig.Common:      {"trail", "later", "vital", "relative", "little", "tire", "let", "layer", "", "  lire  "},
		DefaultConfig.Profanity:   {"tail", "LITER"},
		DefaultConfig.ProperNouns: {"Vital", "Lirte", "Paris"},
		DefaultConfig.Acronyms:    {"LIVE", "TIL"},
		DefaultConfig.Other:       {"alliterative", "TRAIL", "liter", "retail", "aaaa"},
	}
	for name, words := range lists {
		err := os.WriteFile(filepath.Join(dir, name), []byte(strings.Join(words, "\n")+"\n"), 0644)
		require.Nil(t, err)
	}
	cfg := DefaultConfig
	cfg.WordlistDir = dir
	return &cfg
}

func sectionMap(sections []Section) map[string][]string {
	m := map[string][]string{}
	for _, s := range sections {
		m[s.Name] = s.Words
	}
	return m
}

func TestValidateLetters(t *testing.T) {
	got, err := ValidateLetters("laertiv")
	require.Nil(t, err)
	require.Equal(t, "LAERTIV", got)

	testcases := []struct {
		letters  string
		expected error
	}{
		{letters: "ABCDEF", expected: ErrLetterCount},
		{letters: "ABCDEFGH", expected: ErrLetterCount},
		{letters: "ABCDE1G", expected: ErrLetterNotAlpha},
		{letters: "AABCDEF", expected: ErrLetterDuplicate},
		{letters: "aAbcdef", expected: ErrLetterDuplicate},
	}
	for _, tc := range testcases {
		_, err := ValidateLetters(tc.letters)
		require.ErrorIs(t, err, tc.expected, "letters %v", tc.letters)
	}
}

func TestIsValidWord(t *testing.T) {
	letters := NewLetterSet("laertiv")
	testcases := []struct {
		word     string
		expected bool
	}{
		{word: "trail", expected: true},
		{word: "TRAIL", expected: true},
		{word: "little", expected: true},
		{word: "lire", expected: true},
		{word: "let", expected: false},
		{word: "tire", expected: false},
		{word: "layer", expected: false},
		{word: "", expected: false},
	}
	for _, tc := range testcases {
		require.Equal(t, tc.expected, IsValidWord(tc.word, letters, 'L'), "word %v", tc.word)
	}
}

func TestIsPangram(t *testing.T) {
	letters := NewLetterSet("LAERTIV")
	require.True(t, IsPangram("relative", letters))
	require.True(t, IsPangram("Alliterative", letters))
	require.False(t, IsPangram("trail", letters))
}

func TestLoadWordlist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.txt")
	require.Nil(t, os.WriteFile(path, []byte("alpha\n\nbeta\n  \ngamma\n"), 0644))
	words, err := LoadWordlist(path)
	require.Nil(t, err)
	require.Equal(t, []string{"alpha", "beta", "gamma"}, words)

	_, err = LoadWordlist(filepath.Join(t.TempDir(), "missing.txt"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSolve(t *testing.T) {
	cfg := writeWordlists(t)

	t.Run("known puzzle", func(t *testing.T) {
		sections, err := NewSolver(&SolverOptions{Config: cfg}).Solve("LAERTIV")
		require.Nil(t, err)
		require.Equal(t, SectionPangrams, sections[0].Name)

		got := sectionMap(sections)
		require.Equal(t, []string{"alliterative", "relative"}, got[SectionPangrams])
		require.Equal(t, []string{"later", "lire", "little", "trail", "vital"}, got[SectionCommon])
		require.Equal(t, []string{"Lirte"}, got[SectionProperNouns])
		require.Equal(t, []string{"LIVE"}, got[SectionAcronyms])
		require.Equal(t, []string{"liter", "retail"}, got[SectionOther])
		require.NotContains(t, got, SectionProfanity)

		names := []string{}
		for _, s := range sections {
			names = append(names, s.Name)
		}
		require.Equal(t, []string{SectionPangrams, SectionCommon, SectionProperNouns, SectionAcronyms, SectionOther}, names)
	})

	t.Run("profanity shown", func(t *testing.T) {
		sections, err := NewSolver(&SolverOptions{Config: cfg, ShowProfanity: true}).Solve("laertiv")
		require.Nil(t, err)
		got := sectionMap(sections)
		require.Equal(t, []string{"LITER", "tail"}, got[SectionProfanity])
		require.Equal(t, []string{"retail"}, got[SectionOther], "liter is claimed by profanity first")

		seen := map[string]bool{}
		for _, s := range sections {
			for _, w := range s.Words {
				key := strings.ToLower(w)
				require.Falsef(t, seen[key], "%v duplicated in %v", w, s.Name)
				seen[key] = true
				require.Contains(t, key, "l")
				require.GreaterOrEqual(t, len(key), MinSolutionLength)
			}
		}
	})

	t.Run("acronyms hidden", func(t *testing.T) {
		sections, err := NewSolver(&SolverOptions{Config: cfg, HideAcronyms: true}).Solve("LAERTIV")
		require.Nil(t, err)
		require.NotContains(t, sectionMap(sections), SectionAcronyms)
	})

	t.Run("invalid letters rejected before reading", func(t *testing.T) {
		empty := DefaultConfig
		empty.WordlistDir = filepath.Join(t.TempDir(), "missing")
		_, err := NewSolver(&SolverOptions{Config: &empty}).Solve("AABCDEF")
		require.ErrorIs(t, err, ErrLetterDuplicate)
	})

	t.Run("missing wordlist", func(t *testing.T) {
		empty := DefaultConfig
		empty.WordlistDir = filepath.Join(t.TempDir(), "missing")
		_, err := NewSolver(&SolverOptions{Config: &empty}).Solve("LAERTIV")
		require.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestFormatSections(t *testing.T) {
	var buf bytes.Buffer
	err := FormatSections(&buf, []Section{
		{Name: SectionPangrams, Words: []string{}},
		{Name: SectionCommon, Words: []string{"later", "trail"}},
		{Name: SectionOther, Words: []string{"retail"}},
	})
	require.Nil(t, err)
	require.Equal(t, "Common words:\n  later\n  trail\nOther words:\n  retail\n", buf.String())
}

package wordbee

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/projectdiscovery/wordbee/affix"
	"github.com/stretchr/testify/require"
)

var (
	sampleDic = filepath.Join("testdata", "en_sample.dic")
	sampleAff = filepath.Join("testdata", "en_sample.aff")
)

func convertSample(t *testing.T, workers int) *WordlistResult {
	t.Helper()
	c, err := New(&Options{Dictionary: sampleDic, Affix: sampleAff, Workers: workers})
	require.Nil(t, err)
	result, err := c.Convert()
	require.Nil(t, err)
	return result
}

func TestConvertSample(t *testing.T) {
	result := convertSample(t, 1)

	require.Equal(t, []string{"shit", "shits"}, result.Profanity)
	require.Equal(t, []string{"AIDS", "FBI", "NASA"}, result.Acronyms)
	require.Equal(t, []string{"Aaron", "AstroTurf", "Boston", "GitHub", "Th"}, result.ProperNouns)
	require.Equal(t, []string{
		"abandon", "abandoned", "abandoning", "abandonment", "abandons",
		"applied", "applies", "apply", "applying",
		"bake", "baked", "bakes", "baking",
		"boy", "boys", "cat", "cats", "lock",
		"quick", "quickest", "quickly",
		"reapplied", "reapplies", "reapply", "reapplying",
		"unlock", "walk", "walked", "walking", "walks",
	}, result.Words)
}

func TestConvertWorkersMatchSequential(t *testing.T) {
	require.Equal(t, convertSample(t, 1), convertSample(t, 8))
}

func TestConvertInvariants(t *testing.T) {
	result := convertSample(t, 4)

	seen := map[string]string{}
	for _, list := range result.Lists() {
		for _, w := range list.Words {
			key := strings.ToLower(w)
			prev, ok := seen[key]
			require.Falsef(t, ok, "%v found in both %v and %v", w, prev, list.Category)
			seen[key] = list.Category

			require.True(t, isAlpha(w), "non alphabetic word %v", w)
			require.GreaterOrEqual(t, len([]rune(w)), 2, "short word %v", w)
		}
		sorted := append([]string{}, list.Words...)
		sortFold(sorted)
		require.Equal(t, sorted, list.Words, "%v is not sorted", list.Category)
	}

	for _, w := range result.Words {
		require.Equal(t, strings.ToLower(w), w, "common words must be lowercase")
	}
	for _, w := range result.ProperNouns {
		require.NotEqual(t, strings.ToLower(w), w, "proper nouns must carry uppercase")
	}
}

func TestConvertPriorityExclusion(t *testing.T) {
	// profanity wins over every other category regardless of stem casing
	dic := "4\nDarn/S\nDARN\ndarn/!\ndarns\n"
	aff := "NOSUGGEST !\nSFX S Y 1\nSFX S 0 s .\n"
	result, err := ConvertReaders(strings.NewReader(dic), strings.NewReader(aff))
	require.Nil(t, err)
	require.Equal(t, []string{"darn"}, result.Profanity)
	require.Empty(t, result.Acronyms)
	require.Equal(t, []string{"Darns"}, result.ProperNouns)
	require.Empty(t, result.Words)
}

func TestConvertOnlyInCompound(t *testing.T) {
	dic := "3\n1th/c\nth/c\nthe\n"
	aff := "ONLYINCOMPOUND c\n"
	result, err := ConvertReaders(strings.NewReader(dic), strings.NewReader(aff))
	require.Nil(t, err)
	require.Equal(t, []string{"the"}, result.Words)
	require.Empty(t, result.ProperNouns)
	require.Empty(t, result.Acronyms)
	require.Empty(t, result.Profanity)
}

func TestConvertFirstLineSkipped(t *testing.T) {
	// the count line is skipped even when it looks like a word
	dic := "hello\n\nworld\n  \n"
	result, err := ConvertReaders(strings.NewReader(dic), strings.NewReader(""))
	require.Nil(t, err)
	require.Equal(t, []string{"world"}, result.Words)
}

func TestConvertMissingFiles(t *testing.T) {
	_, err := ConvertFiles(filepath.Join(t.TempDir(), "missing.dic"), sampleAff)
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))

	_, err = ConvertFiles(sampleDic, filepath.Join(t.TempDir(), "missing.aff"))
	require.True(t, errors.Is(err, os.ErrNotExist))

	_, err = New(&Options{})
	require.Error(t, err)
}

func TestClassify(t *testing.T) {
	store := mustStore(t, "NOSUGGEST !\n")
	testcases := []struct {
		stem     string
		flags    string
		expected category
	}{
		{stem: "walk", expected: categoryCommon},
		{stem: "Aaron", expected: categoryProperNoun},
		{stem: "eBay", expected: categoryProperNoun},
		{stem: "NASA", expected: categoryAcronym},
		{stem: "I", expected: categoryProperNoun},
		{stem: "NASA", flags: "M!", expected: categoryProfanity},
		{stem: "damn", flags: "!", expected: categoryProfanity},
	}
	for _, tc := range testcases {
		require.Equal(t, tc.expected, classify(entry{stem: tc.stem, flags: tc.flags}, store), "stem %v", tc.stem)
	}
}

func mustStore(t *testing.T, aff string) *affix.Store {
	t.Helper()
	store, err := affix.Parse(strings.NewReader(aff))
	require.Nil(t, err)
	return store
}

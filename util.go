package wordbee

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

var varRegex = regexp.MustCompile(`\{\{([a-zA-Z0-9]+)\}\}`)

// minWordLength is the shortest word kept in converted wordlists
const minWordLength = 2

// returns names of all variables
func getAllVars(data string) []string {
	var values []string
	for _, v := range varRegex.FindAllStringSubmatch(data, -1) {
		if len(v) >= 2 {
			values = append(values, v[1])
		}
	}
	return values
}

// checkMissing checks if all variables/placeholders are successfully replaced
// if not error is thrown with description
func checkMissing(template string, data map[string]interface{}) error {
	got := Replace(template, data)
	if res := varRegex.FindAllString(got, -1); len(res) > 0 {
		return fmt.Errorf("values of `%v` variables not found", strings.Join(res, ","))
	}
	return nil
}

// isAlpha reports whether word is non-empty and made of letters only
func isAlpha(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// isListable reports whether word may appear in a converted wordlist
func isListable(word string) bool {
	return isAlpha(word) && utf8.RuneCountInString(word) >= minWordLength
}

// isAcronym reports whether stem is all caps, ex: NASA
func isAcronym(stem string) bool {
	if utf8.RuneCountInString(stem) < 2 {
		return false
	}
	cased := false
	for _, r := range stem {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// hasUppercase reports whether stem carries any uppercase letter
func hasUppercase(stem string) bool {
	return strings.IndexFunc(stem, unicode.IsUpper) >= 0
}

// sortFold sorts words case-insensitively, ties are ordered by their original spelling
func sortFold(words []string) {
	slices.SortFunc(words, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}

package affix

import "strings"

// Apply applies every rule of g to stem once and returns the produced words.
// Rules whose condition or strip text does not match are skipped.
// Duplicates are possible and left to the caller.
func Apply(stem string, g *Group) []string {
	var results []string
	for _, rule := range g.Rules {
		if word, ok := applyRule(stem, rule, g.Kind); ok {
			results = append(results, word)
		}
	}
	return results
}

func applyRule(stem string, rule *Rule, kind Kind) (string, bool) {
	if !rule.Matches(stem) {
		return "", false
	}
	if kind == Suffix {
		if !rule.HasStrip() {
			return stem + rule.Add, true
		}
		if !strings.HasSuffix(stem, rule.Strip) {
			return "", false
		}
		return strings.TrimSuffix(stem, rule.Strip) + rule.Add, true
	}
	if !rule.HasStrip() {
		return rule.Add + stem, true
	}
	if !strings.HasPrefix(stem, rule.Strip) {
		return "", false
	}
	return rule.Add + strings.TrimPrefix(stem, rule.Strip), true
}

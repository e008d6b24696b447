package affix

// Expand returns every surface form of stem allowed by flags, stem included.
//
// Suffix groups are applied first. Outputs of cross-product suffix groups
// are then fed to every cross-product prefix group, so a prefix lands on a
// suffixed word only when both groups allow it. Flags without a group are
// ignored.
func Expand(stem, flags string, s *Store) map[string]struct{} {
	words := map[string]struct{}{stem: {}}

	var prefixes, suffixes []*Group
	for _, flag := range flags {
		g, ok := s.Group(flag)
		if !ok {
			continue
		}
		if g.Kind == Prefix {
			prefixes = append(prefixes, g)
		} else {
			suffixes = append(suffixes, g)
		}
	}

	var crossable []string
	for _, g := range suffixes {
		produced := Apply(stem, g)
		addAll(words, produced)
		if g.CrossProduct {
			crossable = append(crossable, produced...)
		}
	}

	for _, g := range prefixes {
		addAll(words, Apply(stem, g))
		if !g.CrossProduct {
			continue
		}
		for _, suffixed := range crossable {
			addAll(words, Apply(suffixed, g))
		}
	}
	return words
}

func addAll(set map[string]struct{}, words []string) {
	for _, w := range words {
		set[w] = struct{}{}
	}
}

package wordbee

// Categories of converted wordlists, also used in output file names
const (
	CategoryCommon      = "common"
	CategoryProperNouns = "proper_nouns"
	CategoryAcronyms    = "acronyms"
	CategoryProfanity   = "profanity"
)

// Solver section names
const (
	SectionPangrams    = "Pangrams"
	SectionCommon      = "Common words"
	SectionProfanity   = "Profanity"
	SectionProperNouns = "Proper nouns"
	SectionAcronyms    = "Acronyms"
	SectionOther       = "Other words"
)

// DefaultConfig is the wordlist layout written by dicconv for en_US
var DefaultConfig = Config{
	WordlistDir: "wordlists",
	Common:      "en_US_common.txt",
	Profanity:   "en_US_profanity.txt",
	ProperNouns: "en_US_proper_nouns.txt",
	Acronyms:    "en_US_acronyms.txt",
	Other:       "words_alpha.txt",
}

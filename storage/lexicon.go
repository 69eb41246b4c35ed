package storage

import (
	"strings"
	"unicode"
)

// Lexicon is the static configuration data driving keyword tokenization and
// scoring: stop words, the synonym thesaurus, and the boosted technical-skill
// vocabulary. It is injected into the KeywordIndex so the tables can be
// swapped in tests.
type Lexicon struct {
	// StopWords are dropped during tokenization.
	StopWords map[string]bool

	// Synonyms maps a term to its domain synonyms. Expansion is applied to
	// query terms; synonym matches are weighted by SynonymWeight.
	Synonyms map[string][]string

	// Skills is the curated technical-skill vocabulary. Matches on these
	// terms are multiplied by SkillBoost.
	Skills map[string]bool

	// Titles is the job-title vocabulary. Matches on these terms are
	// multiplied by TitleBoost; the query classifier also consults this
	// table to recognize role queries.
	Titles map[string]bool

	// SkillBoost is the score multiplier for skill-vocabulary matches.
	SkillBoost float64

	// TitleBoost is the score multiplier for title-vocabulary matches.
	TitleBoost float64

	// SynonymWeight is the score multiplier for synonym (vs. original
	// query term) matches.
	SynonymWeight float64
}

// IsStopWord reports whether the term is filtered during tokenization.
func (l *Lexicon) IsStopWord(term string) bool {
	return l.StopWords[term]
}

// IsSkill reports whether the term is in the boosted skill vocabulary.
func (l *Lexicon) IsSkill(term string) bool {
	return l.Skills[term]
}

// IsTitle reports whether the term is in the job-title vocabulary.
func (l *Lexicon) IsTitle(term string) bool {
	return l.Titles[term]
}

// Tokenize splits text into lowercase terms, dropping stop words and terms
// shorter than two characters.
func (l *Lexicon) Tokenize(text string) []string {
	words := splitWords(text)
	terms := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) < 2 || l.IsStopWord(word) {
			continue
		}
		terms = append(terms, word)
	}
	return terms
}

// ExpandTerm returns the term's weighted match set: the term itself at full
// weight plus each synonym at SynonymWeight. Thesaurus entries may be
// multi-word or dotted ("machine learning", "react.js"); posting lists hold
// unigrams, so each entry is tokenized into the form the indexer writes.
func (l *Lexicon) ExpandTerm(term string) []WeightedTerm {
	expanded := []WeightedTerm{{Term: term, Weight: 1.0}}
	seen := map[string]bool{term: true}
	for _, syn := range l.Synonyms[term] {
		for _, t := range l.Tokenize(syn) {
			if seen[t] {
				continue
			}
			seen[t] = true
			expanded = append(expanded, WeightedTerm{Term: t, Weight: l.SynonymWeight})
		}
	}
	return expanded
}

// WeightedTerm is one term of an expanded query with its match weight.
type WeightedTerm struct {
	Term   string
	Weight float64
}

// splitWords lowercases text and splits on any non-alphanumeric rune,
// keeping '+' and '#' so terms like "c++" and "c#" survive.
func splitWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		if r == '+' || r == '#' {
			return false
		}
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// DefaultLexicon returns the built-in recruiting-domain tables.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		StopWords:     defaultStopWords,
		Synonyms:      defaultSynonyms,
		Skills:        defaultSkills,
		Titles:        defaultTitles,
		SkillBoost:    1.5,
		TitleBoost:    1.25,
		SynonymWeight: 0.8,
	}
}

var defaultTitles = map[string]bool{
	"developer": true, "engineer": true, "designer": true, "manager": true,
	"lead": true, "senior": true, "junior": true, "architect": true,
	"analyst": true, "scientist": true, "programmer": true, "consultant": true,
	"administrator": true, "specialist": true, "intern": true,
}

var defaultStopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true, "been": true, "be": true, "have": true,
	"has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "may": true,
	"might": true, "must": true, "shall": true, "can": true, "need": true,
	"that": true, "this": true, "these": true, "those": true, "i": true,
	"you": true, "he": true, "she": true, "it": true, "we": true, "they": true,
	"what": true, "which": true, "who": true, "whom": true, "where": true,
	"when": true, "why": true, "how": true, "all": true, "each": true,
	"every": true, "both": true, "few": true, "more": true, "most": true,
	"other": true, "some": true, "such": true, "no": true, "nor": true,
	"not": true, "only": true, "own": true, "same": true, "so": true,
	"than": true, "too": true, "very": true, "just": true, "also": true,
	"now": true, "skills": true, "experience": true, "years": true,
	"work": true, "working": true, "job": true, "position": true,
	"role": true, "level": true, "looking": true, "seeking": true,
	"required": true, "requirements": true, "preferred": true,
}

var defaultSynonyms = map[string][]string{
	"react":                   {"reactjs", "react.js"},
	"reactjs":                 {"react", "react.js"},
	"vue":                     {"vuejs", "vue.js"},
	"vuejs":                   {"vue", "vue.js"},
	"angular":                 {"angularjs", "angular.js"},
	"node":                    {"nodejs", "node.js"},
	"nodejs":                  {"node", "node.js"},
	"javascript":              {"js", "ecmascript"},
	"js":                      {"javascript", "ecmascript"},
	"typescript":              {"ts"},
	"ts":                      {"typescript"},
	"python":                  {"py"},
	"py":                      {"python"},
	"golang":                  {"go"},
	"go":                      {"golang"},
	"kubernetes":              {"k8s"},
	"k8s":                     {"kubernetes"},
	"postgresql":              {"postgres", "psql"},
	"postgres":                {"postgresql", "psql"},
	"mongodb":                 {"mongo"},
	"mongo":                   {"mongodb"},
	"elasticsearch":           {"elastic", "es"},
	"machine learning":        {"ml", "machinelearning"},
	"ml":                      {"machine learning", "machinelearning"},
	"artificial intelligence": {"ai"},
	"ai":                      {"artificial intelligence"},
	"frontend":                {"front-end", "front end"},
	"backend":                 {"back-end", "back end"},
	"fullstack":               {"full-stack", "full stack"},
	"devops":                  {"dev-ops", "dev ops"},
	"nextjs":                  {"next.js", "next"},
	"nuxtjs":                  {"nuxt.js", "nuxt"},
}

var defaultSkills = map[string]bool{
	"flutter": true, "dart": true, "react": true, "angular": true, "vue": true,
	"javascript": true, "typescript": true, "python": true, "java": true,
	"kotlin": true, "swift": true, "go": true, "rust": true, "ruby": true,
	"php": true, "node": true, "nodejs": true, "express": true, "django": true,
	"flask": true, "spring": true, "rails": true, "sql": true, "mysql": true,
	"postgresql": true, "mongodb": true, "redis": true, "elasticsearch": true,
	"aws": true, "azure": true, "gcp": true, "docker": true,
	"kubernetes": true, "terraform": true, "ios": true, "android": true,
	"mobile": true, "frontend": true, "backend": true, "fullstack": true,
	"devops": true, "mlops": true, "ml": true, "ai": true, "tensorflow": true,
	"pytorch": true, "pandas": true, "numpy": true, "scikit": true,
	"html": true, "css": true, "sass": true, "tailwind": true,
	"bootstrap": true, "git": true, "agile": true, "scrum": true,
	"jira": true, "figma": true, "sketch": true,
}

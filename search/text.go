package search

import (
	"strings"

	"github.com/talentgrid/talentsearch/storage"
)

// tokenizeAndFilter splits text into words, lowercases, trims punctuation,
// and removes the lexicon's stop words.
func tokenizeAndFilter(text string, lexicon *storage.Lexicon) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		if cleaned != "" && !lexicon.IsStopWord(cleaned) {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}

// containsAllQueryWords checks if all query words (after filtering) appear in the document.
func containsAllQueryWords(document, query string, lexicon *storage.Lexicon) bool {
	queryWords := tokenizeAndFilter(query, lexicon)
	if len(queryWords) == 0 {
		return false
	}

	docWords := tokenizeAndFilter(document, lexicon)
	docWordSet := make(map[string]bool, len(docWords))
	for _, word := range docWords {
		docWordSet[word] = true
	}

	for _, qWord := range queryWords {
		if !docWordSet[qWord] {
			return false
		}
	}

	return true
}

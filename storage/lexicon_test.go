package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexicon_Tokenize(t *testing.T) {
	lex := DefaultLexicon()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and splits on punctuation",
			text: "React, Node.js and PostgreSQL",
			want: []string{"react", "node", "js", "postgresql"},
		},
		{
			name: "drops stop words",
			text: "looking for a developer with experience in Go",
			want: []string{"developer", "go"},
		},
		{
			name: "drops single-character terms",
			text: "a b c Go",
			want: []string{"go"},
		},
		{
			name: "keeps c++ and c#",
			text: "C++ and C# developer",
			want: []string{"c++", "c#", "developer"},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lex.Tokenize(tt.text))
		})
	}
}

func TestLexicon_ExpandTerm(t *testing.T) {
	lex := DefaultLexicon()

	t.Run("term with synonyms", func(t *testing.T) {
		expanded := lex.ExpandTerm("js")
		assert.Equal(t, WeightedTerm{Term: "js", Weight: 1.0}, expanded[0])

		terms := make(map[string]float64)
		for _, wt := range expanded {
			terms[wt.Term] = wt.Weight
		}
		assert.Equal(t, 0.8, terms["javascript"])
		assert.Equal(t, 0.8, terms["ecmascript"])
	})

	t.Run("term without synonyms", func(t *testing.T) {
		expanded := lex.ExpandTerm("rust")
		assert.Len(t, expanded, 1)
		assert.Equal(t, "rust", expanded[0].Term)
		assert.Equal(t, 1.0, expanded[0].Weight)
	})

	t.Run("multi-word synonyms expand to unigrams", func(t *testing.T) {
		expanded := lex.ExpandTerm("ml")
		terms := make(map[string]float64)
		for _, wt := range expanded {
			terms[wt.Term] = wt.Weight
		}
		assert.Equal(t, 1.0, terms["ml"])
		assert.Equal(t, 0.8, terms["machine"])
		assert.Equal(t, 0.8, terms["learning"])
		assert.Equal(t, 0.8, terms["machinelearning"])
		// Posting lists never hold space-joined terms.
		assert.NotContains(t, terms, "machine learning")
	})

	t.Run("dotted synonyms split without duplicating the term", func(t *testing.T) {
		expanded := lex.ExpandTerm("react")
		seen := make(map[string]int)
		for _, wt := range expanded {
			seen[wt.Term]++
		}
		assert.Equal(t, 1, seen["react"])
		assert.Equal(t, 1, seen["reactjs"])
		assert.Equal(t, 1, seen["js"])
		assert.NotContains(t, seen, "react.js")
	})
}

func TestLexicon_Vocabularies(t *testing.T) {
	lex := DefaultLexicon()

	assert.True(t, lex.IsSkill("kubernetes"))
	assert.False(t, lex.IsSkill("knitting"))
	assert.True(t, lex.IsTitle("developer"))
	assert.False(t, lex.IsTitle("kubernetes"))
	assert.True(t, lex.IsStopWord("the"))
	assert.True(t, lex.IsStopWord("skills"))
	assert.False(t, lex.IsStopWord("python"))
}

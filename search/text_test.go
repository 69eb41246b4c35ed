// Copyright 2025 TalentGrid
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talentgrid/talentsearch/storage"
)

func TestTokenizeAndFilter(t *testing.T) {
	lexicon := storage.DefaultLexicon()

	t.Run("lowercases and trims punctuation", func(t *testing.T) {
		tokens := tokenizeAndFilter("Python, AWS, (Docker)!", lexicon)
		assert.Equal(t, []string{"python", "aws", "docker"}, tokens)
	})

	t.Run("drops stop words", func(t *testing.T) {
		tokens := tokenizeAndFilter("looking for a senior engineer with kafka", lexicon)
		assert.Equal(t, []string{"senior", "engineer", "kafka"}, tokens)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, tokenizeAndFilter("", lexicon))
	})
}

func TestContainsAllQueryWords(t *testing.T) {
	lexicon := storage.DefaultLexicon()

	t.Run("all present", func(t *testing.T) {
		ok := containsAllQueryWords(
			"Skills: rust, kafka, kubernetes", "rust kafka", lexicon)
		assert.True(t, ok)
	})

	t.Run("one missing", func(t *testing.T) {
		ok := containsAllQueryWords(
			"Skills: rust, kubernetes", "rust kafka", lexicon)
		assert.False(t, ok)
	})

	t.Run("stop words in query are ignored", func(t *testing.T) {
		ok := containsAllQueryWords(
			"Role: Backend Developer. Description: built APIs in golang.",
			"a developer with golang", lexicon)
		assert.True(t, ok)
	})

	t.Run("query with only stop words never matches", func(t *testing.T) {
		ok := containsAllQueryWords("Skills: rust", "looking for", lexicon)
		assert.False(t, ok)
	})
}

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
	"github.com/talentgrid/talentsearch/storage"
)

// QueryClass labels the shape of a search query. Classification drives the
// score-blending weight policy.
type QueryClass int

const (
	// QueryClassSkills is a short list of technical terms, e.g. "python, aws".
	QueryClassSkills QueryClass = iota + 1
	// QueryClassJobDescription is longer prose with sentence structure.
	QueryClassJobDescription
	// QueryClassRole is a short noun phrase naming a position, e.g.
	// "senior flutter developer".
	QueryClassRole
)

// String returns the class label.
func (c QueryClass) String() string {
	switch c {
	case QueryClassSkills:
		return "skills"
	case QueryClassJobDescription:
		return "job_description"
	case QueryClassRole:
		return "role"
	default:
		return "unknown"
	}
}

// Weights is the per-signal blending policy for one query class.
type Weights struct {
	Vector  float64
	Keyword float64
}

// WeightsFor maps a query class to its blending weights. Skill lists lean on
// exact lexical matching; prose and role queries lean on semantic similarity.
func WeightsFor(class QueryClass) Weights {
	if class == QueryClassSkills {
		return Weights{Vector: 0.2, Keyword: 0.8}
	}
	return Weights{Vector: 0.6, Keyword: 0.4}
}

// Query is one classified, parsed search request. Ephemeral, constructed per
// request.
type Query struct {
	Text    string
	Class   QueryClass
	Filters *storage.FilterSet
}

// roleTokenLimit bounds how long a query can be and still read as a bare
// position name rather than a description.
const roleTokenLimit = 4

// skillsTokenLimit is the classifier threshold below which a verb-free list
// of technical terms is treated as a skills query.
const skillsTokenLimit = 12

// verbMarkers are tokens that indicate sentence structure. A query
// containing one reads as a job description, not a term list.
var verbMarkers = map[string]bool{
	"build": true, "building": true, "builds": true, "built": true,
	"develop": true, "developing": true, "develops": true, "developed": true,
	"design": true, "designing": true, "designs": true, "designed": true,
	"create": true, "creating": true, "creates": true, "created": true,
	"maintain": true, "maintaining": true, "maintains": true,
	"manage": true, "managing": true, "manages": true, "managed": true,
	"implement": true, "implementing": true, "implements": true,
	"write": true, "writing": true, "writes": true, "wrote": true,
	"deliver": true, "delivering": true, "delivers": true,
	"collaborate": true, "collaborating": true, "responsible": true,
	"join": true, "hiring": true, "wanted": true, "want": true,
}

// Classifier assigns a QueryClass with a deterministic heuristic over the
// lexicon's vocabularies. Ambiguous inputs default to job_description.
type Classifier struct {
	lexicon *storage.Lexicon
}

// NewClassifier creates a classifier over the given lexicon tables.
// A nil lexicon falls back to the built-in recruiting-domain tables.
func NewClassifier(lexicon *storage.Lexicon) *Classifier {
	if lexicon == nil {
		lexicon = storage.DefaultLexicon()
	}
	return &Classifier{lexicon: lexicon}
}

// Classify labels the query text.
//
// A short query naming a job title is a role search. A verb-free query of
// fewer than twelve meaningful tokens that mentions a known technical term,
// or is only one or two tokens long, is a skills list. Everything else is a
// job description.
func (c *Classifier) Classify(text string) QueryClass {
	tokens := tokenizeAndFilter(text, c.lexicon)
	if len(tokens) == 0 {
		return QueryClassJobDescription
	}

	hasVerb := false
	hasTitle := false
	hasSkill := false
	for _, token := range tokens {
		if verbMarkers[token] {
			hasVerb = true
		}
		if c.lexicon.IsTitle(token) {
			hasTitle = true
		}
		if c.lexicon.IsSkill(token) || len(c.lexicon.Synonyms[token]) > 0 {
			hasSkill = true
		}
	}

	if hasTitle && !hasVerb && len(tokens) <= roleTokenLimit {
		return QueryClassRole
	}
	if !hasTitle && !hasVerb && len(tokens) < skillsTokenLimit && (hasSkill || len(tokens) <= 2) {
		return QueryClassSkills
	}
	return QueryClassJobDescription
}

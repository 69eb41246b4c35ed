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


package ingestion

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/talentgrid/talentsearch/core"
)

// BuildChunks slices a candidate document into semantic chunks, one per
// non-empty field group. Experience, education, and project fields produce
// one chunk per entry so each position can match independently.
//
// Chunk ids are derived from candidate id, kind, and text: re-ingesting an
// unchanged document yields the same chunk ids.
// Returns core.ErrEmptyDocument when no field yields any text.
func BuildChunks(doc *core.CandidateDocument) ([]*core.Chunk, error) {
	if err := core.ValidateCandidateDocument(doc); err != nil {
		return nil, err
	}

	var chunks []*core.Chunk
	add := func(kind core.ChunkKind, ordinal int, text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		chunks = append(chunks, &core.Chunk{
			Id:          chunkID(doc.Id, kind, ordinal, text),
			CandidateId: doc.Id,
			Kind:        kind,
			Text:        text,
		})
	}

	var profile strings.Builder
	if doc.Title != "" {
		fmt.Fprintf(&profile, "Job Title: %s. ", doc.Title)
	}
	if doc.Summary != "" {
		fmt.Fprintf(&profile, "Summary: %s", doc.Summary)
	}
	add(core.ChunkKindProfile, 0, strings.TrimSpace(profile.String()))

	if len(doc.Skills) > 0 {
		add(core.ChunkKindSkills, 0, "Skills: "+strings.Join(doc.Skills, ", "))
	}

	for i, exp := range doc.Experience {
		text := fmt.Sprintf("Role: %s. Company: %s. Period: %s - %s. Description: %s",
			exp.Role, exp.Organization, exp.From, exp.To, exp.Description)
		add(core.ChunkKindExperience, i, text)
	}

	for i, edu := range doc.Education {
		text := fmt.Sprintf("Degree: %s. Field: %s. Institution: %s. Period: %s - %s",
			edu.Degree, edu.Field, edu.Institution, edu.From, edu.To)
		add(core.ChunkKindEducation, i, text)
	}

	if len(doc.Languages) > 0 {
		parts := make([]string, 0, len(doc.Languages))
		for _, lang := range doc.Languages {
			if lang.Name == "" {
				continue
			}
			if lang.Level != "" {
				parts = append(parts, fmt.Sprintf("%s (%s)", lang.Name, lang.Level))
			} else {
				parts = append(parts, lang.Name)
			}
		}
		if len(parts) > 0 {
			add(core.ChunkKindLanguages, 0, "Languages: "+strings.Join(parts, ", "))
		}
	}

	if len(doc.Certifications) > 0 {
		add(core.ChunkKindCertifications, 0, "Certifications: "+strings.Join(doc.Certifications, ", "))
	}

	for i, project := range doc.Projects {
		add(core.ChunkKindProjects, i, "Project: "+project)
	}

	if len(chunks) == 0 {
		return nil, fmt.Errorf("candidate %d: %w", doc.Id, core.ErrEmptyDocument)
	}
	return chunks, nil
}

// chunkID hashes the chunk's identity. The ordinal keeps two identical
// entries (say, duplicate project names) from colliding.
func chunkID(candidateID core.ID, kind core.ChunkKind, ordinal int, text string) core.ID {
	return core.IDFromContent(
		strconv.FormatUint(uint64(candidateID), 10) + "/" +
			kind.String() + "/" +
			strconv.Itoa(ordinal) + "/" +
			text)
}

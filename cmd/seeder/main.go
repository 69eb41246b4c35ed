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


package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/talentgrid/talentsearch"
	"github.com/talentgrid/talentsearch/core"
)

var profiles = []*core.CandidateDocument{
	{
		Name:            "Mara Jansen",
		Email:           "mara.jansen@example.com",
		Title:           "Senior Backend Engineer",
		Summary:         "Builds distributed payment systems with a focus on correctness and throughput.",
		Location:        "Amsterdam, Netherlands",
		ExperienceYears: 9,
		Skills:          []string{"go", "postgresql", "kafka", "kubernetes"},
		Experience: []core.ExperienceEntry{
			{Role: "Senior Backend Engineer", Organization: "PayFlow", From: "2019", To: "present",
				Description: "Led the ledger service rewrite, cutting settlement latency by half."},
			{Role: "Backend Engineer", Organization: "CloudRetail", From: "2015", To: "2019",
				Description: "Built order processing pipelines handling peak seasonal load."},
		},
		Education: []core.EducationEntry{
			{Degree: "MSc", Field: "Computer Science", Institution: "TU Delft", From: "2012", To: "2015"},
		},
		Languages: []core.LanguageSkill{{Name: "Dutch", Level: "native"}, {Name: "English", Level: "fluent"}},
	},
	{
		Name:            "Tobias Keller",
		Email:           "t.keller@example.com",
		Title:           "Mobile Developer",
		Summary:         "Ships cross-platform apps with Flutter and native Android.",
		Location:        "Berlin, Germany",
		ExperienceYears: 5,
		Skills:          []string{"flutter", "dart", "kotlin", "firebase"},
		Experience: []core.ExperienceEntry{
			{Role: "Mobile Developer", Organization: "UrbanMobility", From: "2021", To: "present",
				Description: "Maintains the rider app used by two million monthly users."},
		},
		Languages: []core.LanguageSkill{{Name: "German", Level: "native"}, {Name: "English", Level: "fluent"}},
	},
	{
		Name:            "Priya Raman",
		Email:           "priya.raman@example.com",
		Title:           "Machine Learning Engineer",
		Summary:         "Designs ranking models and feature pipelines for marketplace search.",
		Location:        "Bangalore, India",
		ExperienceYears: 6,
		Skills:          []string{"python", "pytorch", "spark", "aws"},
		Experience: []core.ExperienceEntry{
			{Role: "ML Engineer", Organization: "ShopSphere", From: "2020", To: "present",
				Description: "Owns the relevance models behind product search."},
		},
		Education: []core.EducationEntry{
			{Degree: "BTech", Field: "Computer Science", Institution: "IIT Madras", From: "2014", To: "2018"},
		},
		Languages:      []core.LanguageSkill{{Name: "Tamil", Level: "native"}, {Name: "English", Level: "fluent"}},
		Certifications: []string{"AWS Certified Machine Learning - Specialty"},
	},
	{
		Name:            "Sofia Marino",
		Email:           "sofia.marino@example.com",
		Title:           "Frontend Developer",
		Summary:         "Builds accessible design systems and data-heavy dashboards.",
		Location:        "Milan, Italy",
		ExperienceYears: 4,
		Skills:          []string{"react", "typescript", "css", "graphql"},
		Languages:       []core.LanguageSkill{{Name: "Italian", Level: "native"}, {Name: "English", Level: "fluent"}},
		Projects:        []string{"Open source chart library with 3k stars"},
	},
	{
		Name:            "Jakub Nowak",
		Email:           "j.nowak@example.com",
		Title:           "DevOps Engineer",
		Summary:         "Automates infrastructure and keeps deploys boring.",
		Location:        "Warsaw, Poland",
		ExperienceYears: 7,
		Skills:          []string{"terraform", "kubernetes", "aws", "ansible", "go"},
		Experience: []core.ExperienceEntry{
			{Role: "DevOps Engineer", Organization: "FinCore", From: "2018", To: "present",
				Description: "Runs the container platform for forty product teams."},
		},
		Languages:      []core.LanguageSkill{{Name: "Polish", Level: "native"}, {Name: "English", Level: "professional"}},
		Certifications: []string{"CKA", "AWS Solutions Architect Associate"},
	},
	{
		Name:            "Aisha Diallo",
		Email:           "aisha.diallo@example.com",
		Title:           "Data Engineer",
		Summary:         "Builds batch and streaming pipelines feeding the analytics warehouse.",
		Location:        "Paris, France",
		ExperienceYears: 5,
		Skills:          []string{"python", "airflow", "spark", "snowflake", "dbt"},
		Languages:       []core.LanguageSkill{{Name: "French", Level: "native"}, {Name: "English", Level: "fluent"}},
	},
	{
		Name:            "Lucas Oliveira",
		Email:           "lucas.oliveira@example.com",
		Title:           "Fullstack Developer",
		Summary:         "Comfortable across the stack, from Postgres schemas to React components.",
		Location:        "Lisbon, Portugal",
		ExperienceYears: 3,
		Skills:          []string{"javascript", "node.js", "react", "postgresql"},
		Languages:       []core.LanguageSkill{{Name: "Portuguese", Level: "native"}, {Name: "English", Level: "professional"}},
	},
	{
		Name:            "Elena Petrova",
		Email:           "elena.petrova@example.com",
		Title:           "Site Reliability Engineer",
		Summary:         "Keeps large fleets observable and error budgets honest.",
		Location:        "Sofia, Bulgaria",
		ExperienceYears: 8,
		Skills:          []string{"go", "prometheus", "kubernetes", "linux", "bash"},
		Experience: []core.ExperienceEntry{
			{Role: "SRE", Organization: "StreamWorks", From: "2017", To: "present",
				Description: "On-call lead for the video delivery platform."},
		},
		Languages: []core.LanguageSkill{{Name: "Bulgarian", Level: "native"}, {Name: "English", Level: "fluent"}},
	},
}

var seedFileName = flag.String("src", "", "JSON file of candidate documents to seed")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// documentsFromFile loads candidate documents from a JSON array file.
func documentsFromFile(filename string) ([]*core.CandidateDocument, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var docs []*core.CandidateDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func main() {
	db, err := talentsearch.NewDatabase("./talent_db")
	if err != nil {
		panic(err)
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		panic(err)
	}
	defer pipeline.Release()

	docs := profiles
	if seedFileName != nil && *seedFileName != "" {
		docs, err = documentsFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	}

	ctx := context.Background()
	for _, doc := range docs {
		if doc.Id == 0 {
			doc.Id = core.IDFromContent(uuid.NewString())
		}
		receipt, err := pipeline.UpsertCandidate(ctx, doc)
		if err != nil {
			panic(err)
		}
		fmt.Printf("seeded %s (%d): %d chunks, %d embedded\n",
			doc.Name, doc.Id, receipt.ChunkCount, receipt.EmbeddedCount)
	}
}

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


// Package search implements hybrid candidate retrieval.
//
// A query flows through four stages:
//
//  1. Classification. The Classifier inspects the query text and assigns it
//     one of three classes: a skills list, a role title, or a free-form job
//     description. The class selects the weight split between the two
//     retrieval signals.
//
//  2. Hybrid retrieval. The Engine runs the vector index and the keyword
//     index in parallel, min-max normalizes each signal's scores within its
//     batch, and blends them per the class weights. Results are deduplicated
//     by candidate, each keeping the chunk that contributed most as its
//     evidence. If one signal fails the other still serves; only a double
//     failure surfaces core.ErrRetrievalUnavailable.
//
//  3. Re-ranking. When the AI provider carries a cross-encoder, the head of
//     the blended list is re-scored against the query using each candidate's
//     evidence chunk text. Any re-ranking failure, including timeout, falls
//     back to the blended ordering.
//
//  4. Truncation. The final list is cut to the requested size.
//
// The Retriever ties the stages together behind a single Search call.
// SearchWithMonitor exposes per-stage hooks for tests and diagnostics.
package search

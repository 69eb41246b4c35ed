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


// Package cohere provides cross-encoder re-ranking using the Cohere v2
// rerank API.
//
// Re-ranking is an optional capability: the reranker only constructs when a
// rerank API key is configured, and callers recover from any rerank failure
// by keeping their own retrieval ordering.
package cohere

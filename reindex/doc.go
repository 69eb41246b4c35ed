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


// Package reindex rebuilds the derived indexes from the stored candidate
// documents, typically after an embedding model change.
//
// The corpus is walked in id order in fixed-size batches. Each batch is
// re-chunked, re-embedded in one batched call with retry and exponential
// backoff, and written back to both the vector and keyword indexes. Progress
// is persisted as a checkpoint after every batch so an interrupted run
// resumes after the last completed batch instead of starting over.
package reindex

// Package ingestion provides pipeline orchestration for candidate documents.
//
// The Pipeline type manages the ingestion workflow for candidates, including:
//   - Slicing documents into semantic chunks
//   - Generating chunk embeddings over a worker pool
//   - Replacing vector and keyword index entries atomically per candidate
//
// Embedding failures are isolated per chunk: a chunk whose embedding fails is
// still written to the keyword index, and one failing candidate never affects
// another. Writes for the same candidate serialize on striped locks.
package ingestion

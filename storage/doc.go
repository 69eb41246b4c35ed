// Package storage defines the index and repository interfaces of the
// retrieval engine together with the filter predicates and lexicon tables
// shared by implementations. The BadgerDB implementation lives in the
// badger subpackage.
package storage

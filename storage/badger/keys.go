package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/talentgrid/talentsearch/core"
)

// Key prefixes for different data types
const (
	candidateDocPrefix   = "candoc"
	candidateAttrPrefix  = "canatt"
	vectorEntryPrefix    = "vecent"
	keywordTermPrefix    = "kwterm"
	keywordCandPrefix    = "kwcand"
	keywordLengthPrefix  = "kwlen"
	keywordStatsKey      = "kwstats"
	checkpointKeyPrefix  = "chkpt"
)

// makeCandidateDocKey generates a key for a candidate document by ID.
// The ID is BigEndian so prefix iteration walks candidates in id order,
// which the reindexer relies on for batched resumption.
func makeCandidateDocKey(id core.ID) []byte {
	return appendBigEndianID([]byte(candidateDocPrefix+":"), id)
}

// makeCandidateAttrKey generates a key for a candidate's searchable attributes.
func makeCandidateAttrKey(id core.ID) []byte {
	return appendBigEndianID([]byte(candidateAttrPrefix+":"), id)
}

// makeVectorEntryKey generates a composite key for a vector index entry.
// Format: prefix:candidateID:chunkID, both BigEndian so one candidate's
// entries are contiguous and prefix-deletable.
func makeVectorEntryKey(candidateID, chunkID core.ID) []byte {
	buf := appendBigEndianID([]byte(vectorEntryPrefix+":"), candidateID)
	return appendBigEndianID(buf, chunkID)
}

// makeVectorCandidatePrefix generates the prefix covering all vector
// entries of one candidate.
func makeVectorCandidatePrefix(candidateID core.ID) []byte {
	return appendBigEndianID([]byte(vectorEntryPrefix+":"), candidateID)
}

// parseVectorEntryKey extracts the candidate and chunk IDs from a vector
// entry key.
func parseVectorEntryKey(key []byte) (candidateID, chunkID core.ID, ok bool) {
	prefixLen := len(vectorEntryPrefix) + 1
	if len(key) != prefixLen+16 {
		return 0, 0, false
	}
	candidateID = core.ID(binary.BigEndian.Uint64(key[prefixLen:]))
	chunkID = core.ID(binary.BigEndian.Uint64(key[prefixLen+8:]))
	return candidateID, chunkID, true
}

// makeKeywordTermKey generates a key for a term's posting list.
func makeKeywordTermKey(term string) []byte {
	return []byte(fmt.Sprintf("%s:%s", keywordTermPrefix, term))
}

// makeKeywordCandKey generates a key for a candidate's term registry.
func makeKeywordCandKey(id core.ID) []byte {
	return appendBigEndianID([]byte(keywordCandPrefix+":"), id)
}

// makeKeywordLengthKey generates a key for a candidate's chunk lengths.
func makeKeywordLengthKey(id core.ID) []byte {
	return appendBigEndianID([]byte(keywordLengthPrefix+":"), id)
}

// makeCheckpointKey generates a key for a named checkpoint.
func makeCheckpointKey(name string) []byte {
	return []byte(fmt.Sprintf("%s:%s", checkpointKeyPrefix, name))
}

// parseBigEndianIDKey extracts the trailing BigEndian ID from a key with
// the given prefix.
func parseBigEndianIDKey(key []byte, prefix string) (core.ID, bool) {
	prefixLen := len(prefix) + 1
	if len(key) != prefixLen+8 {
		return 0, false
	}
	return core.ID(binary.BigEndian.Uint64(key[prefixLen:])), true
}

func appendBigEndianID(buf []byte, id core.ID) []byte {
	out := make([]byte, len(buf)+8)
	offset := copy(out, buf)
	binary.BigEndian.PutUint64(out[offset:], uint64(id))
	return out
}

package cache

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// AdministrationKey is the cache key of a stored administration record
func AdministrationKey(id string) string {
	return "administration:" + id
}

// ResponseKey derives a stable key for a (respondent, prompt) pair. The parts
// are length-delimited so that no two distinct pairs share a digest input.
func ResponseKey(respondent, prompt string) string {
	h := blake3.New()
	writePart(h, respondent)
	writePart(h, prompt)
	return "response:" + hex.EncodeToString(h.Sum(nil))
}

func writePart(h *blake3.Hasher, part string) {
	var size [8]byte
	binary.LittleEndian.PutUint64(size[:], uint64(len(part)))
	_, _ = h.Write(size[:])
	_, _ = h.Write([]byte(part))
}

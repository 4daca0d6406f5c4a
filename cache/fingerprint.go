package cache

import (
	"fmt"
	"hash/fnv"
)

// Fingerprint derives a cache key from a request's semantic inputs: the text
// content, the literal model identifier, and task-discriminating fields
// (source and target language for translation; detected language and level
// for correction). Input order matters. FNV-1a is deliberately lightweight
// and non-cryptographic; collisions are an accepted limitation.
func Fingerprint(model, text string, fields ...string) string {
	h := fnv.New64a()
	// NUL separators keep adjacent inputs from running together
	// ("ab"+"c" vs "a"+"bc").
	_, _ = h.Write([]byte(text))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(model))
	for _, f := range fields {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(f))
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

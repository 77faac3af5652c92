package graph

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps a label to its stable identity key. It must be a pure
// function of the label's value: equal labels always produce the same key.
// Distinct labels must not collide within one graph's active label set;
// under a collision the later Add silently replaces the earlier node. That
// precondition is the caller's to uphold, not something the graph detects.
type Hasher[T any] func(label T) uint64

// defaultHasher keys a label by the xxhash of its fmt representation.
func defaultHasher[T comparable]() Hasher[T] {
	return func(label T) uint64 {
		return xxhash.Sum64String(fmt.Sprint(label))
	}
}

// StringHasher hashes string labels directly, without the fmt round trip.
func StringHasher(label string) uint64 {
	return xxhash.Sum64String(label)
}

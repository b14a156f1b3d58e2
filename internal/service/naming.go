package service

import (
	"math/rand"
	"strconv"
	"sync"
)

const (
	packageNamePrefix = "PKG"
	maxPackageSuffix  = 1000
)

// Namer generates candidate package names.
type Namer interface {
	Next() string
}

// RandomNamer yields "PKG" followed by a random integer in [1, 1000).
type RandomNamer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomNamer creates a RandomNamer seeded with seed.
func NewRandomNamer(seed int64) *RandomNamer {
	return &RandomNamer{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a random package name.
func (n *RandomNamer) Next() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return packageNamePrefix + strconv.Itoa(1+n.rng.Intn(maxPackageSuffix-1))
}

// SequenceNamer yields PKG1, PKG2, ... in order.
type SequenceNamer struct {
	mu   sync.Mutex
	next int
}

// NewSequenceNamer creates a SequenceNamer starting at PKG1.
func NewSequenceNamer() *SequenceNamer {
	return &SequenceNamer{next: 1}
}

// Next returns the next name in the sequence.
func (n *SequenceNamer) Next() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	name := packageNamePrefix + strconv.Itoa(n.next)
	n.next++
	return name
}

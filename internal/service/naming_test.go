package service

import (
	"strconv"
	"strings"
	"testing"
)

func TestRandomNamer_Range(t *testing.T) {
	t.Parallel()

	n := NewRandomNamer(42)
	for i := 0; i < 5000; i++ {
		name := n.Next()
		if !strings.HasPrefix(name, "PKG") {
			t.Fatalf("name %q missing prefix", name)
		}
		num, err := strconv.Atoi(strings.TrimPrefix(name, "PKG"))
		if err != nil {
			t.Fatalf("name %q has non-numeric suffix", name)
		}
		if num < 1 || num >= 1000 {
			t.Fatalf("suffix %d out of [1,1000)", num)
		}
	}
}

func TestRandomNamer_SeedIsReproducible(t *testing.T) {
	t.Parallel()

	a, b := NewRandomNamer(7), NewRandomNamer(7)
	for i := 0; i < 20; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d differs: %s vs %s", i, x, y)
		}
	}
}

func TestSequenceNamer(t *testing.T) {
	t.Parallel()

	n := NewSequenceNamer()
	for _, want := range []string{"PKG1", "PKG2", "PKG3"} {
		if got := n.Next(); got != want {
			t.Errorf("Next() = %s, want %s", got, want)
		}
	}
}

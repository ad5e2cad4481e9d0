package engine

import (
	"math/rand"
	"sort"
	"testing"
)

// TestShuffleCopyPermutation: output is a permutation, input untouched.
func TestShuffleCopyPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	orig := make([]int, len(in))
	copy(orig, in)
	for _, passes := range []int{1, 3, 5} {
		out := shuffleCopy(r, in, passes)
		for i := range in {
			if in[i] != orig[i] {
				t.Fatalf("passes=%d: input mutated at %d", passes, i)
			}
		}
		s := make([]int, len(out))
		copy(s, out)
		sort.Ints(s)
		for i := range s {
			if s[i] != i+1 {
				t.Fatalf("passes=%d: not a permutation: %v", passes, out)
			}
		}
	}
}

// TestShuffleCopyDegenerate: 0 and 1 elements come back unchanged.
func TestShuffleCopyDegenerate(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	if out := shuffleCopy(r, []rune{}, 3); len(out) != 0 {
		t.Errorf("empty input: got %v", out)
	}
	if out := shuffleCopy(r, []rune{'x'}, 3); len(out) != 1 || out[0] != 'x' {
		t.Errorf("single element: got %v", out)
	}
}

// TestShuffleCopyZeroPasses: pass count is clamped to at least one.
func TestShuffleCopyZeroPasses(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	in := []int{1, 2, 3, 4}
	out := shuffleCopy(r, in, 0)
	s := make([]int, len(out))
	copy(s, out)
	sort.Ints(s)
	for i := range s {
		if s[i] != i+1 {
			t.Fatalf("not a permutation: %v", out)
		}
	}
}

// TestInitRNGDeterministic: seeded mode reproduces the stream; random mode
// writes the generated seed back for later reproduction.
func TestInitRNGDeterministic(t *testing.T) {
	seed := int64(99)
	a := InitRNG(&seed, true)
	seed2 := int64(99)
	b := InitRNG(&seed2, true)
	for i := 0; i < 10; i++ {
		if a.Int63() != b.Int63() {
			t.Fatal("seeded RNGs diverged")
		}
	}

	var got int64
	r := InitRNG(&got, false)
	if got == 0 {
		t.Error("random mode should write the generated seed back")
	}
	replay := InitRNG(&got, true)
	if r.Int63() != replay.Int63() {
		t.Error("written-back seed should reproduce the stream")
	}
}

package zopgz

import (
	"bytes"
	"math/rand"
	"testing"
)

// validateMatches checks the §fetch contract for candidates at position p.
func validateMatches(t *testing.T, data []byte, p int, cands []match) {
	t.Helper()

	prevLen := minMatch - 1
	for _, m := range cands {
		length, dist := int(m.length), int(m.dist)

		if length <= prevLen {
			t.Fatalf("pos %d: lengths not strictly increasing: %d after %d", p, length, prevLen)
		}
		prevLen = length

		if length < minMatch || length > maxMatch {
			t.Fatalf("pos %d: length %d out of range", p, length)
		}
		if dist < 1 || dist > p || dist > maxDistance {
			t.Fatalf("pos %d: distance %d out of range", p, dist)
		}
		if p+length > len(data) {
			t.Fatalf("pos %d: match of length %d overruns input", p, length)
		}
		if !bytes.Equal(data[p-dist:p-dist+length], data[p:p+length]) {
			t.Fatalf("pos %d: match (len %d, dist %d) does not reproduce input", p, length, dist)
		}
	}
}

func matchFinderInputs() []struct {
	name string
	data []byte
} {
	rng := rand.New(rand.NewSource(7))
	noisy := make([]byte, 8192)
	for i := range noisy {
		noisy[i] = byte(rng.Intn(8)) // small alphabet, many matches
	}

	return []struct {
		name string
		data []byte
	}{
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abcdef"), 600)},
		{name: "long-run", data: bytes.Repeat([]byte{0x55}, 4096)},
		{name: "small-alphabet-noise", data: noisy},
		{name: "short-text", data: []byte("the quick brown fox jumps over the lazy dog")},
	}
}

func TestMatchFinder_FetchContract(t *testing.T) {
	for _, in := range matchFinderInputs() {
		t.Run(in.name, func(t *testing.T) {
			mf := acquireMatchFinder()
			defer releaseMatchFinder(mf)
			mf.MaxChain = 256
			mf.reset(in.data)

			var cands []match
			for p := 0; p < len(in.data); p++ {
				cands = mf.fetch(cands[:0])
				validateMatches(t, in.data, p, cands)
			}
		})
	}
}

func TestMatchFinder_FindsObviousMatch(t *testing.T) {
	data := []byte("abcabcabcabc")
	mf := acquireMatchFinder()
	defer releaseMatchFinder(mf)
	mf.MaxChain = 64
	mf.reset(data)

	var cands []match
	for p := 0; p < 3; p++ {
		cands = mf.fetch(cands[:0])
		if len(cands) != 0 {
			t.Fatalf("pos %d: unexpected candidates %v", p, cands)
		}
	}

	cands = mf.fetch(cands[:0])
	if len(cands) == 0 {
		t.Fatal("no candidates at position 3")
	}
	last := cands[len(cands)-1]
	if last.length != 9 || last.dist != 3 {
		t.Fatalf("best candidate = (len %d, dist %d), want (9, 3)", last.length, last.dist)
	}
}

func TestMatchFinder_SkipKeepsTreeConsistent(t *testing.T) {
	data := bytes.Repeat([]byte("abcabx"), 500)
	mf := acquireMatchFinder()
	defer releaseMatchFinder(mf)
	mf.MaxChain = 128
	mf.reset(data)

	var cands []match
	p := 0
	for p < len(data) {
		cands = mf.fetch(cands[:0])
		validateMatches(t, data, p, cands)
		if len(cands) > 0 && p%3 == 0 {
			adv := int(cands[len(cands)-1].length)
			mf.skip(adv - 1)
			p += adv
			continue
		}
		p++
	}
}

func TestMatchFinder_WindowBound(t *testing.T) {
	// A repeated prefix re-appears beyond the window; no candidate may
	// reach back that far.
	pattern := []byte("0123456789abcdef")
	data := make([]byte, 0, windowSize+4096)
	data = append(data, pattern...)
	data = append(data, bytes.Repeat([]byte{0xEE}, windowSize)...)
	data = append(data, pattern...)

	mf := acquireMatchFinder()
	defer releaseMatchFinder(mf)
	mf.MaxChain = 1024
	mf.reset(data)

	var cands []match
	for p := 0; p < len(data); p++ {
		cands = mf.fetch(cands[:0])
		for _, m := range cands {
			if int(m.dist) >= windowSize {
				t.Fatalf("pos %d: distance %d exceeds the window", p, m.dist)
			}
		}
	}
}

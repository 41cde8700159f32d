// SPDX-License-Identifier: Apache-2.0
// Source: github.com/woozymasta/zopgz

package zopgz

import (
	"math"
	"sort"
)

// Block splitting: greedy recursive bisection over the token stream. Each
// candidate block is priced either exactly (its best encoding incl. header)
// or by a Shannon-entropy estimate for the cheap levels.

// splitProbes is how many interior points one narrowing round samples.
const splitProbes = 9

// minSplitTokens is the smallest block the splitter will cut further.
const minSplitTokens = 16

// entropyHeaderBits approximates a dynamic header for the estimate mode.
const entropyHeaderBits = 400

type blockSplitter struct {
	st         *tokenStream
	exact      bool
	tryStatic  bool
	maxBlocks  int
	nblocks    int
	bytePrefix []int // bytePrefix[i] = input bytes covered by tokens[:i]
	bounds     []int
}

// splitTokens partitions the stream and returns sorted block boundaries
// (token indices), always starting at 0 and ending at len(tokens).
func splitTokens(st *tokenStream, exact, tryStatic bool, maxBlocks int) []int {
	n := len(st.tokens)
	bounds := []int{0, n}
	if maxBlocks <= 1 || n < 2*minSplitTokens {
		return bounds
	}

	sp := &blockSplitter{
		st:         st,
		exact:      exact,
		tryStatic:  tryStatic,
		maxBlocks:  maxBlocks,
		nblocks:    1,
		bytePrefix: make([]int, n+1),
		bounds:     bounds,
	}
	for i := 0; i < n; i++ {
		sp.bytePrefix[i+1] = sp.bytePrefix[i] + st.tokenBytes(i)
	}

	sp.recurse(0, n)
	sort.Ints(sp.bounds)
	return sp.bounds
}

// cost prices tokens [lo..hi) as one block.
func (sp *blockSplitter) cost(lo, hi int) int {
	var h histogram
	sp.st.count(lo, hi, &h)
	if sp.exact {
		plan := planBlock(&h, sp.bytePrefix[hi]-sp.bytePrefix[lo], sp.tryStatic)
		return plan.bits
	}
	return entropyHeaderBits + entropyBits(&h)
}

// entropyBits is the Shannon lower bound on the payload plus extra bits.
func entropyBits(h *histogram) int {
	bits := 0.0

	sum := 0
	for _, f := range h.litLen {
		sum += f
	}
	if sum > 0 {
		log2sum := math.Log2(float64(sum))
		for s, f := range h.litLen {
			if f == 0 {
				continue
			}
			bits += float64(f) * (log2sum - math.Log2(float64(f)))
			if s > endOfBlock {
				bits += float64(f) * float64(llSymbolExtra[s-257])
			}
		}
	}

	sum = 0
	for _, f := range h.dist {
		sum += f
	}
	if sum > 0 {
		log2sum := math.Log2(float64(sum))
		for s, f := range h.dist {
			if f == 0 {
				continue
			}
			bits += float64(f) * (log2sum - math.Log2(float64(f)) + float64(distSymbolExtra(s)))
		}
	}

	return int(math.Ceil(bits))
}

// findSplit locates the interior point minimizing the two-block cost by
// sampling evenly spaced probes and narrowing around the best one.
func (sp *blockSplitter) findSplit(lo, hi int) (int, int) {
	start, end := lo+1, hi-1
	if end < start {
		return -1, 0
	}

	two := func(s int) int { return sp.cost(lo, s) + sp.cost(s, hi) }

	for end-start > splitProbes {
		step := (end - start) / (splitProbes + 1)
		bestProbe := start + step
		bestCost := two(bestProbe)
		for i := 2; i <= splitProbes; i++ {
			s := start + i*step
			if c := two(s); c < bestCost {
				bestProbe = s
				bestCost = c
			}
		}
		start = max(start, bestProbe-step)
		end = min(end, bestProbe+step)
	}

	best := start
	bestCost := two(start)
	for s := start + 1; s <= end; s++ {
		if c := two(s); c < bestCost {
			best = s
			bestCost = c
		}
	}
	return best, bestCost
}

// recurse splits [lo..hi) while a cut saves at least one byte and the block
// budget holds.
func (sp *blockSplitter) recurse(lo, hi int) {
	if sp.nblocks >= sp.maxBlocks || hi-lo < minSplitTokens {
		return
	}

	s, splitCost := sp.findSplit(lo, hi)
	if s < 0 || splitCost+8 > sp.cost(lo, hi) {
		return
	}

	sp.nblocks++
	sp.bounds = append(sp.bounds, s)
	sp.recurse(lo, s)
	sp.recurse(s, hi)
}

// SPDX-License-Identifier: Apache-2.0
// Source: github.com/woozymasta/zopgz

package zopgz

// Iterative optimization: alternate LZ77 encoding and statistics
// re-estimation, keeping the smallest observed stream.

// defaultSeed drives the perturbation when the caller leaves Seed zero.
const defaultSeed = 0x9a1b3c5d7e9f0123

// optimizeTokens runs the encode/re-estimate loop and returns the best
// observed token stream for the input.
func optimizeTokens(data []byte, p levelParams, iterations int, seed uint64, tryStatic bool) *tokenStream {
	mf := acquireMatchFinder()
	defer releaseMatchFinder(mf)

	if seed == 0 {
		seed = defaultSeed
	}

	enc := &lzEncoder{data: data, mf: mf, maxChain: p.maxChain, goodLen: p.goodLen}
	var cm costModel
	cm.setFixed()
	enc.cm = &cm

	best := &tokenStream{}
	cur := &tokenStream{}
	var h histogram

	mf.reset(data)
	enc.encode(cur)
	bestBits := streamBits(cur, tryStatic)
	best.copyFrom(cur)

	lastImproved := 0
	for k := 1; k <= iterations; k++ {
		h.reset()
		cur.count(0, len(cur.tokens), &h)
		if k-lastImproved >= 2 {
			perturb(&h, seed, k)
		}
		cm.setLearned(&h)

		mf.reset(data)
		enc.encode(cur)

		if b := streamBits(cur, tryStatic); b < bestBits {
			bestBits = b
			best.copyFrom(cur)
			lastImproved = k
		}
		if k-lastImproved >= p.stagnation {
			break
		}
	}

	return best
}

// streamBits prices the whole stream as a single block, header included.
func streamBits(st *tokenStream, tryStatic bool) int {
	var h histogram
	st.count(0, len(st.tokens), &h)
	return planBlock(&h, st.nbytes, tryStatic).bits
}

func (st *tokenStream) copyFrom(src *tokenStream) {
	st.tokens = append(st.tokens[:0], src.tokens...)
	st.nbytes = src.nbytes
}

// perturb adds small deterministic increments to low-count symbols so a
// stalled iteration can escape its local minimum. The sequence depends only
// on (seed, iteration index).
func perturb(h *histogram, seed uint64, k int) {
	x := seed ^ (uint64(k) * 0x9e3779b97f4a7c15)
	next := func() uint64 {
		x = x*6364136223846793005 + 1442695040888963407
		return x >> 33
	}

	for i, c := range h.litLen {
		if c > 0 && c <= 4 && next()&3 == 0 {
			h.litLen[i] = c + 1
		}
	}
	for i, c := range h.dist {
		if c > 0 && c <= 4 && next()&3 == 0 {
			h.dist[i] = c + 1
		}
	}
}

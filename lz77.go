// SPDX-License-Identifier: Apache-2.0
// Source: github.com/woozymasta/zopgz

package zopgz

// LZ77 encoding pass: convert the input into a token stream under a cost
// model, with a one-step lazy lookahead.

// lzEncoder holds the per-pass state shared between positions.
type lzEncoder struct {
	data     []byte
	cm       *costModel
	mf       *matchFinder
	maxChain int
	goodLen  int      // match length at or above which lookahead effort is quartered
	litCost  []uint32 // prefix sums: litCost[i] = bits to emit data[:i] as literals
}

// prepare recomputes the literal-cost prefix sums for the current model.
func (e *lzEncoder) prepare() {
	if cap(e.litCost) < len(e.data)+1 {
		e.litCost = make([]uint32, len(e.data)+1)
	}
	e.litCost = e.litCost[:len(e.data)+1]
	e.litCost[0] = 0
	for i, b := range e.data {
		e.litCost[i+1] = e.litCost[i] + uint32(e.cm.literalCost(b))
	}
}

// gain returns how many bits the match saves over emitting its span as
// literals. Positive gain means the match is worth taking.
func (e *lzEncoder) gain(p int, m match) int {
	span := int(e.litCost[p+int(m.length)] - e.litCost[p])
	return span - e.cm.matchCost(int(m.length), int(m.dist))
}

// bestOf picks the candidate with the highest gain at position p.
func (e *lzEncoder) bestOf(p int, cands []match) (match, int) {
	var best match
	bestGain := 0
	for _, m := range cands {
		if g := e.gain(p, m); g > bestGain {
			best = m
			bestGain = g
		}
	}
	return best, bestGain
}

// encode runs one pass over the input. The match finder must be freshly
// reset; the resulting stream decodes exactly to e.data.
func (e *lzEncoder) encode(st *tokenStream) {
	st.reset()
	n := len(e.data)
	if n == 0 {
		return
	}
	e.prepare()

	var cands, nextCands []match
	p := 0
	e.mf.MaxChain = e.maxChain
	cands = e.mf.fetch(cands[:0])

	for p < n {
		cur, curGain := e.bestOf(p, cands)

		if curGain <= 0 {
			st.addLiteral(e.data[p])
			p++
			if p < n {
				cands = e.mf.fetch(cands[:0])
			}
			continue
		}

		// One-step lookahead: a literal now plus a better match at p+1 can
		// beat taking the current match. A long current match is rarely
		// beaten, so its lookahead gets a quarter of the effort.
		if e.goodLen > 0 && int(cur.length) >= e.goodLen {
			e.mf.MaxChain = e.maxChain >> 2
		}
		nextCands = e.mf.fetch(nextCands[:0])
		e.mf.MaxChain = e.maxChain
		_, nextGain := e.bestOf(p+1, nextCands)

		if nextGain > curGain {
			st.addLiteral(e.data[p])
			p++
			cands, nextCands = nextCands, cands
			continue
		}

		st.addMatch(int(cur.length), int(cur.dist))
		// Position p+1 was consumed by the lookahead fetch; walk the
		// remaining covered positions through the tree.
		e.mf.skip(int(cur.length) - 2)
		p += int(cur.length)
		if p < n {
			cands = e.mf.fetch(cands[:0])
		}
	}
}

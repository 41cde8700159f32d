// SPDX-License-Identifier: Apache-2.0
// Source: github.com/woozymasta/zopgz

package zopgz

import "sort"

// Length-limited Huffman code lengths via boundary package-merge, after
// "A Fast and Space-Economical Algorithm for Length-Limited Coding"
// (Katajainen, Moffat, Turpin).

// chainNode is one chain in the package-merge arena. Nodes are addressed by
// index into the arena slice; tail is -1 for the end of a chain.
type chainNode struct {
	weight int   // total weight (symbol count) of this chain
	count  int32 // number of leaves in all chains before and including this one
	tail   int32 // previous node of this chain, or -1
}

// hLeaf is one used symbol before sorting.
type hLeaf struct {
	weight int
	symbol int
}

// maxPoolNodes bounds the arena: 2 * maxbits(15) * numsymbols(286).
const maxPoolNodes = 2 * maxCodeBits * numLitLenSymbols

// pmSolver holds the arena and the per-list lookahead pairs for one
// construction. The arena capacity is exact, so node indices stay stable.
type pmSolver struct {
	pool   []chainNode
	leaves []hLeaf
	m      int
	lists  [maxCodeBits][2]int32
}

func (s *pmSolver) alloc(weight int, count int32, tail int32) int32 {
	s.pool = append(s.pool, chainNode{weight: weight, count: count, tail: tail})
	return int32(len(s.pool) - 1)
}

// lengthLimitedCodeLengths fills lengths with per-symbol bit widths for the
// given frequencies so that the code is prefix-free, no width exceeds
// maxBits, and the expected length is minimal. lengths must have the same
// size as freqs; unused symbols get width 0.
func lengthLimitedCodeLengths(freqs []int, maxBits int, lengths []uint8) {
	for i := range lengths {
		lengths[i] = 0
	}

	leaves := make([]hLeaf, 0, len(freqs))
	for i, f := range freqs {
		if f > 0 {
			leaves = append(leaves, hLeaf{weight: f, symbol: i})
		}
	}

	m := len(leaves)
	switch m {
	case 0:
		return
	case 1:
		lengths[leaves[0].symbol] = 1
		return
	case 2:
		lengths[leaves[0].symbol] = 1
		lengths[leaves[1].symbol] = 1
		return
	}

	sort.Slice(leaves, func(a, b int) bool {
		if leaves[a].weight != leaves[b].weight {
			return leaves[a].weight < leaves[b].weight
		}
		return leaves[a].symbol < leaves[b].symbol
	})

	if m-1 < maxBits {
		maxBits = m - 1
	}

	s := pmSolver{pool: make([]chainNode, 0, maxPoolNodes), leaves: leaves, m: m}

	// Each list tracks only its two lookahead chains; every list starts with
	// the two lightest leaves.
	node0 := s.alloc(leaves[0].weight, 1, -1)
	node1 := s.alloc(leaves[1].weight, 2, -1)
	for i := 0; i < maxBits; i++ {
		s.lists[i][0] = node0
		s.lists[i][1] = node1
	}

	// The last list needs 2m-2 active chains; two exist already and the
	// final one is bound without a fresh lookahead pair, so 2m-4 boundary
	// runs remain of which the last is boundaryFinal.
	numRuns := 2*m - 4
	for run := 0; run < numRuns-1; run++ {
		s.boundaryRun(maxBits - 1)
	}
	s.boundaryFinal(maxBits - 1)

	s.extract(s.lists[maxBits-1][1], lengths)
}

// boundaryRun creates one new chain in the given list, satisfying lookahead
// demands on lower lists iteratively with an explicit work stack.
func (s *pmSolver) boundaryRun(last int) {
	var stack [2 * maxCodeBits]int
	sp := 0
	stack[0] = last

	for {
		index := stack[sp]
		lastCount := s.pool[s.lists[index][1]].count
		oldChain := s.lists[index][1]
		newChain := s.alloc(0, 0, -1)
		s.lists[index][0] = oldChain
		s.lists[index][1] = newChain

		sum := s.pool[s.lists[index-1][0]].weight + s.pool[s.lists[index-1][1]].weight
		if int(lastCount) < s.m && sum > s.leaves[lastCount].weight {
			// Next leaf is cheaper than packaging the previous list.
			s.pool[newChain] = chainNode{
				weight: s.leaves[lastCount].weight,
				count:  lastCount + 1,
				tail:   s.pool[oldChain].tail,
			}
		} else {
			s.pool[newChain] = chainNode{weight: sum, count: lastCount, tail: s.lists[index-1][1]}
			// Used up the previous list's lookaheads; demand two more.
			if index == 1 {
				// List 0 holds only leaves, refill it directly.
				if c := int(s.pool[s.lists[0][1]].count); c < s.m {
					s.lists[0][0] = s.lists[0][1]
					s.lists[0][1] = s.alloc(s.leaves[c].weight, int32(c)+1, -1)
					if c+1 < s.m {
						s.lists[0][0] = s.lists[0][1]
						s.lists[0][1] = s.alloc(s.leaves[c+1].weight, int32(c)+2, -1)
					}
				}
			} else {
				stack[sp] = index - 1
				stack[sp+1] = index - 1
				sp += 2
			}
		}

		sp--
		if sp < 0 {
			return
		}
	}
}

// boundaryFinal performs the last boundary step on the last list. Only the
// chain tail matters for extraction, so no fresh lookahead pair is demanded
// in the lists below.
func (s *pmSolver) boundaryFinal(index int) {
	lastCount := s.pool[s.lists[index][1]].count
	sum := s.pool[s.lists[index-1][0]].weight + s.pool[s.lists[index-1][1]].weight

	if int(lastCount) < s.m && sum > s.leaves[lastCount].weight {
		oldTail := s.pool[s.lists[index][1]].tail
		s.lists[index][1] = s.alloc(0, lastCount+1, oldTail)
	} else {
		s.pool[s.lists[index][1]].tail = s.lists[index-1][1]
	}
}

// extract walks the final chain: the count at depth d from the head names how
// many of the lightest leaves get a code length of at least d.
func (s *pmSolver) extract(chain int32, lengths []uint8) {
	var counts [maxCodeBits + 1]int32
	end := maxCodeBits + 1
	for node := chain; node != -1; node = s.pool[node].tail {
		end--
		counts[end] = s.pool[node].count
	}

	ptr := maxCodeBits
	value := uint8(1)
	val := counts[maxCodeBits]
	for ptr >= end {
		for ; val > counts[ptr-1]; val-- {
			lengths[s.leaves[val-1].symbol] = value
		}
		ptr--
		value++
	}
}

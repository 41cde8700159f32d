package zopgz

// matchFinder locates back-references with a binary search tree per hash
// bucket (in LZMA sources this layout is called BT3). A 3-byte hash selects
// the tree root; left and right child arrays are indexed by position modulo
// the window size and keyed lexicographically by the suffix starting at each
// position. Stored link values are position+1 so that zero means empty and
// the arrays can be cleared cheaply.

const (
	// finder link arrays cover one window of positions.
	finderNodes = windowSize
)

// match is one back-reference candidate. The window check keeps distances
// strictly below the window size, so dist always fits 1..32767.
type match struct {
	length uint16
	dist   uint16
}

// matchFinder fields: input view, advancing cursor and the hash/tree state.
type matchFinder struct {
	data []byte
	pos  int32 // next position to process

	// MaxChain caps tree nodes visited per fetch.
	MaxChain int

	hash  [hashSize]int32    // bucket roots, position+1, 0 = empty
	left  [finderNodes]int32 // left children, position+1, 0 = none
	right [finderNodes]int32 // right children, position+1, 0 = none
}

// hash3 returns the hash key for a 3-byte prefix.
func hash3(data []byte) uint32 {
	key := uint32(data[0])
	key = (key << 6) ^ uint32(data[1])
	key = (key << 6) ^ uint32(data[2])
	key *= 0x9e3b
	return (key >> 2) & hashMask
}

// reset binds the finder to a new input buffer and clears all state.
func (mf *matchFinder) reset(data []byte) {
	mf.data = data
	mf.pos = 0
	clear(mf.hash[:])
	clear(mf.left[:])
	clear(mf.right[:])
}

// fetch produces the candidate matches for the current position, appends
// them to dst ordered by strictly increasing length, inserts the position
// into the tree and advances the cursor by one.
func (mf *matchFinder) fetch(dst []match) []match {
	p := int(mf.pos)
	mf.pos++

	lenLimit := len(mf.data) - p
	if lenLimit > maxMatch {
		lenLimit = maxMatch
	}
	if lenLimit < minMatch {
		// Too close to the end for a hashable prefix; the position never
		// enters the tree and stale links are cut by the window check.
		return dst
	}

	data := mf.data
	h := hash3(data[p:])
	cur := int(mf.hash[h]) - 1
	mf.hash[h] = int32(p + 1)

	cyc := p & windowMask
	ptr0 := &mf.right[cyc]
	ptr1 := &mf.left[cyc]
	len0, len1 := 0, 0
	best := minMatch - 1

	for chain := mf.MaxChain; ; chain-- {
		if cur < 0 || p-cur >= windowSize || chain <= 0 {
			*ptr0, *ptr1 = 0, 0
			break
		}

		mcyc := cur & windowMask
		l := min(len0, len1)
		if data[cur+l] == data[p+l] {
			l++
			for l < lenLimit && data[cur+l] == data[p+l] {
				l++
			}
			if l > best {
				dst = append(dst, match{length: uint16(l), dist: uint16(p - cur)})
				best = l
				if l == lenLimit {
					// Full-length match: the node is replaced by the new
					// position, which adopts its children.
					*ptr1 = mf.left[mcyc]
					*ptr0 = mf.right[mcyc]
					break
				}
			}
		}

		if data[cur+l] < data[p+l] {
			*ptr1 = int32(cur + 1)
			ptr1 = &mf.right[mcyc]
			cur = int(*ptr1) - 1
			len1 = l
		} else {
			*ptr0 = int32(cur + 1)
			ptr0 = &mf.left[mcyc]
			cur = int(*ptr0) - 1
			len0 = l
		}
	}

	return dst
}

// skip advances over n positions, maintaining the tree without collecting
// candidates.
func (mf *matchFinder) skip(n int) {
	for ; n > 0; n-- {
		p := int(mf.pos)
		mf.pos++

		lenLimit := len(mf.data) - p
		if lenLimit > maxMatch {
			lenLimit = maxMatch
		}
		if lenLimit < minMatch {
			continue
		}

		data := mf.data
		h := hash3(data[p:])
		cur := int(mf.hash[h]) - 1
		mf.hash[h] = int32(p + 1)

		cyc := p & windowMask
		ptr0 := &mf.right[cyc]
		ptr1 := &mf.left[cyc]
		len0, len1 := 0, 0

		for chain := mf.MaxChain; ; chain-- {
			if cur < 0 || p-cur >= windowSize || chain <= 0 {
				*ptr0, *ptr1 = 0, 0
				break
			}

			mcyc := cur & windowMask
			l := min(len0, len1)
			if data[cur+l] == data[p+l] {
				l++
				for l < lenLimit && data[cur+l] == data[p+l] {
					l++
				}
				if l == lenLimit {
					*ptr1 = mf.left[mcyc]
					*ptr0 = mf.right[mcyc]
					break
				}
			}

			if data[cur+l] < data[p+l] {
				*ptr1 = int32(cur + 1)
				ptr1 = &mf.right[mcyc]
				cur = int(*ptr1) - 1
				len1 = l
			} else {
				*ptr0 = int32(cur + 1)
				ptr0 = &mf.left[mcyc]
				cur = int(*ptr0) - 1
				len0 = l
			}
		}
	}
}

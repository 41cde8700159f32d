// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zopgz

package zopgz

// Compress compresses src with the iterative DEFLATE encoder and frames the
// result per opts.Container. opts may be nil (gzip, level 9). Levels outside
// 1–9 are clamped; level 1 uses the weakest iterative setting.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if opts.Container < Gzip || opts.Container > Raw {
		return nil, ErrBadOptions
	}
	if opts.BlockSplit < SplitAuto || opts.BlockSplit > SplitGreedy {
		return nil, ErrBadOptions
	}

	level := min(max(opts.Level, 2), 9)
	params := fixedLevels[level-2]

	iterations := params.iterations
	if opts.Iterations > 9 {
		iterations = opts.Iterations
	}

	tryStatic := opts.TryStatic || params.tryStatic
	payload := deflateBytes(src, params, iterations, opts, tryStatic)

	switch opts.Container {
	case Zlib:
		return zlibWrap(payload, src), nil
	case Raw:
		return payload, nil
	default:
		return gzipWrap(payload, src, opts.Name, opts.ModTime), nil
	}
}

// deflateBytes produces the bare RFC 1951 stream: optimize the token
// stream, choose block boundaries, emit each block.
func deflateBytes(src []byte, params levelParams, iterations int, opts *CompressOptions, tryStatic bool) []byte {
	w := &bitWriter{buf: make([]byte, 0, len(src)/3+64)}

	if len(src) == 0 {
		// A final static block holding only end-of-block: ten bits total.
		w.writeBits(1, 1)
		w.writeBits(blockStatic, 2)
		w.writeBits(0, 7)
		w.flush()
		return w.buf
	}

	st := optimizeTokens(src, params, iterations, opts.Seed, tryStatic)

	exact := !params.entropy
	split := true
	switch opts.BlockSplit {
	case SplitOff:
		split = false
	case SplitEntropy:
		exact = false
	case SplitGreedy:
		exact = true
	}

	bounds := []int{0, len(st.tokens)}
	if split {
		bounds = splitTokens(st, exact, tryStatic, params.maxBlocks)
	}

	bytePos := 0
	for i := 0; i+1 < len(bounds); i++ {
		lo, hi := bounds[i], bounds[i+1]
		nb := 0
		for t := lo; t < hi; t++ {
			nb += st.tokenBytes(t)
		}
		final := i+2 == len(bounds)
		emitBlock(w, st, lo, hi, final, src[bytePos:bytePos+nb], tryStatic)
		bytePos += nb
	}

	w.flush()
	return w.buf
}

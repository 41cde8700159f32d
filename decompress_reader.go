package zopgz

import "io"

// DecompressFromReader drains r into memory and decompresses the buffered
// stream. When opts.MaxInputSize is set the drain itself is capped: a source
// that would grow past the cap aborts with ErrInputLimit rather than being
// buffered whole first.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if opts.MaxInputSize > 0 {
		buf, err := io.ReadAll(io.LimitReader(r, int64(opts.MaxInputSize)+1))
		if err != nil {
			return nil, err
		}
		if len(buf) > opts.MaxInputSize {
			return nil, ErrInputLimit
		}
		return Decompress(buf, opts)
	}

	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decompress(buf, opts)
}

// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/zopgz

package zopgz

import (
	"bytes"
	"math/rand"
	"testing"
)

func benchInput(n int) []byte {
	rng := rand.New(rand.NewSource(20))
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dogs", "again"}
	var buf bytes.Buffer
	for buf.Len() < n {
		buf.WriteString(words[rng.Intn(len(words))])
		buf.WriteByte(' ')
	}
	return buf.Bytes()[:n]
}

func BenchmarkCompress_Level2(b *testing.B) {
	data := benchInput(64 << 10)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Compress(data, &CompressOptions{Level: 2}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompress_Level9(b *testing.B) {
	data := benchInput(64 << 10)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Compress(data, &CompressOptions{Level: 9}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := benchInput(256 << 10)
	cmp, err := Compress(data, &CompressOptions{Level: 5})
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Decompress(cmp, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatchFinder_Fetch(b *testing.B) {
	data := benchInput(128 << 10)
	mf := acquireMatchFinder()
	defer releaseMatchFinder(mf)
	mf.MaxChain = 256
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		mf.reset(data)
		var cands []match
		for p := 0; p < len(data); p++ {
			cands = mf.fetch(cands[:0])
		}
	}
}

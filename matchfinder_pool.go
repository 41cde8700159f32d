package zopgz

import "sync"

// matchFinderPool recycles match finders; the hash and tree arrays are the
// bulk of a compression call's fixed working set.
var matchFinderPool = sync.Pool{
	New: func() any {
		return &matchFinder{}
	},
}

// acquireMatchFinder acquires a match finder from the pool.
func acquireMatchFinder() *matchFinder {
	return matchFinderPool.Get().(*matchFinder)
}

// releaseMatchFinder releases a match finder to the pool.
func releaseMatchFinder(mf *matchFinder) {
	if mf == nil {
		return
	}

	mf.data = nil
	matchFinderPool.Put(mf)
}

package zopgz

// levelParams holds internal parameters for one compression level.
// All fields are unexported; the type is used only inside the package.
type levelParams struct {
	iterations int  // optimizer re-encode passes
	stagnation int  // stop after this many passes without improvement
	maxChain   int  // match finder effort cap (tree nodes visited per position)
	goodLen    int  // match length at or above which the lookahead fetch's chain cap is quartered
	maxBlocks  int  // block splitter output cap
	tryStatic  bool // evaluate the fixed tree per block
	entropy    bool // entropy-estimate block splitting instead of exact
}

// fixedLevels defines parameters for core levels 2–9 (index level-2).
// Iteration counts follow the classic iterative-encoder ladder.
var fixedLevels = [8]levelParams{
	{iterations: 1, stagnation: 3, maxChain: 32, goodLen: 32, maxBlocks: 15, tryStatic: false, entropy: true},
	{iterations: 1, stagnation: 3, maxChain: 64, goodLen: 32, maxBlocks: 15, tryStatic: false, entropy: false},
	{iterations: 2, stagnation: 3, maxChain: 128, goodLen: 32, maxBlocks: 15, tryStatic: false, entropy: false},
	{iterations: 3, stagnation: 4, maxChain: 256, goodLen: 64, maxBlocks: 15, tryStatic: true, entropy: false},
	{iterations: 8, stagnation: 5, maxChain: 512, goodLen: 64, maxBlocks: 30, tryStatic: true, entropy: false},
	{iterations: 13, stagnation: 5, maxChain: 1024, goodLen: 128, maxBlocks: 30, tryStatic: true, entropy: false},
	{iterations: 40, stagnation: 8, maxChain: 2048, goodLen: 258, maxBlocks: 60, tryStatic: true, entropy: false},
	{iterations: 60, stagnation: 10, maxChain: 4096, goodLen: 258, maxBlocks: 100, tryStatic: true, entropy: false},
}

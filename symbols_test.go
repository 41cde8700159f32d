package zopgz

import "testing"

func TestLengthSymbols_SpecBoundaries(t *testing.T) {
	tests := []struct {
		length     int
		sym        int
		extraBits  int
		extraValue int
	}{
		{3, 257, 0, 0},
		{4, 258, 0, 0},
		{10, 264, 0, 0},
		{11, 265, 1, 0},
		{12, 265, 1, 1},
		{13, 266, 1, 0},
		{18, 268, 1, 1},
		{19, 269, 2, 0},
		{22, 269, 2, 3},
		{34, 272, 2, 3},
		{35, 273, 3, 0},
		{66, 276, 3, 7},
		{67, 277, 4, 0},
		{114, 279, 4, 15},
		{115, 280, 4, 0},
		{130, 280, 4, 15},
		{131, 281, 5, 0},
		{257, 284, 5, 30},
		{258, 285, 0, 0},
	}

	for _, tt := range tests {
		if got := lengthSymbol(tt.length); got != tt.sym {
			t.Errorf("lengthSymbol(%d) = %d, want %d", tt.length, got, tt.sym)
		}
		if got := lengthExtraBits(tt.length); got != tt.extraBits {
			t.Errorf("lengthExtraBits(%d) = %d, want %d", tt.length, got, tt.extraBits)
		}
		if got := lengthExtraValue(tt.length); got != tt.extraValue {
			t.Errorf("lengthExtraValue(%d) = %d, want %d", tt.length, got, tt.extraValue)
		}
	}
}

func TestDistSymbols_SpecBoundaries(t *testing.T) {
	tests := []struct {
		dist       int
		sym        int
		extraBits  int
		extraValue int
	}{
		{1, 0, 0, 0},
		{2, 1, 0, 0},
		{3, 2, 0, 0},
		{4, 3, 0, 0},
		{5, 4, 1, 0},
		{6, 4, 1, 1},
		{7, 5, 1, 0},
		{8, 5, 1, 1},
		{9, 6, 2, 0},
		{12, 6, 2, 3},
		{13, 7, 2, 0},
		{16, 7, 2, 3},
		{17, 8, 3, 0},
		{24, 8, 3, 7},
		{25, 9, 3, 0},
		{32, 9, 3, 7},
		{33, 10, 4, 0},
		{16384, 27, 12, 4095},
		{16385, 28, 13, 0},
		{24576, 28, 13, 8191},
		{24577, 29, 13, 0},
		{32768, 29, 13, 8191},
	}

	for _, tt := range tests {
		if got := distSymbol(tt.dist); got != tt.sym {
			t.Errorf("distSymbol(%d) = %d, want %d", tt.dist, got, tt.sym)
		}
		if got := distExtraBits(tt.dist); got != tt.extraBits {
			t.Errorf("distExtraBits(%d) = %d, want %d", tt.dist, got, tt.extraBits)
		}
		if got := distExtraValue(tt.dist); got != tt.extraValue {
			t.Errorf("distExtraValue(%d) = %d, want %d", tt.dist, got, tt.extraValue)
		}
	}
}

func TestSymbolExtraTables_AgreeWithValueFunctions(t *testing.T) {
	for length := minMatch; length <= maxMatch; length++ {
		sym := lengthSymbol(length)
		if got, want := int(llSymbolExtra[sym-257]), lengthExtraBits(length); got != want {
			t.Fatalf("llSymbolExtra[%d] = %d, lengthExtraBits(%d) = %d", sym-257, got, length, want)
		}
	}
	for dist := 1; dist <= maxDistance; dist++ {
		sym := distSymbol(dist)
		if got, want := distSymbolExtra(sym), distExtraBits(dist); got != want {
			t.Fatalf("distSymbolExtra(%d) = %d, distExtraBits(%d) = %d", sym, got, dist, want)
		}
	}
}

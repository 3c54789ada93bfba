package circdtw_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/circular/circdtw"
	"github.com/katalvlaran/circular/circval"
)

func benchSeq(n int, seed int64) []circval.Val[udeg] {
	rng := rand.New(rand.NewSource(seed))
	s := make([]circval.Val[udeg], n)
	for i := range s {
		s[i] = circval.New[udeg](rng.Float64() * 360)
	}

	return s
}

// BenchmarkDTW_FullMatrix measures the O(n·m) alignment with path memory.
func BenchmarkDTW_FullMatrix(b *testing.B) {
	x := benchSeq(500, 1)
	y := benchSeq(500, 2)
	opts := &circdtw.Options{Window: -1, MemoryMode: circdtw.FullMatrix}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := circdtw.DTW(x, y, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDTW_TwoRows measures the rolling-buffer mode.
func BenchmarkDTW_TwoRows(b *testing.B) {
	x := benchSeq(500, 1)
	y := benchSeq(500, 2)
	opts := &circdtw.Options{Window: -1, MemoryMode: circdtw.TwoRows}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := circdtw.DTW(x, y, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDTW_Windowed measures a Sakoe-Chiba band of width 25.
func BenchmarkDTW_Windowed(b *testing.B) {
	x := benchSeq(500, 1)
	y := benchSeq(500, 2)
	opts := &circdtw.Options{Window: 25, MemoryMode: circdtw.TwoRows}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := circdtw.DTW(x, y, opts); err != nil {
			b.Fatal(err)
		}
	}
}

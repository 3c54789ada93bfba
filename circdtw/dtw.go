package circdtw

import (
	"math"

	"github.com/katalvlaran/circular/circval"
)

// DTW computes the Dynamic Time Warping distance between the circular
// sequences a and b under the local cost |Sdist|.
// Returns (distance, path, error); path is nil unless opts.ReturnPath.
//
// Algorithm (full-matrix):
//  1. D[0][0]=0, first row/column +∞.
//  2. D[i][j] = |Sdist(a[i-1],b[j-1])| + min(D[i-1][j]+p, D[i][j-1]+p, D[i-1][j-1])
//     restricted to |i-j| ≤ Window when windowed.
//  3. distance = D[n][m]; optionally backtrack the predecessor chain.
//
// A nil opts means DefaultOptions.
//
// Complexity: O(n·m) time; O(n·m) or O(min(n,m)) memory by MemoryMode.
func DTW[R circval.Range](a, b []circval.Val[R], opts *Options) (float64, []Coord, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < -1 {
		return 0, nil, ErrBadInput
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	inf := math.Inf(1)
	windowed := o.Window >= 0

	var dp [][]float64
	if o.MemoryMode == FullMatrix {
		dp = make([][]float64, n+1)
		for i := range dp {
			dp[i] = make([]float64, m+1)
		}
		for i := 1; i <= n; i++ {
			dp[i][0] = inf
		}
	} else {
		dp = [][]float64{make([]float64, m+1), make([]float64, m+1)}
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		cur, prev := i, i-1
		if o.MemoryMode == TwoRows {
			cur, prev = i%2, (i-1)%2
			dp[cur][0] = inf
		}
		for j := 1; j <= m; j++ {
			if windowed && abs(i-j) > o.Window {
				dp[cur][j] = inf

				continue
			}
			cost := math.Abs(a[i-1].Sdist(b[j-1]))
			ins := dp[prev][j] + o.SlopePenalty
			del := dp[cur][j-1] + o.SlopePenalty
			match := dp[prev][j-1]
			dp[cur][j] = cost + min3(ins, del, match)
		}
	}

	var distance float64
	if o.MemoryMode == FullMatrix {
		distance = dp[n][m]
	} else {
		distance = dp[n%2][m]
	}

	var path []Coord
	if o.ReturnPath && !math.IsInf(distance, 1) {
		path = backtrack(dp, n, m)
	}

	return distance, path, nil
}

// backtrack recovers the optimal warping path from a full DP matrix,
// preferring the diagonal predecessor on ties.
func backtrack(dp [][]float64, n, m int) []Coord {
	path := make([]Coord, 0, n+m)
	i, j := n, m
	for i > 0 && j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		diag, up, left := dp[i-1][j-1], dp[i-1][j], dp[i][j-1]
		switch {
		case diag <= up && diag <= left:
			i--
			j--
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}

package circstat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circular/circval"
)

// The sector search (Mean) and the rotation-index search (meanByRotation)
// are independent formulations of the same optimization and must agree on
// every input.  Random inputs have a unique minimizer, where both must land
// on the bit-identical position; structured decimal-degree inputs exercise
// exact tie sets.

func TestMeanFormulationsAgree_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 500; trial++ {
		n := 1 + rng.Intn(64)
		sample := make([]circval.Val[circval.UnsignedDeg], n)
		for i := range sample {
			sample[i] = circval.New[circval.UnsignedDeg](rng.Float64() * 360)
		}

		bySector, err := Mean(sample)
		require.NoError(t, err)
		byRotation, err := meanByRotation(sample)
		require.NoError(t, err)

		require.Len(t, byRotation, len(bySector))
		for i := range bySector {
			require.True(t, bySector[i].AlmostEqual(byRotation[i], 1e-9),
				"formulations disagree: sector %v vs rotation %v",
				bySector[i].Float(), byRotation[i].Float())
		}
	}
}

func TestMeanFormulationsAgree_TieSets(t *testing.T) {
	cases := [][]float64{
		{0, 180},
		{0, 90, 180, 270},
		{10, 350},
		{30, 130, 230, 330},
		{0, 120, 240},
		{45, 45, 225, 225},
	}
	for _, angles := range cases {
		sample := make([]circval.Val[circval.UnsignedDeg], len(angles))
		for i, a := range angles {
			sample[i] = circval.New[circval.UnsignedDeg](a)
		}

		bySector, err := Mean(sample)
		require.NoError(t, err)
		byRotation, err := meanByRotation(sample)
		require.NoError(t, err)

		require.Len(t, byRotation, len(bySector), "tie counts differ for %v", angles)
		for i := range bySector {
			require.True(t, bySector[i].AlmostEqual(byRotation[i], 1e-9),
				"%v: sector %v vs rotation %v", angles, bySector[i].Float(), byRotation[i].Float())
		}
	}
}

func TestMeanByRotation_EmptySample(t *testing.T) {
	_, err := meanByRotation[circval.UnsignedDeg](nil)
	require.ErrorIs(t, err, ErrEmptySample)
}

package quiz

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffle(t *testing.T) {
	t.Run("permutation of input", func(t *testing.T) {
		rnd := rand.New(rand.NewPCG(42, 42))
		input := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		orig := append([]int(nil), input...)

		res := Shuffle(rnd, input)
		require.Len(t, res, len(input))
		assert.Equal(t, orig, input, "input must not be mutated")

		sorted := append([]int(nil), res...)
		sort.Ints(sorted)
		assert.Equal(t, orig, sorted)
	})

	t.Run("empty and single", func(t *testing.T) {
		rnd := rand.New(rand.NewPCG(1, 1))
		assert.Empty(t, Shuffle(rnd, []string{}))
		assert.Equal(t, []string{"a"}, Shuffle(rnd, []string{"a"}))
	})

	t.Run("same seed same order", func(t *testing.T) {
		input := []string{"a", "b", "c", "d", "e"}
		r1 := Shuffle(rand.New(rand.NewPCG(7, 8)), input)
		r2 := Shuffle(rand.New(rand.NewPCG(7, 8)), input)
		assert.Equal(t, r1, r2)
	})
}

func TestShuffle_Uniform(t *testing.T) {
	const trials = 60000
	rnd := rand.New(rand.NewPCG(3, 14))
	input := []int{0, 1, 2}

	// counts[pos][value]
	var counts [3][3]int
	perms := map[[3]int]int{}
	for i := 0; i < trials; i++ {
		res := Shuffle(rnd, input)
		for pos, v := range res {
			counts[pos][v]++
		}
		perms[[3]int{res[0], res[1], res[2]}]++
	}

	for pos := range counts {
		for v := range counts[pos] {
			assert.InDelta(t, trials/3, counts[pos][v], 1000, "position %d, value %d", pos, v)
		}
	}
	require.Len(t, perms, 6, "all permutations expected")
	for p, n := range perms {
		assert.InDelta(t, trials/6, n, 800, "permutation %v", p)
	}
}

package sorting_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiwiko123/collections/sorting"
)

// comparison sorts under test, all with the same contract.
var sorts = map[string]func([]int){
	"Insertion": sorting.Insertion[int],
	"Selection": sorting.Selection[int],
	"Merge":     sorting.Merge[int],
	"Quick":     sorting.Quick[int],
	"Heap":      sorting.Heap[int],
}

func TestComparisonSorts(t *testing.T) {
	inputs := map[string][]int{
		"empty":          {},
		"single":         {1},
		"already sorted": {1, 2, 3, 4, 5},
		"reversed":       {5, 4, 3, 2, 1},
		"duplicates":     {3, 1, 3, 1, 2, 2},
		"negative":       {-5, 3, -1, 0, 2},
		"shuffled":       {6, 3, 7, 1, 2, 8, 5, 4},
	}

	for name, fn := range sorts {
		t.Run(name, func(t *testing.T) {
			for inputName, input := range inputs {
				t.Run(inputName, func(t *testing.T) {
					arr := append([]int(nil), input...)
					want := append([]int(nil), input...)
					sort.Ints(want)

					fn(arr)
					assert.Equal(t, want, arr)
				})
			}
		})
	}
}

func TestComparisonSortsRandom(t *testing.T) {
	for name, fn := range sorts {
		t.Run(name, func(t *testing.T) {
			arr := make([]int, 500)
			for i := range arr {
				arr[i] = rand.Intn(100)
			}
			want := append([]int(nil), arr...)
			sort.Ints(want)

			fn(arr)
			assert.Equal(t, want, arr)
		})
	}
}

func TestSortStrings(t *testing.T) {
	arr := []string{"pear", "apple", "fig", "banana"}
	sorting.Merge(arr)
	assert.Equal(t, []string{"apple", "banana", "fig", "pear"}, arr)
}

func TestCounting(t *testing.T) {
	arr := []int{4, 2, 2, 8, 3, 3, 1}
	require.NoError(t, sorting.Counting(arr))
	assert.Equal(t, []int{1, 2, 2, 3, 3, 4, 8}, arr)
}

func TestCountingNegative(t *testing.T) {
	arr := []int{3, -1, 2}
	err := sorting.Counting(arr)
	require.ErrorIs(t, err, sorting.ErrNegativeValue)
	// Input untouched on error.
	assert.Equal(t, []int{3, -1, 2}, arr)
}

func TestCountingEmpty(t *testing.T) {
	require.NoError(t, sorting.Counting(nil))
}

func TestBucket(t *testing.T) {
	arr := []int{29, 25, 3, 49, 9, 37, 21, 43}
	require.NoError(t, sorting.Bucket(arr, 4))
	assert.Equal(t, []int{3, 9, 21, 25, 29, 37, 43, 49}, arr)
}

func TestBucketInvalid(t *testing.T) {
	err := sorting.Bucket([]int{1, 2}, 0)
	require.ErrorIs(t, err, sorting.ErrInvalidBuckets)

	err = sorting.Bucket([]int{1, -2}, 3)
	require.ErrorIs(t, err, sorting.ErrNegativeValue)
}

func TestBucketMaxValueBoundary(t *testing.T) {
	// The maximum value must land in the last bucket, not past it.
	arr := []int{10, 0, 5, 10}
	require.NoError(t, sorting.Bucket(arr, 5))
	assert.Equal(t, []int{0, 5, 10, 10}, arr)
}

func TestMergeSorted(t *testing.T) {
	tests := []struct {
		name string
		seqs [][]int
		want []int
	}{
		{
			name: "three sequences",
			seqs: [][]int{{1, 3, 5}, {2, 4, 6}, {7, 8, 9}},
			want: []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			name: "uneven lengths",
			seqs: [][]int{{5}, {}, {1, 2, 9, 10}},
			want: []int{1, 2, 5, 9, 10},
		},
		{
			name: "duplicates across sequences",
			seqs: [][]int{{1, 2, 2}, {2, 3}},
			want: []int{1, 2, 2, 2, 3},
		},
		{
			name: "no sequences",
			seqs: nil,
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sorting.MergeSorted(tt.seqs...))
		})
	}
}

func BenchmarkSorts(b *testing.B) {
	const size = 1024
	for name, fn := range sorts {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			src := rand.Perm(size)
			arr := make([]int, size)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(arr, src)
				fn(arr)
			}
		})
	}
}

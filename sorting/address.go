package sorting

import (
	"errors"
)

var (
	ErrNegativeValue  = errors.New("sorting: address-based sorts require non-negative values")
	ErrInvalidBuckets = errors.New("sorting: number of buckets must be greater than 0")
)

// Counting sorts arr in place in O(n + k) time, where k is the maximum
// value, by counting occurrences and computing final addresses. Values must
// be non-negative; a negative value aborts with ErrNegativeValue before arr
// is modified.
func Counting(arr []int) error {
	maxValue, err := maxOf(arr)
	if err != nil || len(arr) == 0 {
		return err
	}

	locator := make([]int, maxValue+1)
	for _, v := range arr {
		locator[v]++
	}
	for i := 1; i <= maxValue; i++ {
		locator[i] += locator[i-1]
	}

	scratch := append([]int(nil), arr...)
	for _, v := range scratch {
		locator[v]--
		arr[locator[v]] = v
	}
	return nil
}

// Bucket sorts arr in place by distributing values into numBuckets ranges,
// insertion-sorting each bucket, and concatenating. Values must be
// non-negative.
func Bucket(arr []int, numBuckets int) error {
	if numBuckets <= 0 {
		return ErrInvalidBuckets
	}
	maxValue, err := maxOf(arr)
	if err != nil || len(arr) == 0 {
		return err
	}

	bucketRange := (maxValue + numBuckets) / numBuckets // ceil((max+1)/buckets), never 0
	buckets := make([][]int, numBuckets)
	for _, v := range arr {
		i := min(v/bucketRange, numBuckets-1)
		buckets[i] = append(buckets[i], v)
	}

	i := 0
	for _, bucket := range buckets {
		Insertion(bucket)
		for _, v := range bucket {
			arr[i] = v
			i++
		}
	}
	return nil
}

func maxOf(arr []int) (int, error) {
	maxValue := 0
	for _, v := range arr {
		if v < 0 {
			return 0, ErrNegativeValue
		}
		if v > maxValue {
			maxValue = v
		}
	}
	return maxValue, nil
}

// Package extraction builds the ascending (extracted, remaining) index
// partition shared by PulseCorrelation and PulseSearcher.
package extraction

// Result partitions [0, n) into two ascending, disjoint index lists whose
// union is [0, n): Extracted holds the pulses attributed to a chain or PRI,
// Remaining holds everything else.
type Result struct {
	Extracted []int
	Remaining []int
}

// Partition scans i in [0, n) in order and assigns each index to Extracted
// or Remaining according to in(i), preserving ascending order in both.
func Partition(n int, in func(i int) bool) Result {
	res := Result{
		Extracted: make([]int, 0, n),
		Remaining: make([]int, 0, n),
	}
	for i := 0; i < n; i++ {
		if in(i) {
			res.Extracted = append(res.Extracted, i)
		} else {
			res.Remaining = append(res.Remaining, i)
		}
	}
	return res
}

package extraction

import "testing"

func TestPartition(t *testing.T) {
	in := map[int]bool{1: true, 3: true}
	result := Partition(5, func(i int) bool { return in[i] })

	wantExtracted := []int{1, 3}
	wantRemaining := []int{0, 2, 4}

	if len(result.Extracted) != len(wantExtracted) {
		t.Fatalf("Extracted = %v, want %v", result.Extracted, wantExtracted)
	}
	for i, v := range wantExtracted {
		if result.Extracted[i] != v {
			t.Errorf("Extracted[%d] = %d, want %d", i, result.Extracted[i], v)
		}
	}

	if len(result.Remaining) != len(wantRemaining) {
		t.Fatalf("Remaining = %v, want %v", result.Remaining, wantRemaining)
	}
	for i, v := range wantRemaining {
		if result.Remaining[i] != v {
			t.Errorf("Remaining[%d] = %d, want %d", i, result.Remaining[i], v)
		}
	}
}

func TestPartitionEmpty(t *testing.T) {
	result := Partition(0, func(i int) bool { return false })
	if len(result.Extracted) != 0 || len(result.Remaining) != 0 {
		t.Errorf("expected both empty, got %+v", result)
	}
}

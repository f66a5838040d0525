// extraction.go defines the public extraction result type shared by
// PulseCorrelation and PulseSearcher.

package radarpri

import "github.com/kewuaa/radar-algorithm/internal/extraction"

// Extraction partitions [0, n) into two ascending, disjoint index lists:
// Extracted holds the pulses attributed to a chain or PRI, Remaining
// holds everything else.
type Extraction = extraction.Result

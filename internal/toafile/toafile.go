// Package toafile reads time-of-arrival sequences from a plain text
// source: one TOA per line, blank lines and lines starting with '#'
// ignored. This is the file format cmd/priscan reads; it is not part of
// the library's core contract, which only ever takes a toa.Sequence.
package toafile

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/kewuaa/radar-algorithm/toa"
)

// Read parses TOAs from r, one floating-point value per non-blank,
// non-comment line, and returns them sorted ascending (the estimators'
// input contract requires a sorted sequence; this package guarantees it
// rather than trusting the file).
func Read(r io.Reader) (toa.Sequence, error) {
	var values []float64
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("toafile: line %d: %w", lineNo, err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("toafile: %w", err)
	}
	sort.Float64s(values)
	return toa.Sequence(values), nil
}

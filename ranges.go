package cpi

import "fmt"
import "strconv"
import "strings"

// A Range selects an inclusive span of character codes. Both bounds are
// clamped to [0, 255] on construction, and Start <= End always holds.
type Range struct {
	Start uint8
	End uint8
}

// Returns the number of character codes the range selects.
func (self Range) CharCount() int {
	return int(self.End) - int(self.Start) + 1
}

// A RangeSet is the ordered sequence of ranges given by the caller.
// Order is preserved and overlapping ranges are not merged: each range
// is applied independently, so a character named twice is emitted
// twice. Extraction walks the set in order, ascending within each
// range, and that walk order is the output order.
type RangeSet []Range

// Returns the total number of selected character codes, overlaps
// counted as many times as they appear.
func (self RangeSet) CharCount() int {
	var count int
	for _, rng := range self { count += rng.CharCount() }
	return count
}

// ParseRanges parses a comma-separated range specification like
// "32-167,57,2-4". Each token is either a single value N or a pair N-M.
// Out-of-bounds values are silently clamped to [0, 255]; a clamped pair
// whose end precedes its start fails with [ErrInvalidRangeOrder], and
// any token that is not a number or a pair of numbers fails the whole
// parse with [ErrInvalidRange].
func ParseRanges(spec string) (RangeSet, error) {
	var set RangeSet
	for _, token := range strings.Split(spec, ",") {
		rng, err := parseRangeToken(token)
		if err != nil { return nil, err }
		set = append(set, rng)
	}
	return set, nil
}

func parseRangeToken(token string) (Range, error) {
	startStr, endStr, isPair := splitRangeToken(token)
	start, err := strconv.Atoi(startStr)
	if err != nil { return Range{}, fmt.Errorf("%w '%s'", ErrInvalidRange, token) }
	end := start
	if isPair {
		end, err = strconv.Atoi(endStr)
		if err != nil { return Range{}, fmt.Errorf("%w '%s'", ErrInvalidRange, token) }
	}

	rng := Range{ Start: clampToByte(start), End: clampToByte(end) }
	if rng.End < rng.Start { return Range{}, ErrInvalidRangeOrder }
	return rng, nil
}

// The separator can't be the token's first byte: that's the sign of a
// negative (to-be-clamped) start value.
func splitRangeToken(token string) (string, string, bool) {
	for i := 1; i < len(token); i++ {
		if token[i] == '-' {
			return token[0 : i], token[i + 1 : ], true
		}
	}
	return token, "", false
}

func clampToByte(value int) uint8 {
	if value <   0 { return 0 }
	if value > 255 { return 255 }
	return uint8(value)
}

// DefaultRanges returns the selection used when the caller supplied no
// ranges: every character of the current context. That is [0, count-1]
// with the font's own glyph count on standard fonts, and [0, 255] on
// DR-DOS fonts, where characters address the 256-entry index table.
func DefaultRanges(count int) RangeSet {
	if count < 1 { return RangeSet{} }
	return RangeSet{ Range{ Start: 0, End: clampToByte(count - 1) } }
}

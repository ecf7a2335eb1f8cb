package cpi

import "errors"
import "testing"

func TestParseRangesSingleValue(t *testing.T) {
	set, err := ParseRanges("65")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(set) != 1 { t.Fatalf("expected 1 range, got %d", len(set)) }
	if set[0] != (Range{ Start: 65, End: 65 }) { t.Fatalf("expected (65, 65), got %v", set[0]) }
}

func TestParseRangesPairs(t *testing.T) {
	set, err := ParseRanges("32-167,57,2-4")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(set) != 3 { t.Fatalf("expected 3 ranges, got %d", len(set)) }
	if set[0] != (Range{ Start: 32, End: 167 }) { t.Fatalf("bad range 0: %v", set[0]) }
	if set[1] != (Range{ Start: 57, End: 57 }) { t.Fatalf("bad range 1: %v", set[1]) }
	if set[2] != (Range{ Start: 2, End: 4 }) { t.Fatalf("bad range 2: %v", set[2]) }
	if set.CharCount() != 136 + 1 + 3 { t.Fatalf("expected 140 chars, got %d", set.CharCount()) }
}

func TestParseRangesClamping(t *testing.T) {
	set, err := ParseRanges("-5-300")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if set[0] != (Range{ Start: 0, End: 255 }) { t.Fatalf("expected (0, 255), got %v", set[0]) }
}

func TestParseRangesOrderError(t *testing.T) {
	_, err := ParseRanges("9-3")
	if !errors.Is(err, ErrInvalidRangeOrder) { t.Fatalf("expected ErrInvalidRangeOrder, got %v", err) }
}

func TestParseRangesMalformed(t *testing.T) {
	for _, spec := range []string{ "a-b", "5-", "", "1,,2", "3-4-5" } {
		_, err := ParseRanges(spec)
		if !errors.Is(err, ErrInvalidRange) { t.Fatalf("expected ErrInvalidRange for %q, got %v", spec, err) }
	}
}

func TestParseRangesPreservesOverlaps(t *testing.T) {
	set, err := ParseRanges("10-12,0-1,10-12")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(set) != 3 { t.Fatalf("expected 3 ranges, got %d", len(set)) }
	if set[0] != set[2] { t.Fatalf("expected duplicated range to be preserved") }

	// walk order must be input order, ascending within each range
	var codes []int
	for _, rng := range set {
		for char := int(rng.Start); char <= int(rng.End); char++ { codes = append(codes, char) }
	}
	expected := []int{ 10, 11, 12, 0, 1, 10, 11, 12 }
	if len(codes) != len(expected) { t.Fatalf("expected %d codes, got %d", len(expected), len(codes)) }
	for i := range expected {
		if codes[i] != expected[i] { t.Fatalf("expected code %d at %d, got %d", expected[i], i, codes[i]) }
	}
}

func TestDefaultRanges(t *testing.T) {
	set := DefaultRanges(256)
	if len(set) != 1 { t.Fatalf("expected 1 range, got %d", len(set)) }
	if set[0] != (Range{ Start: 0, End: 255 }) { t.Fatalf("expected (0, 255), got %v", set[0]) }

	set = DefaultRanges(128)
	if set[0] != (Range{ Start: 0, End: 127 }) { t.Fatalf("expected (0, 127), got %v", set[0]) }
	if set.CharCount() != 128 { t.Fatalf("expected 128 chars, got %d", set.CharCount()) }

	set = DefaultRanges(0)
	if len(set) != 0 { t.Fatalf("expected empty set, got %v", set) }
}

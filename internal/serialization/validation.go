package serialization

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// ValidateName rejects array names that are empty, overlong, reserved, or
// could be mistaken for a path.
func ValidateName(name string) error {
	if name == "" || name == metadataKey {
		return &ValidationError{
			Type:    "invalid_name",
			Array:   name,
			Details: "empty or reserved name",
		}
	}
	if len(name) > MaxNameLen {
		return &ValidationError{
			Type:    "name_too_long",
			Array:   name,
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxNameLen),
		}
	}
	if strings.Contains(name, "..") {
		return &ValidationError{
			Type:    "invalid_name",
			Array:   name,
			Details: "contains '..'",
		}
	}
	if strings.ContainsAny(name, "/\\") {
		return &ValidationError{
			Type:    "invalid_name",
			Array:   name,
			Details: "contains path separator (/ or \\)",
		}
	}
	if strings.Contains(name, "\x00") {
		return &ValidationError{
			Type:    "invalid_name",
			Array:   name,
			Details: "contains null byte",
		}
	}
	return nil
}

// ValidateOffsets checks that every array's byte range lies inside the data
// section and that no two ranges overlap.
func ValidateOffsets(arrays map[string]Info, dataSize int64) error {
	type span struct {
		name       string
		start, end int64
	}
	spans := make([]span, 0, len(arrays))
	for name, info := range arrays {
		spans = append(spans, span{name, info.DataOffsets[0], info.DataOffsets[1]})
	}
	slices.SortFunc(spans, func(a, b span) int {
		if c := cmp.Compare(a.start, b.start); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})

	for i, s := range spans {
		if s.start < 0 || s.end < s.start {
			return &ValidationError{
				Type:    "negative_offset",
				Array:   s.name,
				Details: fmt.Sprintf("data_offsets=[%d, %d]", s.start, s.end),
			}
		}
		if s.end > dataSize {
			return &ValidationError{
				Type:    "out_of_bounds",
				Array:   s.name,
				Details: fmt.Sprintf("end %d > data_size %d", s.end, dataSize),
			}
		}
		if i < len(spans)-1 {
			next := spans[i+1]
			if s.end > next.start {
				return &ValidationError{
					Type:    "offset_overlap",
					Array:   s.name,
					Array2:  next.name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap", s.start, s.end, next.start, next.end),
				}
			}
		}
	}
	return nil
}

// ValidateHeader checks the array count, every name and every byte range.
func ValidateHeader(h *Header, dataSize int64) error {
	if len(h.Arrays) > MaxArrayCount {
		return &ValidationError{
			Type:    "too_many_arrays",
			Details: fmt.Sprintf("got %d, max %d", len(h.Arrays), MaxArrayCount),
		}
	}
	for _, name := range h.Names() {
		if err := ValidateName(name); err != nil {
			return err
		}
	}
	return ValidateOffsets(h.Arrays, dataSize)
}

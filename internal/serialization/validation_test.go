package serialization

import (
	"errors"
	"strings"
	"testing"

	"github.com/born-ml/ndarray/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOffsets(t *testing.T) {
	tests := []struct {
		name     string
		arrays   map[string]Info
		dataSize int64
		errType  string
	}{
		{
			name: "adjacent",
			arrays: map[string]Info{
				"a": {DataOffsets: [2]int64{0, 100}},
				"b": {DataOffsets: [2]int64{100, 300}},
			},
			dataSize: 300,
		},
		{
			name: "empty arrays share an offset",
			arrays: map[string]Info{
				"a": {DataOffsets: [2]int64{8, 8}},
				"b": {DataOffsets: [2]int64{8, 8}},
			},
			dataSize: 8,
		},
		{
			name: "overlap",
			arrays: map[string]Info{
				"a": {DataOffsets: [2]int64{0, 100}},
				"b": {DataOffsets: [2]int64{50, 150}},
			},
			dataSize: 200,
			errType:  "offset_overlap",
		},
		{
			name:     "negative",
			arrays:   map[string]Info{"a": {DataOffsets: [2]int64{-8, 8}}},
			dataSize: 8,
			errType:  "negative_offset",
		},
		{
			name:     "reversed",
			arrays:   map[string]Info{"a": {DataOffsets: [2]int64{8, 4}}},
			dataSize: 8,
			errType:  "negative_offset",
		},
		{
			name:     "past end",
			arrays:   map[string]Info{"a": {DataOffsets: [2]int64{0, 9}}},
			dataSize: 8,
			errType:  "out_of_bounds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOffsets(tt.arrays, tt.dataSize)
			if tt.errType == "" {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.errType, verr.Type)
		})
	}
}

func TestValidateName(t *testing.T) {
	require.NoError(t, ValidateName("layer.0.weight"))

	for _, name := range []string{
		"",
		"__metadata__",
		"../etc",
		"a/b",
		`a\b`,
		"a\x00b",
		strings.Repeat("x", MaxNameLen+1),
	} {
		assert.Error(t, ValidateName(name), "name %q", name)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Type: "offset_overlap", Array: "a", Array2: "b", Details: "regions overlap"}
	assert.Equal(t, `offset_overlap: arrays "a" and "b": regions overlap`, err.Error())

	err = &ValidationError{Type: "too_many_arrays", Details: "got 2"}
	assert.Equal(t, "too_many_arrays: got 2", err.Error())
}

func TestEntrySizeOverflow(t *testing.T) {
	tests := []struct {
		name  string
		shape tensor.Shape
	}{
		{"wraps to zero", tensor.Shape{1 << 62, 4}},
		{"wraps in byte size", tensor.Shape{1 << 61}},
		{"large product", tensor.Shape{1 << 31, 1 << 31, 1 << 31}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{DType: tensor.Float64, Shape: tt.shape}

			_, err := Decode[float64](e)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, "size_mismatch", verr.Type)
		})
	}
}

func TestReadRejectsOverflowingShape(t *testing.T) {
	r := rawFile(`{"a":{"dtype":"F64","shape":[4611686018427387904,4],"data_offsets":[0,0]}}`, nil)

	_, err := Read(r)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Equal(t, "size_mismatch", verr.Type)
}

func TestByteSize(t *testing.T) {
	n, ok := byteSize(tensor.Shape{2, 3}, 8)
	assert.True(t, ok)
	assert.Equal(t, 48, n)

	n, ok = byteSize(tensor.Shape{}, 4)
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	n, ok = byteSize(tensor.Shape{0, 1 << 62, 4}, 8)
	assert.True(t, ok)
	assert.Zero(t, n)
}

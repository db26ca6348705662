package serialization

import (
	"encoding/json"
	"slices"

	"github.com/born-ml/ndarray/internal/tensor"
	"github.com/pkg/errors"
)

// SafeTensors dtype tags for the supported element types.
const (
	DTypeF32 = "F32"
	DTypeF64 = "F64"
	DTypeI32 = "I32"
	DTypeI64 = "I64"
)

// metadataKey is the reserved header key for string metadata.
const metadataKey = "__metadata__"

// Validation limits for resource protection.
const (
	MaxHeaderSize = 100 * 1024 * 1024 // 100MB
	MaxArrayCount = 100_000
	MaxNameLen    = 4096
)

// Info describes one array in the header.
type Info struct {
	DType       string   `json:"dtype"`
	Shape       []int    `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"` // [start, end) in the data section
}

// Header is the JSON header of a SafeTensors file.
type Header struct {
	Metadata map[string]string
	Arrays   map[string]Info
}

// MarshalJSON flattens the arrays and metadata into a single object.
func (h Header) MarshalJSON() ([]byte, error) {
	raw := make(map[string]any, len(h.Arrays)+1)
	if len(h.Metadata) > 0 {
		raw[metadataKey] = h.Metadata
	}
	for name, info := range h.Arrays {
		raw[name] = info
	}
	return json.Marshal(raw)
}

// UnmarshalJSON splits the flat header object into arrays and metadata.
func (h *Header) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	h.Metadata = nil
	if meta, ok := raw[metadataKey]; ok {
		if err := json.Unmarshal(meta, &h.Metadata); err != nil {
			return errors.Wrap(err, "failed to unmarshal metadata")
		}
	}

	h.Arrays = make(map[string]Info, len(raw))
	for name, value := range raw {
		if name == metadataKey {
			continue
		}
		var info Info
		if err := json.Unmarshal(value, &info); err != nil {
			return errors.Wrapf(err, "failed to unmarshal array %q", name)
		}
		h.Arrays[name] = info
	}
	return nil
}

// Names returns the array names in sorted order.
func (h *Header) Names() []string {
	names := make([]string, 0, len(h.Arrays))
	for name := range h.Arrays {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func dtypeTag(dt tensor.DataType) (string, error) {
	switch dt {
	case tensor.Float32:
		return DTypeF32, nil
	case tensor.Float64:
		return DTypeF64, nil
	case tensor.Int32:
		return DTypeI32, nil
	case tensor.Int64:
		return DTypeI64, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedDType, "%v", dt)
	}
}

func parseDTypeTag(tag string) (tensor.DataType, error) {
	switch tag {
	case DTypeF32:
		return tensor.Float32, nil
	case DTypeF64:
		return tensor.Float64, nil
	case DTypeI32:
		return tensor.Int32, nil
	case DTypeI64:
		return tensor.Int64, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedDType, "%q", tag)
	}
}

package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/pkg/errors"
)

// Write encodes entries in SafeTensors format.
//
// Arrays are laid out in name order. The checksum of the data section is
// stored under the "sha256" metadata key, overriding any caller value.
func Write(w io.Writer, entries map[string]Entry, metadata map[string]string) error {
	if len(entries) > MaxArrayCount {
		return &ValidationError{
			Type:    "too_many_arrays",
			Details: fmt.Sprintf("got %d, max %d", len(entries), MaxArrayCount),
		}
	}

	names := slices.Sorted(maps.Keys(entries))
	header := Header{
		Metadata: make(map[string]string, len(metadata)+1),
		Arrays:   make(map[string]Info, len(names)),
	}
	maps.Copy(header.Metadata, metadata)

	var data bytes.Buffer
	for _, name := range names {
		if err := ValidateName(name); err != nil {
			return err
		}
		e := entries[name]
		if err := e.validate(); err != nil {
			return errors.Wrapf(err, "array %q", name)
		}
		tag, err := dtypeTag(e.DType)
		if err != nil {
			return errors.Wrapf(err, "array %q", name)
		}

		start := int64(data.Len())
		data.Write(e.Data)
		header.Arrays[name] = Info{
			DType:       tag,
			Shape:       append([]int{}, e.Shape...),
			DataOffsets: [2]int64{start, int64(data.Len())},
		}
	}
	header.Metadata[checksumKey] = ComputeChecksum(data.Bytes())

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return errors.Wrap(err, "failed to marshal header")
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return errors.Wrap(err, "failed to write header size")
	}
	if _, err := w.Write(headerJSON); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	if _, err := w.Write(data.Bytes()); err != nil {
		return errors.Wrap(err, "failed to write array data")
	}
	return nil
}

// WriteFile writes entries to a new file at path.
func WriteFile(path string, entries map[string]Entry, metadata map[string]string) (err error) {
	//nolint:gosec // G304: path is chosen by the caller.
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "failed to close file")
		}
	}()

	return Write(file, entries, metadata)
}

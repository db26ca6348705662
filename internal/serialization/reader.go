package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"io"
	"maps"
	"os"

	"github.com/pkg/errors"
)

// File is the decoded content of a SafeTensors file.
type File struct {
	Header   Header
	Metadata map[string]string // caller metadata, without the checksum
	Entries  map[string]Entry
}

// Names returns the array names in sorted order.
func (f *File) Names() []string {
	return f.Header.Names()
}

// Entry returns the named array entry.
func (f *File) Entry(name string) (Entry, error) {
	e, ok := f.Entries[name]
	if !ok {
		return Entry{}, errors.Wrapf(ErrNotFound, "%q", name)
	}
	return e, nil
}

// Read decodes a SafeTensors stream. The header is validated before any array
// data is sliced, and the checksum is verified when the header carries one.
func Read(r io.Reader) (*File, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, errors.Wrap(err, "failed to read header size")
	}
	if headerSize > MaxHeaderSize {
		return nil, errors.Wrapf(ErrHeaderTooLarge, "%d bytes, max %d", headerSize, MaxHeaderSize)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, errors.Wrap(err, "failed to read header")
	}
	var header Header
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, errors.Wrap(err, "failed to parse header JSON")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read array data")
	}
	if err := ValidateHeader(&header, int64(len(data))); err != nil {
		return nil, err
	}
	if stored, ok := header.Metadata[checksumKey]; ok {
		if err := ValidateChecksum(data, stored); err != nil {
			return nil, err
		}
	}

	f := &File{
		Header:   header,
		Metadata: maps.Clone(header.Metadata),
		Entries:  make(map[string]Entry, len(header.Arrays)),
	}
	delete(f.Metadata, checksumKey)

	for name, info := range header.Arrays {
		dt, err := parseDTypeTag(info.DType)
		if err != nil {
			return nil, errors.Wrapf(err, "array %q", name)
		}
		e := Entry{
			DType: dt,
			Shape: append([]int{}, info.Shape...),
			Data:  data[info.DataOffsets[0]:info.DataOffsets[1]],
		}
		if err := e.validate(); err != nil {
			return nil, errors.Wrapf(err, "array %q", name)
		}
		f.Entries[name] = e
	}
	return f, nil
}

// ReadFile reads and decodes the SafeTensors file at path.
func ReadFile(path string) (*File, error) {
	//nolint:gosec // G304: path is chosen by the caller.
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer func() {
		_ = file.Close() // Read-only; close errors carry no information.
	}()

	return Read(bufio.NewReader(file))
}

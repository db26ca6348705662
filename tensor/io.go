// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"io"

	"github.com/born-ml/ndarray/internal/serialization"
	"github.com/pkg/errors"
)

// Save writes the named arrays to w in SafeTensors format. Only the visible
// elements of each view are stored.
func Save[T Numeric](w io.Writer, arrays map[string]*Array[T], metadata map[string]string) error {
	return serialization.Write(w, encodeAll(arrays), metadata)
}

// SaveFile writes the named arrays to a new SafeTensors file at path.
func SaveFile[T Numeric](path string, arrays map[string]*Array[T], metadata map[string]string) error {
	return serialization.WriteFile(path, encodeAll(arrays), metadata)
}

// Load reads every array from a SafeTensors stream. All stored arrays must
// have element type T. Loaded arrays are independent base arrays.
func Load[T Numeric](r io.Reader) (map[string]*Array[T], map[string]string, error) {
	f, err := serialization.Read(r)
	if err != nil {
		return nil, nil, err
	}
	return decodeAll[T](f)
}

// LoadFile reads every array from the SafeTensors file at path.
func LoadFile[T Numeric](path string) (map[string]*Array[T], map[string]string, error) {
	f, err := serialization.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return decodeAll[T](f)
}

func encodeAll[T Numeric](arrays map[string]*Array[T]) map[string]serialization.Entry {
	entries := make(map[string]serialization.Entry, len(arrays))
	for name, a := range arrays {
		entries[name] = serialization.Encode(a)
	}
	return entries
}

func decodeAll[T Numeric](f *serialization.File) (map[string]*Array[T], map[string]string, error) {
	arrays := make(map[string]*Array[T], len(f.Entries))
	for _, name := range f.Names() {
		a, err := serialization.Decode[T](f.Entries[name])
		if err != nil {
			return nil, nil, errors.Wrapf(err, "array %q", name)
		}
		arrays[name] = a
	}
	return arrays, f.Metadata, nil
}

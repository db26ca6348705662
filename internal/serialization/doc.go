// Package serialization stores named arrays in the SafeTensors format.
//
// SafeTensors is the file layout used by HuggingFace models:
//
//	[8 bytes: header size (uint64 LE)]
//	[header: JSON object]
//	[array data: raw little-endian bytes]
//
// The header maps each array name to its dtype, shape and byte range in the
// data section. The reserved "__metadata__" key carries string metadata; the
// writer records a SHA-256 checksum of the data section there and the reader
// verifies it when present.
//
// Only the visible elements of a view are written, densely and in row-major
// order. Loaded arrays are always base arrays.
//
// Example usage:
//
//	entries := map[string]serialization.Entry{
//	    "weights": serialization.Encode(weights),
//	}
//	if err := serialization.WriteFile("arrays.safetensors", entries, nil); err != nil {
//	    log.Fatal(err)
//	}
//
//	f, err := serialization.ReadFile("arrays.safetensors")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	weights, err := serialization.Decode[float64](f.Entries["weights"])
package serialization

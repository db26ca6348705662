// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/serialization"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Errors returned by array operations. Match them with errors.Is.
var (
	ErrArityMismatch    = tensor.ErrArityMismatch
	ErrInvalidRange     = tensor.ErrInvalidRange
	ErrShapeMismatch    = tensor.ErrShapeMismatch
	ErrIndexOutOfRange  = tensor.ErrIndexOutOfRange
	ErrBadShape         = tensor.ErrBadShape
	ErrInvalidTolerance = cpu.ErrInvalidTolerance
)

// Errors returned by Load and Save.
var (
	ErrChecksumMismatch = serialization.ErrChecksumMismatch
	ErrHeaderTooLarge   = serialization.ErrHeaderTooLarge
	ErrUnsupportedDType = serialization.ErrUnsupportedDType
	ErrDTypeMismatch    = serialization.ErrDTypeMismatch
)

// ValidationError reports a malformed SafeTensors header or array name.
type ValidationError = serialization.ValidationError

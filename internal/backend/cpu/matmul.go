package cpu

import (
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
	"github.com/pkg/errors"
)

// Product is the outcome of MatMul: a scalar for the vector strategies,
// an Array for the matrix ones.
type Product[T tensor.Numeric] struct {
	Kind   tensor.MatMulKind
	Scalar T
	Array  *tensor.Array[T]
}

// IsScalar reports whether the product is a scalar.
func (p Product[T]) IsScalar() bool {
	return p.Kind.ScalarResult()
}

// MatMul multiplies a by b using the strategy chosen by tensor.SelectMatMul:
//
//	rank 1 @ rank 1, both unsliced    -> VectorDot          (scalar)
//	rank 1 @ rank 1, either sliced    -> SliceContraction   (scalar)
//	rank 2 @ rank 2, both unsliced    -> DenseMatMul        (rank 2)
//	rank >= 2 @ rank >= 2, otherwise  -> GeneralContraction (rank Ma+Mb-2)
func MatMul[T tensor.Numeric](a, b *tensor.Array[T]) (Product[T], error) {
	kind, err := tensor.SelectMatMul(a, b)
	if err != nil {
		return Product[T]{}, err
	}

	p := Product[T]{Kind: kind}
	switch kind {
	case tensor.VectorDot:
		p.Scalar, err = VectorDot(a, b)
	case tensor.SliceContraction:
		p.Scalar, err = SliceContraction(a, b)
	case tensor.DenseMatMul:
		p.Array, err = DenseMatMul(a, b)
	case tensor.GeneralContraction:
		p.Array, err = GeneralContraction(a, b)
	default:
		err = errors.Errorf("matmul: unknown strategy %v", kind)
	}
	if err != nil {
		return Product[T]{}, err
	}
	return p, nil
}

// VectorDot returns the dot product of two unsliced rank-1 arrays, computed
// over their whole buffers.
func VectorDot[T tensor.Numeric](a, b *tensor.Array[T]) (T, error) {
	if kind, err := tensor.SelectMatMul(a, b); err != nil || kind != tensor.VectorDot {
		return 0, errors.Wrapf(tensor.ErrShapeMismatch, "vector dot: requires unsliced rank-1 operands, got %v and %v", a, b)
	}
	x, y := a.Data(), b.Data()
	if len(x) != len(y) {
		return 0, errors.Wrapf(tensor.ErrShapeMismatch, "vector dot: length %d vs %d", len(x), len(y))
	}

	var sum T
	for i := range x {
		sum += x[i] * y[i]
	}
	return sum, nil
}

// DenseMatMul multiplies two unsliced rank-2 arrays straight from their buffers.
// (M, K) @ (K, N) -> (M, N), C[i,j] = sum_k A[i,k] * B[k,j].
func DenseMatMul[T tensor.Numeric](a, b *tensor.Array[T]) (*tensor.Array[T], error) {
	if kind, err := tensor.SelectMatMul(a, b); err != nil || kind != tensor.DenseMatMul {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch, "dense matmul: requires unsliced rank-2 operands, got %v and %v", a, b)
	}

	aShape, bShape := a.Shape(), b.Shape()
	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]
	if k != kAlt {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch, "dense matmul: [%d,%d] @ [%d,%d]", m, k, kAlt, n)
	}

	c := make([]T, m*n)
	matmulDense(c, a.Data(), b.Data(), m, k, n)
	return tensor.Owned(c, tensor.Shape{m, n}), nil
}

// matmulDense performs row-parallel naive matrix multiplication.
func matmulDense[T tensor.Numeric](c, a, b []T, m, k, n int) {
	cfg := ParallelConfig()
	// Each row costs k*n multiply-adds; scale the chunk floor accordingly.
	cfg.MinChunkSize = max(1, cfg.MinChunkSize/max(1, k*n))
	parallel.ForChunks(m, func(rs, re int) {
		for i := rs; i < re; i++ {
			row := a[i*k : (i+1)*k]
			for j := 0; j < n; j++ {
				var sum T
				for kIdx, av := range row {
					sum += av * b[kIdx*n+j]
				}
				c[i*n+j] = sum
			}
		}
	}, cfg)
}

// Package poly implements dense univariate polynomials over the
// BLS12-381 scalar field: Lagrange basis polynomials over a radix-2
// evaluation domain and division by the vanishing polynomial of that
// domain.
package poly

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/dealerfree/stkzg/curve"
)

// ErrDomainUnavailable is returned when no radix-2 evaluation domain
// exists for a requested size.
var ErrDomainUnavailable = errors.New("poly: no radix-2 evaluation domain for size")

// Domain is a radix-2 multiplicative subgroup D = {ω⁰, …, ωⁿ⁻¹} of the
// BLS12-381 scalar field.
type Domain struct {
	Size         uint64
	Generator    *curve.Scalar // ω, a primitive Size-th root of unity
	GeneratorInv *curve.Scalar
	SizeInv      *curve.Scalar
}

// primitiveRootCandidate generates the full multiplicative group of F,
// so primitiveRootCandidate^((r-1)/size) is a primitive size-th root
// of unity whenever size divides r-1.
var primitiveRootCandidate = big.NewInt(7)

// NewDomain builds the evaluation domain of the given size. It rejects
// any size that is not a power of two dividing F's multiplicative
// order.
func NewDomain(size uint64) (*Domain, error) {
	if size == 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: %d is not a power of two", ErrDomainUnavailable, size)
	}
	orderMinus1 := new(big.Int).Sub(curve.Order, big.NewInt(1))
	sizeBig := new(big.Int).SetUint64(size)
	q, r := new(big.Int).QuoRem(orderMinus1, sizeBig, new(big.Int))
	if r.Sign() != 0 {
		return nil, fmt.Errorf("%w: %d does not divide the field order", ErrDomainUnavailable, size)
	}

	gen := curve.ScalarFromBigInt(new(big.Int).Exp(primitiveRootCandidate, q, curve.Order))
	if gen.IsZero() {
		return nil, fmt.Errorf("%w: degenerate generator for %d", ErrDomainUnavailable, size)
	}
	genInv, err := new(curve.Scalar).Inverse(gen)
	if err != nil {
		return nil, err
	}
	sizeInv, err := new(curve.Scalar).Inverse(curve.ScalarFromBigInt(sizeBig))
	if err != nil {
		return nil, err
	}
	return &Domain{Size: size, Generator: gen, GeneratorInv: genInv, SizeInv: sizeInv}, nil
}

// Element returns ω^i, the i-th point of the domain.
func (d *Domain) Element(i uint64) *curve.Scalar {
	e := new(big.Int).Exp(d.Generator.BigInt(), new(big.Int).SetUint64(i%d.Size), curve.Order)
	return curve.ScalarFromBigInt(e)
}

// Elements returns the full ordered domain {ω⁰, …, ωⁿ⁻¹}.
func (d *Domain) Elements() []*curve.Scalar {
	out := make([]*curve.Scalar, d.Size)
	cur := curve.One()
	for i := range out {
		out[i] = cur.Clone()
		cur = new(curve.Scalar).Mul(cur, d.Generator)
	}
	return out
}

// log2 returns the base-2 logarithm of a power of two.
func log2(n uint64) uint { return uint(bits.Len64(n) - 1) }

package curve

import (
	"errors"

	bls12381 "github.com/kilic/bls12-381"
)

// G1Bytes is the uncompressed affine encoding length of a G1 point.
const G1Bytes = 96

var g1 = bls12381.NewG1()

// G1 is a point on the BLS12-381 G1 curve subgroup.
type G1 struct {
	p *bls12381.PointG1
}

// G1Generator returns the canonical generator g of G1.
func G1Generator() *G1 {
	return &G1{p: g1.One()}
}

// G1Zero returns the identity element of G1.
func G1Zero() *G1 {
	return &G1{p: g1.Zero()}
}

// Clone returns an independent copy of a.
func (a *G1) Clone() *G1 {
	r := g1.New()
	r.Set(a.p)
	return &G1{p: r}
}

// Add sets a = x + y and returns a.
func (a *G1) Add(x, y *G1) *G1 {
	if a.p == nil {
		a.p = g1.New()
	}
	g1.Add(a.p, x.p, y.p)
	return a
}

// Neg sets a = -x and returns a.
func (a *G1) Neg(x *G1) *G1 {
	if a.p == nil {
		a.p = g1.New()
	}
	g1.Neg(a.p, x.p)
	return a
}

// Sub sets a = x - y and returns a.
func (a *G1) Sub(x, y *G1) *G1 {
	if a.p == nil {
		a.p = g1.New()
	}
	g1.Sub(a.p, x.p, y.p)
	return a
}

// ScalarMul sets a = e*x and returns a.
func (a *G1) ScalarMul(x *G1, e *Scalar) *G1 {
	if a.p == nil {
		a.p = g1.New()
	}
	g1.MulScalarBig(a.p, x.p, e.BigInt())
	return a
}

// IsZero reports whether a is the identity of G1.
func (a *G1) IsZero() bool {
	return g1.IsZero(a.p)
}

// Equal reports whether a and b represent the same point.
func (a *G1) Equal(b *G1) bool {
	return g1.Equal(a.p, b.p)
}

// Bytes encodes a in uncompressed affine form (96 bytes).
func (a *G1) Bytes() []byte {
	return g1.ToUncompressed(a.p)
}

// G1FromBytes decodes an uncompressed affine G1 point and checks that
// it lies in the correct subgroup.
func G1FromBytes(b []byte) (*G1, error) {
	if len(b) != G1Bytes {
		return nil, errors.New("curve: G1 point must be 96 bytes")
	}
	p, err := g1.FromUncompressed(b)
	if err != nil {
		return nil, err
	}
	if !g1.InCorrectSubgroup(p) {
		return nil, errors.New("curve: G1 point not in correct subgroup")
	}
	return &G1{p: p}, nil
}

// MultiScalarMul computes sum(coeffs[i] * points[i]) in G1.
func MultiScalarMul(points []*G1, coeffs []*Scalar) (*G1, error) {
	if len(points) != len(coeffs) {
		return nil, errors.New("curve: MultiScalarMul length mismatch")
	}
	acc := G1Zero()
	var tmp G1
	for i := range points {
		tmp.ScalarMul(points[i], coeffs[i])
		acc.Add(acc, &tmp)
	}
	return acc, nil
}

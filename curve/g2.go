package curve

import (
	"errors"

	bls12381 "github.com/kilic/bls12-381"
)

// G2Bytes is the uncompressed affine encoding length of a G2 point.
const G2Bytes = 192

var g2 = bls12381.NewG2()

// G2 is a point on the BLS12-381 G2 curve subgroup.
type G2 struct {
	p *bls12381.PointG2
}

// G2Generator returns the canonical generator h of G2.
func G2Generator() *G2 {
	return &G2{p: g2.One()}
}

// G2Zero returns the identity element of G2.
func G2Zero() *G2 {
	return &G2{p: g2.Zero()}
}

// Clone returns an independent copy of a.
func (a *G2) Clone() *G2 {
	r := g2.New()
	r.Set(a.p)
	return &G2{p: r}
}

// Add sets a = x + y and returns a.
func (a *G2) Add(x, y *G2) *G2 {
	if a.p == nil {
		a.p = g2.New()
	}
	g2.Add(a.p, x.p, y.p)
	return a
}

// Neg sets a = -x and returns a.
func (a *G2) Neg(x *G2) *G2 {
	if a.p == nil {
		a.p = g2.New()
	}
	g2.Neg(a.p, x.p)
	return a
}

// Sub sets a = x - y and returns a.
func (a *G2) Sub(x, y *G2) *G2 {
	if a.p == nil {
		a.p = g2.New()
	}
	g2.Sub(a.p, x.p, y.p)
	return a
}

// ScalarMul sets a = e*x and returns a.
func (a *G2) ScalarMul(x *G2, e *Scalar) *G2 {
	if a.p == nil {
		a.p = g2.New()
	}
	g2.MulScalarBig(a.p, x.p, e.BigInt())
	return a
}

// IsZero reports whether a is the identity of G2.
func (a *G2) IsZero() bool {
	return g2.IsZero(a.p)
}

// Equal reports whether a and b represent the same point.
func (a *G2) Equal(b *G2) bool {
	return g2.Equal(a.p, b.p)
}

// Bytes encodes a in uncompressed affine form (192 bytes).
func (a *G2) Bytes() []byte {
	return g2.ToUncompressed(a.p)
}

// G2FromBytes decodes an uncompressed affine G2 point and checks that
// it lies in the correct subgroup.
func G2FromBytes(b []byte) (*G2, error) {
	if len(b) != G2Bytes {
		return nil, errors.New("curve: G2 point must be 192 bytes")
	}
	p, err := g2.FromUncompressed(b)
	if err != nil {
		return nil, err
	}
	if !g2.InCorrectSubgroup(p) {
		return nil, errors.New("curve: G2 point not in correct subgroup")
	}
	return &G2{p: p}, nil
}

// MultiScalarMulG2 computes sum(coeffs[i] * points[i]) in G2.
func MultiScalarMulG2(points []*G2, coeffs []*Scalar) (*G2, error) {
	if len(points) != len(coeffs) {
		return nil, errors.New("curve: MultiScalarMulG2 length mismatch")
	}
	acc := G2Zero()
	var tmp G2
	for i := range points {
		tmp.ScalarMul(points[i], coeffs[i])
		acc.Add(acc, &tmp)
	}
	return acc, nil
}

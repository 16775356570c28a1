// Package curve isolates every BLS12-381 group and field operation the
// rest of this module needs behind a small set of types. It wraps
// github.com/kilic/bls12-381 for the G1/G2/GT arithmetic and pairing,
// and does scalar field arithmetic with math/big against the known
// group order rather than reaching into the curve library's internal
// field type.
package curve

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// ScalarBytes is the canonical uncompressed little-endian encoding
// length of a scalar field element.
const ScalarBytes = 32

// Order is the prime order of the BLS12-381 scalar field F.
var Order, _ = new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// Scalar is an element of F, always kept reduced modulo Order.
type Scalar struct {
	v big.Int
}

// NewScalarFromUint64 builds a Scalar from a small non-negative integer.
func NewScalarFromUint64(x uint64) *Scalar {
	s := &Scalar{}
	s.v.SetUint64(x)
	return s
}

// RandomScalar samples a uniform non-zero element of F using rng.
func RandomScalar(rng io.Reader) (*Scalar, error) {
	for i := 0; i < 256; i++ {
		buf := make([]byte, ScalarBytes+8) // extra bytes to flatten modular bias
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, err
		}
		v := new(big.Int).SetBytes(buf)
		v.Mod(v, Order)
		if v.Sign() != 0 {
			return &Scalar{v: *v}, nil
		}
	}
	return nil, errors.New("curve: failed to sample a non-zero scalar")
}

// CSPRNG returns the default production randomness source.
func CSPRNG() io.Reader { return rand.Reader }

// Zero returns the additive identity.
func Zero() *Scalar { return &Scalar{} }

// One returns the multiplicative identity.
func One() *Scalar { return NewScalarFromUint64(1) }

// Set copies a into s and returns s.
func (s *Scalar) Set(a *Scalar) *Scalar {
	s.v.Set(&a.v)
	return s
}

// Clone returns an independent copy of s.
func (s *Scalar) Clone() *Scalar {
	return new(Scalar).Set(s)
}

// IsZero reports whether s is the additive identity.
func (s *Scalar) IsZero() bool {
	return s.v.Sign() == 0
}

// Equal reports whether s and a represent the same field element.
func (s *Scalar) Equal(a *Scalar) bool {
	return s.v.Cmp(&a.v) == 0
}

// Add sets s = a + b and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.v.Add(&a.v, &b.v)
	s.v.Mod(&s.v, Order)
	return s
}

// Sub sets s = a - b and returns s.
func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	s.v.Sub(&a.v, &b.v)
	s.v.Mod(&s.v, Order)
	return s
}

// Mul sets s = a * b and returns s.
func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	s.v.Mul(&a.v, &b.v)
	s.v.Mod(&s.v, Order)
	return s
}

// Neg sets s = -a and returns s.
func (s *Scalar) Neg(a *Scalar) *Scalar {
	s.v.Neg(&a.v)
	s.v.Mod(&s.v, Order)
	return s
}

// Inverse sets s = a^-1 and returns s, or returns an error if a is zero.
func (s *Scalar) Inverse(a *Scalar) (*Scalar, error) {
	if a.IsZero() {
		return nil, errors.New("curve: inverse of zero scalar")
	}
	s.v.ModInverse(&a.v, Order)
	return s, nil
}

// Exp sets s = a^e (e a non-negative exponent, not reduced mod Order-1)
// and returns s.
func (s *Scalar) Exp(a *Scalar, e *big.Int) *Scalar {
	s.v.Exp(&a.v, e, Order)
	return s
}

// BigInt returns the canonical non-negative big.Int representative of s.
func (s *Scalar) BigInt() *big.Int {
	return new(big.Int).Set(&s.v)
}

// ScalarFromBigInt reduces x modulo Order into a Scalar.
func ScalarFromBigInt(x *big.Int) *Scalar {
	s := &Scalar{}
	s.v.Mod(x, Order)
	return s
}

// Bytes encodes s as 32-byte little-endian canonical bytes.
func (s *Scalar) Bytes() []byte {
	be := s.v.FillBytes(make([]byte, ScalarBytes))
	out := make([]byte, ScalarBytes)
	for i := range be {
		out[ScalarBytes-1-i] = be[i]
	}
	return out
}

// ScalarFromBytes decodes a 32-byte little-endian encoding into a Scalar.
// It rejects inputs that do not reduce to a canonical element (>= Order).
func ScalarFromBytes(b []byte) (*Scalar, error) {
	if len(b) != ScalarBytes {
		return nil, errors.New("curve: scalar must be 32 bytes")
	}
	be := make([]byte, ScalarBytes)
	for i := range b {
		be[ScalarBytes-1-i] = b[i]
	}
	v := new(big.Int).SetBytes(be)
	if v.Cmp(Order) >= 0 {
		return nil, errors.New("curve: scalar is not canonically reduced")
	}
	return &Scalar{v: *v}, nil
}

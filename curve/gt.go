package curve

import (
	"errors"

	bls12381 "github.com/kilic/bls12-381"
)

// GTBytes is the uncompressed encoding length of a GT (target group)
// element.
const GTBytes = 576

var gt = bls12381.NewGT()

// GT is an element of the pairing target group.
type GT struct {
	e *bls12381.E
}

// Pair computes the single pairing e(a, b).
func Pair(a *G1, b *G2) *GT {
	eng := bls12381.NewEngine()
	eng.AddPair(a.p, b.p)
	return &GT{e: eng.Result()}
}

// MultiPair computes the product prod_i e(as[i], bs[i]).
func MultiPair(as []*G1, bs []*G2) (*GT, error) {
	if len(as) != len(bs) {
		return nil, errors.New("curve: MultiPair length mismatch")
	}
	eng := bls12381.NewEngine()
	for i := range as {
		eng.AddPair(as[i].p, bs[i].p)
	}
	return &GT{e: eng.Result()}, nil
}

// PairingProductIsOne reports whether prod_i e(as[i], bs[i]) == 1,
// without fully forming the GT element — used for identities where
// only the boolean check matters.
func PairingProductIsOne(as []*G1, bs []*G2) bool {
	eng := bls12381.NewEngine()
	for i := range as {
		eng.AddPair(as[i].p, bs[i].p)
	}
	return eng.Check()
}

// GTOne returns the identity element of GT.
func GTOne() *GT {
	return &GT{e: gt.New()}
}

// IsOne reports whether a is the identity of GT.
func (a *GT) IsOne() bool {
	return a.e.IsOne()
}

// Exp sets r = a^e and returns r.
func (r *GT) Exp(a *GT, e *Scalar) *GT {
	if r.e == nil {
		r.e = gt.New()
	}
	gt.Exp(r.e, a.e, e.BigInt())
	return r
}

// Mul sets r = a*b (the GT group operation) and returns r.
func (r *GT) Mul(a, b *GT) *GT {
	if r.e == nil {
		r.e = gt.New()
	}
	gt.Mul(r.e, a.e, b.e)
	return r
}

// Inverse sets r = a^-1 and returns r.
func (r *GT) Inverse(a *GT) *GT {
	if r.e == nil {
		r.e = gt.New()
	}
	gt.Inverse(r.e, a.e)
	return r
}

// Equal reports whether a and b represent the same GT element.
func (a *GT) Equal(b *GT) bool {
	return a.e.Equal(b.e)
}

// Bytes encodes a in uncompressed form (576 bytes).
func (a *GT) Bytes() []byte {
	return gt.ToBytes(a.e)
}

// GTFromBytes decodes an uncompressed GT element.
func GTFromBytes(b []byte) (*GT, error) {
	if len(b) != GTBytes {
		return nil, errors.New("curve: GT element must be 576 bytes")
	}
	e, err := gt.FromBytes(b)
	if err != nil {
		return nil, err
	}
	return &GT{e: e}, nil
}

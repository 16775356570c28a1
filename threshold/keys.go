// Package threshold implements dealer-free threshold key encapsulation
// over BLS12-381. Each committee member independently samples a secret
// and publishes commitments to it against a shared powers-of-tau
// setup; the individual public keys aggregate into a single encryption
// key, and any t members can later reconstruct an encapsulated
// target-group element from their partial decryptions.
package threshold

import (
	"fmt"
	"io"

	"github.com/dealerfree/stkzg/curve"
	"github.com/dealerfree/stkzg/kzg"
	"github.com/dealerfree/stkzg/poly"
)

// SecretKey is a committee member's secret scalar.
type SecretKey struct {
	sk *curve.Scalar
}

// NewSecretKey samples a uniform non-zero secret from rng.
func NewSecretKey(rng io.Reader) (*SecretKey, error) {
	sk, err := curve.RandomScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("threshold: sampling secret key: %w", err)
	}
	return &SecretKey{sk: sk}, nil
}

// Nullify sets the secret to one, turning the owner into a
// non-contributing committee member.
func (s *SecretKey) Nullify() {
	s.sk = curve.One()
}

// Zeroize overwrites the secret scalar. The key is unusable afterwards.
func (s *SecretKey) Zeroize() {
	s.sk = curve.Zero()
}

// PublicKey carries the commitments party i publishes for a committee
// of size n. With Lᵢ the party's Lagrange basis polynomial over the
// size-n evaluation domain and Z(X) = Xⁿ-1 its vanishing polynomial:
//
//	BlsPK       = sk·g
//	SkLi        = [sk·Lᵢ(τ)]₁
//	SkLiMinus0  = [sk·(Lᵢ(τ) - Lᵢ(0))]₁
//	SkLiByTau   = [sk·(Lᵢ(τ) - Lᵢ(0))/τ]₁
//	SkLiByZ[j]  = [sk·(Lⱼ·Lᵢ - δᵢⱼ·Lᵢ)(τ)/Z(τ)]₁
type PublicKey struct {
	ID         uint64
	BlsPK      *curve.G1
	SkLi       *curve.G1
	SkLiMinus0 *curve.G1
	SkLiByTau  *curve.G1
	SkLiByZ    []*curve.G1
}

// PublicKey derives the public commitments for party id in a committee
// of size n. n must admit a radix-2 evaluation domain and the
// parameters must cover degree n.
func (s *SecretKey) PublicKey(id uint64, params *kzg.UniversalParams, n uint64) (*PublicKey, error) {
	if id >= n {
		return nil, fmt.Errorf("%w: party id %d out of range for committee of %d", ErrShapeMismatch, id, n)
	}
	domain, err := poly.NewDomain(n)
	if err != nil {
		return nil, err
	}
	li, err := poly.LagrangePoly(domain, id)
	if err != nil {
		return nil, err
	}

	skLiByZ := make([]*curve.G1, n)
	for j := uint64(0); j < n; j++ {
		var num *poly.Polynomial
		if j == id {
			num = li.Mul(li).Sub(li)
		} else {
			lj, err := poly.LagrangePoly(domain, j)
			if err != nil {
				return nil, err
			}
			num = lj.Mul(li)
		}
		// The numerator vanishes on the whole domain, so the division
		// must be exact.
		quot, rem, err := poly.DivideByVanishing(num, n)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if rem.Degree() >= 0 {
			return nil, fmt.Errorf("%w: non-zero remainder dividing L_%d·L_%d by the vanishing polynomial", ErrInternal, j, id)
		}
		com, err := kzg.CommitG1(params, quot.Scale(s.sk))
		if err != nil {
			return nil, err
		}
		skLiByZ[j] = com
	}

	skLiByTau, err := kzg.CommitG1(params, li.ShiftedDownByOne().Scale(s.sk))
	if err != nil {
		return nil, err
	}
	skLi, err := kzg.CommitG1(params, li.Scale(s.sk))
	if err != nil {
		return nil, err
	}
	skLiMinus0, err := kzg.CommitG1(params, li.WithZeroConstantTerm().Scale(s.sk))
	if err != nil {
		return nil, err
	}

	return &PublicKey{
		ID:         id,
		BlsPK:      new(curve.G1).ScalarMul(curve.G1Generator(), s.sk),
		SkLi:       skLi,
		SkLiMinus0: skLiMinus0,
		SkLiByTau:  skLiByTau,
		SkLiByZ:    skLiByZ,
	}, nil
}

// PartialDecrypt produces the owner's contribution sk·gamma_g2 for the
// given ciphertext.
func (s *SecretKey) PartialDecrypt(ct *Ciphertext) *curve.G2 {
	return new(curve.G2).ScalarMul(ct.GammaG2, s.sk)
}

package threshold

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/dealerfree/stkzg/curve"
	"github.com/dealerfree/stkzg/kzg"
	"github.com/dealerfree/stkzg/poly"
)

// VerifyShare checks a partial decryption against its owner's BLS
// public key: bilinearity gives e(g, sk·gamma_g2) = e(sk·g, gamma_g2)
// exactly when the share was produced with the committed secret.
func VerifyShare(partial *curve.G2, pk *PublicKey, ct *Ciphertext) bool {
	negG := new(curve.G1).Neg(curve.G1Generator())
	return curve.PairingProductIsOne(
		[]*curve.G1{pk.BlsPK, negG},
		[]*curve.G2{ct.GammaG2, partial},
	)
}

// Decrypt combines the partial decryptions of the contributing set
// marked in selector into the target-group element encapsulated by ct.
//
// Writing S for the contributing set, sk(X) = Σᵢ skᵢ·Lᵢ(X), and λⱼ for
// the Lagrange interpolation-at-zero weights over {ωʲ : j ∈ S}, the
// decryptor forms
//
//	π  = Σⱼ∈S λⱼ·πⱼ                      (combined partial)
//	U  = Σⱼ∈S λⱼ·pkⱼ.SkLi                = [u_S(τ)]₁, u_S = Σ λⱼ·skⱼ·Lⱼ
//	W  = Σⱼ∈S λⱼ·pkⱼ.SkLiByTau           = [(u_S(τ) - u_S(0))/τ]₁
//	Q  = Σⱼ∈S λⱼ·AggSkLiByZ[j]           = [(sk·L_S - u_S)(τ)/Z(τ)]₁
//	L_S = Σⱼ∈S λⱼ·Lⱼ,  B = Πⱼ∉S (X - ωʲ)
//
// and checks a pairing product built from these and the ciphertext
// that collapses to the identity exactly when every contribution is
// consistent; dividing it out of EncKey yields the encapsulated
// e(g,h)^(sγ).
func Decrypt(partials []*curve.G2, ct *Ciphertext, selector []bool, aggKey *AggregateKey, params *kzg.UniversalParams) (*curve.GT, error) {
	n := len(aggKey.PK)
	if len(partials) != n || len(selector) != n {
		return nil, fmt.Errorf("%w: %d partials, %d selector entries for committee of %d", ErrShapeMismatch, len(partials), len(selector), n)
	}

	var contributors, absent []uint64
	for j := 0; j < n; j++ {
		if selector[j] {
			contributors = append(contributors, uint64(j))
		} else {
			absent = append(absent, uint64(j))
		}
	}
	if uint64(len(contributors)) < ct.T {
		return nil, fmt.Errorf("%w: threshold %d, provided %d", ErrInsufficientShares, ct.T, len(contributors))
	}

	domain, err := poly.NewDomain(uint64(n))
	if err != nil {
		return nil, err
	}

	for _, j := range contributors {
		if partials[j] == nil {
			return nil, fmt.Errorf("%w: missing partial at index %d", ErrShapeMismatch, j)
		}
		if !VerifyShare(partials[j], aggKey.PK[j], ct) {
			return nil, fmt.Errorf("%w: index %d", ErrInvalidShare, j)
		}
	}

	weights, err := poly.LagrangeWeights(domain, contributors)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	pi := curve.G2Zero()
	u := curve.G1Zero()
	w := curve.G1Zero()
	q := curve.G1Zero()
	lsEvals := make([]*curve.Scalar, n)
	for k := range lsEvals {
		lsEvals[k] = curve.Zero()
	}
	for i, j := range contributors {
		lam := weights[i]
		pi = new(curve.G2).Add(pi, new(curve.G2).ScalarMul(partials[j], lam))
		u = new(curve.G1).Add(u, new(curve.G1).ScalarMul(aggKey.PK[j].SkLi, lam))
		w = new(curve.G1).Add(w, new(curve.G1).ScalarMul(aggKey.PK[j].SkLiByTau, lam))
		q = new(curve.G1).Add(q, new(curve.G1).ScalarMul(aggKey.AggSkLiByZ[j], lam))
		lsEvals[j] = lam
	}

	lsCoeffs, err := domain.IFFT(lsEvals)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	lsG2, err := kzg.CommitG2(params, poly.NewPolynomial(lsCoeffs))
	if err != nil {
		return nil, err
	}

	// B(τ) in both groups, plus the degree-shifted [τ^t·B(τ)]₁, whose
	// degree t + n - |S| is at most n since |S| >= t was checked above.
	b := poly.VanishingOn(domain, absent)
	bG1, err := kzg.CommitG1(params, b)
	if err != nil {
		return nil, err
	}
	bG2, err := kzg.CommitG2(params, b)
	if err != nil {
		return nil, err
	}
	shiftedB, err := kzg.CommitG1Shifted(params, b, ct.T)
	if err != nil {
		return nil, err
	}
	aG2, err := kzg.CommitG2(params, poly.VanishingOn(domain, contributors))
	if err != nil {
		return nil, err
	}

	g := params.PowersOfG[0]
	gByN := new(curve.G1).ScalarMul(g, domain.SizeInv)

	// Four identities, multiplied into one product. Negating the G1
	// side of a pair inverts its pairing, so each identity contributes
	// its left side minus its right side to the exponent:
	//
	//	e(sa1[0], [L_S(τ)]₂) = e(U, sa2[1]) · e(Q, sa2[0])
	//	e(U, sa2[2])         = e(W, sa2[4]) · e(g/n, π)
	//	e(sa1[2], [B(τ)]₂)   = e([τ^t·B(τ)]₁, sa2[1])
	//	e([B(τ)]₁, [A(τ)]₂)  = e(g, z_g2)
	residual, err := curve.MultiPair(
		[]*curve.G1{
			ct.SA1[0],
			new(curve.G1).Neg(u),
			new(curve.G1).Neg(q),
			u,
			new(curve.G1).Neg(w),
			new(curve.G1).Neg(gByN),
			ct.SA1[2],
			new(curve.G1).Neg(shiftedB),
			bG1,
			new(curve.G1).Neg(g),
		},
		[]*curve.G2{
			lsG2,
			ct.SA2[1],
			ct.SA2[0],
			ct.SA2[2],
			ct.SA2[4],
			pi,
			bG2,
			ct.SA2[1],
			aG2,
			aggKey.ZG2,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !residual.IsOne() {
		return nil, fmt.Errorf("%w: aggregate pairing check failed", ErrInvalidShare)
	}

	log.Debug().Int("committee", n).Uint64("threshold", ct.T).Int("contributors", len(contributors)).Msg("threshold decryption complete")
	return new(curve.GT).Mul(ct.EncKey, new(curve.GT).Inverse(residual)), nil
}

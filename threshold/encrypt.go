package threshold

import (
	"fmt"
	"io"

	"github.com/dealerfree/stkzg/curve"
	"github.com/dealerfree/stkzg/kzg"
)

// Ciphertext encapsulates a fresh target-group key EncKey under a
// t-of-n policy. GammaG2 is what committee members multiply by their
// secrets; SA1 and SA2 tie the ephemeral secrets to the aggregate key,
// the threshold, and the evaluation domain.
type Ciphertext struct {
	GammaG2 *curve.G2
	SA1     [4]*curve.G1
	SA2     [6]*curve.G2
	EncKey  *curve.GT
	T       uint64
}

// Encrypt samples ephemeral scalars s and γ from rng and binds them to
// the aggregate key and the threshold t. The encapsulated key is
// e(g,h)^(sγ).
func Encrypt(aggKey *AggregateKey, t uint64, params *kzg.UniversalParams, rng io.Reader) (*Ciphertext, error) {
	n := uint64(len(aggKey.PK))
	if t < 1 || t > n {
		return nil, fmt.Errorf("%w: threshold %d out of range [1, %d]", ErrShapeMismatch, t, n)
	}
	if n >= uint64(len(params.PowersOfG)) {
		return nil, fmt.Errorf("%w: committee of %d exceeds %d trusted powers", ErrShapeMismatch, n, len(params.PowersOfG))
	}

	s, err := curve.RandomScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("threshold: sampling s: %w", err)
	}
	gamma, err := curve.RandomScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("threshold: sampling gamma: %w", err)
	}

	g := params.PowersOfG[0]
	h := params.PowersOfH[0]
	gammaG2 := new(curve.G2).ScalarMul(h, gamma)

	ct := &Ciphertext{GammaG2: gammaG2, T: t}

	ct.SA1[0] = new(curve.G1).ScalarMul(aggKey.Ask, s)
	ct.SA1[1] = new(curve.G1).ScalarMul(g, s)
	ct.SA1[2] = new(curve.G1).ScalarMul(params.PowersOfG[t], s)
	ct.SA1[3] = new(curve.G1).ScalarMul(params.PowersOfG[n-t], s)

	ct.SA2[0] = new(curve.G2).ScalarMul(aggKey.ZG2, s)
	ct.SA2[1] = new(curve.G2).ScalarMul(h, s)
	ct.SA2[2] = gammaG2.Clone()
	ct.SA2[3] = new(curve.G2).ScalarMul(params.PowersOfH[n], s)
	ct.SA2[4] = new(curve.G2).ScalarMul(params.PowersOfH[1], gamma)
	ct.SA2[5] = new(curve.G2).ScalarMul(params.PowersOfH[n-t], gamma)

	ct.EncKey = new(curve.GT).Exp(aggKey.EGH, new(curve.Scalar).Mul(s, gamma))
	return ct, nil
}

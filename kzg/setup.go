// Package kzg implements the trusted powers-of-tau setup and the
// univariate polynomial commitments built from it.
package kzg

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/dealerfree/stkzg/curve"
)

// UniversalParams holds the public powers of τ in G1 and G2 produced
// by the trusted setup. τ itself is sampled, used, and dropped inside
// Setup; it is never retained.
type UniversalParams struct {
	PowersOfG []*curve.G1
	PowersOfH []*curve.G2
}

// Setup samples τ ∈ F* from rng and produces powers of τ in both
// source groups up to degree size+2. The extra margin accommodates
// Lagrange-basis commitments of degree up to size-1, the X^size
// evaluation, and one shifted commitment on top.
func Setup(size uint64, rng io.Reader) (*UniversalParams, error) {
	if size == 0 {
		return nil, fmt.Errorf("kzg: setup size must be positive")
	}
	tau, err := curve.RandomScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("kzg: sampling tau: %w", err)
	}

	m := size + 2
	powersOfG := make([]*curve.G1, m+1)
	powersOfH := make([]*curve.G2, m+1)

	gen1 := curve.G1Generator()
	gen2 := curve.G2Generator()
	cur := curve.One()
	for k := uint64(0); k <= m; k++ {
		powersOfG[k] = new(curve.G1).ScalarMul(gen1, cur)
		powersOfH[k] = new(curve.G2).ScalarMul(gen2, cur)
		cur = new(curve.Scalar).Mul(cur, tau)
	}

	log.Debug().Uint64("size", size).Uint64("powers", m+1).Msg("kzg setup complete")
	return &UniversalParams{PowersOfG: powersOfG, PowersOfH: powersOfH}, nil
}

// MaxDegree returns the highest polynomial degree the parameters can
// commit to.
func (p *UniversalParams) MaxDegree() int {
	return len(p.PowersOfG) - 1
}

package kzg

import (
	"errors"
	"fmt"

	"github.com/dealerfree/stkzg/curve"
	"github.com/dealerfree/stkzg/poly"
)

// ErrCommitmentOverflow is returned when a polynomial's degree exceeds
// the trusted powers available in the parameters.
var ErrCommitmentOverflow = errors.New("kzg: polynomial degree exceeds trusted powers")

// CommitG1 computes the commitment sum(P.coeffs[k] * powers_of_g[k])
// in G1.
func CommitG1(params *UniversalParams, p *poly.Polynomial) (*curve.G1, error) {
	if len(p.Coeffs) > len(params.PowersOfG) {
		return nil, fmt.Errorf("%w: degree %d, max %d", ErrCommitmentOverflow, len(p.Coeffs)-1, params.MaxDegree())
	}
	return curve.MultiScalarMul(params.PowersOfG[:len(p.Coeffs)], p.Coeffs)
}

// CommitG2 is the G2 analogue of CommitG1, over powers_of_h.
func CommitG2(params *UniversalParams, p *poly.Polynomial) (*curve.G2, error) {
	if len(p.Coeffs) > len(params.PowersOfH) {
		return nil, fmt.Errorf("%w: degree %d, max %d", ErrCommitmentOverflow, len(p.Coeffs)-1, params.MaxDegree())
	}
	return curve.MultiScalarMulG2(params.PowersOfH[:len(p.Coeffs)], p.Coeffs)
}

// CommitG1Shifted computes sum(P.coeffs[k] * powers_of_g[shift+k]),
// the commitment to X^shift * P without materializing the product.
func CommitG1Shifted(params *UniversalParams, p *poly.Polynomial, shift uint64) (*curve.G1, error) {
	if int(shift)+len(p.Coeffs) > len(params.PowersOfG) {
		return nil, fmt.Errorf("%w: shifted degree %d, max %d", ErrCommitmentOverflow, int(shift)+len(p.Coeffs)-1, params.MaxDegree())
	}
	return curve.MultiScalarMul(params.PowersOfG[shift:shift+uint64(len(p.Coeffs))], p.Coeffs)
}

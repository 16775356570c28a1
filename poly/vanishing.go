package poly

import (
	"fmt"

	"github.com/dealerfree/stkzg/curve"
)

// DivideByVanishing divides p by Z(X) = X^n - 1, returning the
// quotient Q and remainder R with p = Q*Z + R and deg R < n.
// Synthetic division: X^k ≡ X^(k-n) modulo Z, so each leading
// coefficient moves into the quotient and folds down n slots.
func DivideByVanishing(p *Polynomial, n uint64) (q, r *Polynomial, err error) {
	if n == 0 {
		return nil, nil, fmt.Errorf("poly: vanishing polynomial degree must be positive")
	}
	deg := p.Degree()
	if deg < int(n) {
		// p already has degree < n: quotient is zero, remainder is p.
		return Zero(), p.Trim(), nil
	}
	work := make([]*curve.Scalar, deg+1)
	for k := 0; k <= deg; k++ {
		work[k] = p.Coeff(k).Clone()
	}
	qCoeffs := make([]*curve.Scalar, deg-int(n)+1)
	for k := deg; k >= int(n); k-- {
		qCoeffs[k-int(n)] = work[k]
		work[k-int(n)] = new(curve.Scalar).Add(work[k-int(n)], work[k])
	}
	return (&Polynomial{Coeffs: qCoeffs}).Trim(), (&Polynomial{Coeffs: work[:n]}).Trim(), nil
}

package poly

import "github.com/dealerfree/stkzg/curve"

// Polynomial is a dense univariate polynomial over F in standard basis,
// Coeffs[k] being the coefficient of X^k, lowest degree first.
type Polynomial struct {
	Coeffs []*curve.Scalar
}

// NewPolynomial wraps a coefficient slice.
func NewPolynomial(coeffs []*curve.Scalar) *Polynomial {
	return &Polynomial{Coeffs: coeffs}
}

// Zero returns the zero polynomial.
func Zero() *Polynomial { return &Polynomial{} }

// Degree returns the formal degree after trimming trailing zero
// coefficients. The zero polynomial has degree -1.
func (p *Polynomial) Degree() int {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		if !p.Coeffs[i].IsZero() {
			return i
		}
	}
	return -1
}

// Trim returns a copy of p with trailing zero coefficients removed.
func (p *Polynomial) Trim() *Polynomial {
	d := p.Degree()
	if d < 0 {
		return Zero()
	}
	out := make([]*curve.Scalar, d+1)
	copy(out, p.Coeffs[:d+1])
	return &Polynomial{Coeffs: out}
}

// Coeff returns the coefficient of X^k, or zero if k exceeds the
// stored length.
func (p *Polynomial) Coeff(k int) *curve.Scalar {
	if k < 0 || k >= len(p.Coeffs) {
		return curve.Zero()
	}
	return p.Coeffs[k]
}

// Evaluate computes p(x) by Horner's method.
func (p *Polynomial) Evaluate(x *curve.Scalar) *curve.Scalar {
	acc := curve.Zero()
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		acc = new(curve.Scalar).Mul(acc, x)
		acc = new(curve.Scalar).Add(acc, p.Coeffs[i])
	}
	return acc
}

// Sub returns p - q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]*curve.Scalar, n)
	for i := 0; i < n; i++ {
		out[i] = new(curve.Scalar).Sub(p.Coeff(i), q.Coeff(i))
	}
	return &Polynomial{Coeffs: out}
}

// Scale returns c*p.
func (p *Polynomial) Scale(c *curve.Scalar) *Polynomial {
	out := make([]*curve.Scalar, len(p.Coeffs))
	for i, co := range p.Coeffs {
		out[i] = new(curve.Scalar).Mul(co, c)
	}
	return &Polynomial{Coeffs: out}
}

// WithZeroConstantTerm returns a copy of p with its constant
// coefficient zeroed out.
func (p *Polynomial) WithZeroConstantTerm() *Polynomial {
	out := make([]*curve.Scalar, len(p.Coeffs))
	copy(out, p.Coeffs)
	if len(out) > 0 {
		out[0] = curve.Zero()
	}
	return &Polynomial{Coeffs: out}
}

// ShiftedDownByOne divides p by X, dropping its constant term.
// Shifting coefficients down one degree is exact division by X when
// the constant term is zero.
func (p *Polynomial) ShiftedDownByOne() *Polynomial {
	if len(p.Coeffs) == 0 {
		return Zero()
	}
	out := make([]*curve.Scalar, len(p.Coeffs)-1)
	copy(out, p.Coeffs[1:])
	return &Polynomial{Coeffs: out}
}

// Mul returns the dense product p*q.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	if len(p.Coeffs) == 0 || len(q.Coeffs) == 0 {
		return Zero()
	}
	out := make([]*curve.Scalar, len(p.Coeffs)+len(q.Coeffs)-1)
	for i := range out {
		out[i] = curve.Zero()
	}
	for i, a := range p.Coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.Coeffs {
			term := new(curve.Scalar).Mul(a, b)
			out[i+j] = new(curve.Scalar).Add(out[i+j], term)
		}
	}
	return &Polynomial{Coeffs: out}
}

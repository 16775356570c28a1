package poly

import (
	"fmt"

	"github.com/dealerfree/stkzg/curve"
)

// LagrangePoly returns the degree-<n polynomial Lᵢ with Lᵢ(ωʲ) = δᵢⱼ
// on the domain d, recovered by inverse FFT of the standard basis
// vector eᵢ.
func LagrangePoly(d *Domain, i uint64) (*Polynomial, error) {
	if i >= d.Size {
		return nil, fmt.Errorf("poly: Lagrange index %d out of range for domain of size %d", i, d.Size)
	}
	evals := make([]*curve.Scalar, d.Size)
	for j := range evals {
		if uint64(j) == i {
			evals[j] = curve.One()
		} else {
			evals[j] = curve.Zero()
		}
	}
	coeffs, err := d.IFFT(evals)
	if err != nil {
		return nil, err
	}
	return &Polynomial{Coeffs: coeffs}, nil
}

// LagrangeWeights returns the classic interpolation-at-zero weights
// {λⱼ : j ∈ subset} over the domain points {ωʲ : j ∈ subset}:
//
//	λⱼ = Π_{k ∈ subset, k≠j} (0 − ωᵏ) / (ωʲ − ωᵏ)
//
// so that Σⱼ λⱼ·f(ωʲ) = f(0) for any polynomial f of degree below
// |subset|. The domain points are pairwise distinct, so the inverted
// product of differences is never zero.
func LagrangeWeights(d *Domain, subset []uint64) ([]*curve.Scalar, error) {
	points := make([]*curve.Scalar, len(subset))
	for i, idx := range subset {
		points[i] = d.Element(idx)
	}
	weights := make([]*curve.Scalar, len(subset))
	for i := range subset {
		num := curve.One()
		den := curve.One()
		for k := range subset {
			if k == i {
				continue
			}
			num = new(curve.Scalar).Mul(num, new(curve.Scalar).Neg(points[k]))
			diff := new(curve.Scalar).Sub(points[i], points[k])
			den = new(curve.Scalar).Mul(den, diff)
		}
		denInv, err := new(curve.Scalar).Inverse(den)
		if err != nil {
			return nil, err
		}
		weights[i] = new(curve.Scalar).Mul(num, denInv)
	}
	return weights, nil
}

// VanishingOn returns Π_{j ∈ subset} (X − ωʲ), the monic polynomial
// whose roots are exactly the named domain points. An empty subset
// yields the constant polynomial 1.
func VanishingOn(d *Domain, subset []uint64) *Polynomial {
	acc := &Polynomial{Coeffs: []*curve.Scalar{curve.One()}}
	for _, j := range subset {
		root := new(curve.Scalar).Neg(d.Element(j))
		factor := &Polynomial{Coeffs: []*curve.Scalar{root, curve.One()}}
		acc = acc.Mul(factor)
	}
	return acc
}

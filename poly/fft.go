package poly

import (
	"fmt"

	"github.com/dealerfree/stkzg/curve"
)

// FFT evaluates the polynomial with coefficients `coeffs` at every
// point of d, using radix-2 Cooley-Tukey. len(coeffs) must equal
// d.Size; any other length is rejected with an error.
func (d *Domain) FFT(coeffs []*curve.Scalar) ([]*curve.Scalar, error) {
	return d.transform(coeffs, d.Generator)
}

// IFFT recovers the coefficients of the polynomial whose evaluations
// on d are `evals`. len(evals) must equal d.Size.
func (d *Domain) IFFT(evals []*curve.Scalar) ([]*curve.Scalar, error) {
	coeffs, err := d.transform(evals, d.GeneratorInv)
	if err != nil {
		return nil, err
	}
	for i := range coeffs {
		coeffs[i] = new(curve.Scalar).Mul(coeffs[i], d.SizeInv)
	}
	return coeffs, nil
}

// transform runs the iterative bit-reversal Cooley-Tukey butterfly
// using `root` as the primitive Size-th root of unity (ω for the
// forward transform, ω⁻¹ for the inverse).
func (d *Domain) transform(in []*curve.Scalar, root *curve.Scalar) ([]*curve.Scalar, error) {
	n := d.Size
	if uint64(len(in)) != n {
		return nil, fmt.Errorf("poly: transform expects %d values, got %d", n, len(in))
	}
	out := make([]*curve.Scalar, n)
	for i, v := range in {
		out[i] = v.Clone()
	}

	bitReverse(out)

	logN := log2(n)
	for s := uint(1); s <= logN; s++ {
		m := uint64(1) << s
		half := m / 2
		// wm = root^(n/m), a primitive m-th root of unity
		wm := powScalar(root, n/m)
		for k := uint64(0); k < n; k += m {
			w := curve.One()
			for j := uint64(0); j < half; j++ {
				t := new(curve.Scalar).Mul(w, out[k+j+half])
				u := out[k+j].Clone()
				out[k+j] = new(curve.Scalar).Add(u, t)
				out[k+j+half] = new(curve.Scalar).Sub(u, t)
				w = new(curve.Scalar).Mul(w, wm)
			}
		}
	}
	return out, nil
}

// bitReverse permutes s in place by the bit-reversal of each index.
func bitReverse(s []*curve.Scalar) {
	n := uint(len(s))
	logN := log2(uint64(n))
	for i := range s {
		j := reverseBits(uint64(i), logN)
		if uint64(i) < j {
			s[i], s[j] = s[j], s[i]
		}
	}
}

func reverseBits(x uint64, bitsN uint) uint64 {
	var r uint64
	for i := uint(0); i < bitsN; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

func powScalar(base *curve.Scalar, e uint64) *curve.Scalar {
	acc := curve.One()
	b := base.Clone()
	for e > 0 {
		if e&1 == 1 {
			acc = new(curve.Scalar).Mul(acc, b)
		}
		b = new(curve.Scalar).Mul(b, b)
		e >>= 1
	}
	return acc
}

package kzg

import (
	"errors"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dealerfree/stkzg/curve"
	"github.com/dealerfree/stkzg/poly"
)

func testRng(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}

func randomPoly(t *testing.T, rng *mrand.Rand, degree int) *poly.Polynomial {
	t.Helper()
	coeffs := make([]*curve.Scalar, degree+1)
	for i := range coeffs {
		s, err := curve.RandomScalar(rng)
		require.NoError(t, err)
		coeffs[i] = s
	}
	return poly.NewPolynomial(coeffs)
}

func TestSetupShape(t *testing.T) {
	params, err := Setup(4, testRng(1))
	require.NoError(t, err)
	require.Len(t, params.PowersOfG, 7)
	require.Len(t, params.PowersOfH, 7)
	require.Equal(t, 6, params.MaxDegree())
	require.True(t, params.PowersOfG[0].Equal(curve.G1Generator()))
	require.True(t, params.PowersOfH[0].Equal(curve.G2Generator()))
}

func TestSetupRejectsZeroSize(t *testing.T) {
	_, err := Setup(0, testRng(1))
	require.Error(t, err)
}

func TestPowersShareTau(t *testing.T) {
	params, err := Setup(4, testRng(2))
	require.NoError(t, err)

	// e(tau^k g, h) == e(tau^(k-1) g, tau h) for every consecutive pair,
	// in both sequences.
	for k := 1; k < len(params.PowersOfG); k++ {
		left := curve.Pair(params.PowersOfG[k], params.PowersOfH[0])
		right := curve.Pair(params.PowersOfG[k-1], params.PowersOfH[1])
		require.True(t, left.Equal(right), "powers_of_g[%d]", k)

		left = curve.Pair(params.PowersOfG[0], params.PowersOfH[k])
		right = curve.Pair(params.PowersOfG[1], params.PowersOfH[k-1])
		require.True(t, left.Equal(right), "powers_of_h[%d]", k)
	}
}

func TestCommitmentsAgreeAcrossGroups(t *testing.T) {
	params, err := Setup(8, testRng(3))
	require.NoError(t, err)
	p := randomPoly(t, testRng(4), 7)

	c1, err := CommitG1(params, p)
	require.NoError(t, err)
	c2, err := CommitG2(params, p)
	require.NoError(t, err)

	// e([P(tau)]_1, h) == e(g, [P(tau)]_2)
	left := curve.Pair(c1, params.PowersOfH[0])
	right := curve.Pair(params.PowersOfG[0], c2)
	require.True(t, left.Equal(right))
}

func TestCommitLinearity(t *testing.T) {
	params, err := Setup(8, testRng(5))
	require.NoError(t, err)
	rng := testRng(6)
	p := randomPoly(t, rng, 5)
	q := randomPoly(t, rng, 5)

	cp, err := CommitG1(params, p)
	require.NoError(t, err)
	cq, err := CommitG1(params, q)
	require.NoError(t, err)

	diff := p.Sub(q)
	cDiff, err := CommitG1(params, diff)
	require.NoError(t, err)
	require.True(t, cDiff.Equal(new(curve.G1).Sub(cp, cq)))
}

func TestCommitOverflow(t *testing.T) {
	params, err := Setup(2, testRng(7))
	require.NoError(t, err)
	p := randomPoly(t, testRng(8), params.MaxDegree()+1)

	_, err = CommitG1(params, p)
	require.True(t, errors.Is(err, ErrCommitmentOverflow))
	_, err = CommitG2(params, p)
	require.True(t, errors.Is(err, ErrCommitmentOverflow))
}

func TestCommitShifted(t *testing.T) {
	params, err := Setup(8, testRng(9))
	require.NoError(t, err)
	p := randomPoly(t, testRng(10), 3)

	shifted, err := CommitG1Shifted(params, p, 2)
	require.NoError(t, err)

	// e([tau^2 P(tau)]_1, h) == e([P(tau)]_1, [tau^2]_2)
	plain, err := CommitG1(params, p)
	require.NoError(t, err)
	left := curve.Pair(shifted, params.PowersOfH[0])
	right := curve.Pair(plain, params.PowersOfH[2])
	require.True(t, left.Equal(right))

	_, err = CommitG1Shifted(params, p, uint64(len(params.PowersOfG)))
	require.True(t, errors.Is(err, ErrCommitmentOverflow))
}

func TestUniversalParamsRoundTrip(t *testing.T) {
	params, err := Setup(4, testRng(11))
	require.NoError(t, err)

	b, err := params.Encode()
	require.NoError(t, err)
	back, err := DecodeUniversalParams(b)
	require.NoError(t, err)

	require.Len(t, back.PowersOfG, len(params.PowersOfG))
	require.Len(t, back.PowersOfH, len(params.PowersOfH))
	for k := range params.PowersOfG {
		require.True(t, params.PowersOfG[k].Equal(back.PowersOfG[k]))
		require.True(t, params.PowersOfH[k].Equal(back.PowersOfH[k]))
	}

	again, err := back.Encode()
	require.NoError(t, err)
	require.Equal(t, b, again)
}

func TestDecodeUniversalParamsRejectsGarbage(t *testing.T) {
	params, err := Setup(2, testRng(12))
	require.NoError(t, err)
	b, err := params.Encode()
	require.NoError(t, err)

	_, err = DecodeUniversalParams(b[:len(b)-1])
	require.True(t, errors.Is(err, ErrDecoding))

	corrupt := append([]byte(nil), b...)
	corrupt[9] ^= 0xff
	_, err = DecodeUniversalParams(corrupt)
	require.True(t, errors.Is(err, ErrDecoding))
}

package threshold

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dealerfree/stkzg/curve"
)

func TestEncryptRejectsBadThreshold(t *testing.T) {
	params, _, aggKey := newCommittee(t, 4, 40)
	for _, badT := range []uint64{0, 5, 100} {
		_, err := Encrypt(aggKey, badT, params, testRng(41))
		require.True(t, errors.Is(err, ErrShapeMismatch), "t=%d", badT)
	}
}

func TestEncryptComponents(t *testing.T) {
	params, _, aggKey := newCommittee(t, 4, 42)
	ct, err := Encrypt(aggKey, 1, params, testRng(43))
	require.NoError(t, err)
	require.Equal(t, uint64(1), ct.T)
	require.True(t, ct.SA2[2].Equal(ct.GammaG2))

	// Every component carries the same ephemeral scalars:
	// e(sa1[1], sa2[2]) = e(g,h)^(s*gamma) = enc_key
	require.True(t, curve.Pair(ct.SA1[1], ct.SA2[2]).Equal(ct.EncKey))

	// e(sa1[0], h) = e(ask, sa2[1]): both are e(g,h)^(s*sk(tau))
	h := params.PowersOfH[0]
	require.True(t, curve.Pair(ct.SA1[0], h).Equal(curve.Pair(aggKey.Ask, ct.SA2[1])))

	// sa2[3] - sa2[0] = s*h, the z_g2 decomposition
	require.True(t, new(curve.G2).Sub(ct.SA2[3], ct.SA2[0]).Equal(ct.SA2[1]))

	// e(sa1[2], h) = e(s*g, [tau^t]_2): the threshold power
	require.True(t, curve.Pair(ct.SA1[2], h).Equal(curve.Pair(ct.SA1[1], params.PowersOfH[1])))

	// e(sa1[3], h) = e(s*g, [tau^(n-t)]_2)
	require.True(t, curve.Pair(ct.SA1[3], h).Equal(curve.Pair(ct.SA1[1], params.PowersOfH[3])))

	// e(g, sa2[4]) = e([tau]_1, gamma_g2)
	require.True(t, curve.Pair(params.PowersOfG[0], ct.SA2[4]).Equal(curve.Pair(params.PowersOfG[1], ct.GammaG2)))

	// e(g, sa2[5]) = e([tau^(n-t)]_1, gamma_g2)
	require.True(t, curve.Pair(params.PowersOfG[0], ct.SA2[5]).Equal(curve.Pair(params.PowersOfG[3], ct.GammaG2)))
}

func TestEncryptFreshness(t *testing.T) {
	params, _, aggKey := newCommittee(t, 4, 44)
	ct1, err := Encrypt(aggKey, 2, params, testRng(45))
	require.NoError(t, err)
	ct2, err := Encrypt(aggKey, 2, params, testRng(46))
	require.NoError(t, err)
	require.False(t, ct1.EncKey.Equal(ct2.EncKey), "ephemeral scalars must differ")
	require.False(t, ct1.GammaG2.Equal(ct2.GammaG2))
}

package threshold

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dealerfree/stkzg/curve"
	"github.com/dealerfree/stkzg/kzg"
)

func TestPublicKeyShape(t *testing.T) {
	rng := testRng(20)
	params, err := kzg.Setup(4, rng)
	require.NoError(t, err)
	sk, err := NewSecretKey(rng)
	require.NoError(t, err)

	pk, err := sk.PublicKey(2, params, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(2), pk.ID)
	require.Len(t, pk.SkLiByZ, 4)
	require.False(t, pk.BlsPK.IsZero())
}

func TestPublicKeyRejectsBadInputs(t *testing.T) {
	rng := testRng(21)
	params, err := kzg.Setup(4, rng)
	require.NoError(t, err)
	sk, err := NewSecretKey(rng)
	require.NoError(t, err)

	_, err = sk.PublicKey(4, params, 4)
	require.True(t, errors.Is(err, ErrShapeMismatch))

	_, err = sk.PublicKey(0, params, 3)
	require.Error(t, err, "3 is not a radix-2 domain size")
}

func TestSkLiByTauPairingIdentity(t *testing.T) {
	// e(sk_li_by_tau, [tau]_2) == e(sk_li_minus0, h) for every party:
	// both sides commit to sk*(L_i - L_i(0)).
	params, _, aggKey := newCommittee(t, 4, 22)
	for _, pk := range aggKey.PK {
		left := curve.Pair(pk.SkLiByTau, params.PowersOfH[1])
		right := curve.Pair(pk.SkLiMinus0, params.PowersOfH[0])
		require.True(t, left.Equal(right), "party %d", pk.ID)
	}
}

func TestSkLiMinusSkLiMinus0IsConstantCommitment(t *testing.T) {
	// sk_li - sk_li_minus0 commits to the constant sk*L_i(0) = sk/n,
	// so pairing it with h must match e(bls_pk/n, h).
	params, _, aggKey := newCommittee(t, 4, 23)
	nInv, err := new(curve.Scalar).Inverse(curve.NewScalarFromUint64(4))
	require.NoError(t, err)
	for _, pk := range aggKey.PK {
		diff := new(curve.G1).Sub(pk.SkLi, pk.SkLiMinus0)
		scaled := new(curve.G1).ScalarMul(pk.BlsPK, nInv)
		left := curve.Pair(diff, params.PowersOfH[0])
		right := curve.Pair(scaled, params.PowersOfH[0])
		require.True(t, left.Equal(right), "party %d", pk.ID)
	}
}

func TestNullify(t *testing.T) {
	rng := testRng(24)
	params, err := kzg.Setup(4, rng)
	require.NoError(t, err)
	sk, err := NewSecretKey(rng)
	require.NoError(t, err)

	sk.Nullify()
	pk, err := sk.PublicKey(0, params, 4)
	require.NoError(t, err)
	require.True(t, pk.BlsPK.Equal(curve.G1Generator()), "nullified secret is one")
}

func TestPartialDecryptMatchesGamma(t *testing.T) {
	params, sks, aggKey := newCommittee(t, 4, 25)
	ct, err := Encrypt(aggKey, 2, params, testRng(26))
	require.NoError(t, err)

	for j, sk := range sks {
		partial := sk.PartialDecrypt(ct)
		require.True(t, VerifyShare(partial, aggKey.PK[j], ct), "party %d", j)
	}
}

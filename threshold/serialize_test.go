package threshold

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dealerfree/stkzg/kzg"
)

func TestSecretKeyRoundTrip(t *testing.T) {
	sk, err := NewSecretKey(testRng(90))
	require.NoError(t, err)

	b, err := sk.Encode()
	require.NoError(t, err)
	require.Len(t, b, 32)

	back, err := DecodeSecretKey(b)
	require.NoError(t, err)
	require.True(t, sk.sk.Equal(back.sk))
}

func TestPublicKeyRoundTrip(t *testing.T) {
	_, _, aggKey := newCommittee(t, 4, 91)
	for _, pk := range aggKey.PK {
		b, err := pk.Encode()
		require.NoError(t, err)
		back, err := DecodePublicKey(b)
		require.NoError(t, err)

		again, err := back.Encode()
		require.NoError(t, err)
		require.Equal(t, b, again, "party %d", pk.ID)
		require.Equal(t, pk.ID, back.ID)
		require.True(t, pk.BlsPK.Equal(back.BlsPK))
		require.True(t, pk.SkLiByTau.Equal(back.SkLiByTau))
		require.Len(t, back.SkLiByZ, len(pk.SkLiByZ))
	}
}

func TestAggregateKeyRoundTrip(t *testing.T) {
	_, _, aggKey := newCommittee(t, 4, 92)

	b, err := aggKey.Encode()
	require.NoError(t, err)
	back, err := DecodeAggregateKey(b)
	require.NoError(t, err)

	again, err := back.Encode()
	require.NoError(t, err)
	require.Equal(t, b, again)
	require.True(t, aggKey.Ask.Equal(back.Ask))
	require.True(t, aggKey.ZG2.Equal(back.ZG2))
	require.True(t, aggKey.EGH.Equal(back.EGH))
}

func TestCiphertextRoundTrip(t *testing.T) {
	params, _, aggKey := newCommittee(t, 4, 93)
	ct, err := Encrypt(aggKey, 3, params, testRng(94))
	require.NoError(t, err)

	b, err := ct.Encode()
	require.NoError(t, err)
	back, err := DecodeCiphertext(b)
	require.NoError(t, err)

	again, err := back.Encode()
	require.NoError(t, err)
	require.Equal(t, b, again)
	require.Equal(t, ct.T, back.T)
	require.True(t, ct.GammaG2.Equal(back.GammaG2))
	require.True(t, ct.EncKey.Equal(back.EncKey))
	for i := range ct.SA1 {
		require.True(t, ct.SA1[i].Equal(back.SA1[i]))
	}
	for i := range ct.SA2 {
		require.True(t, ct.SA2[i].Equal(back.SA2[i]))
	}
}

func TestDecodeErrorsAreDistinguishable(t *testing.T) {
	params, _, aggKey := newCommittee(t, 4, 95)
	ct, err := Encrypt(aggKey, 2, params, testRng(96))
	require.NoError(t, err)

	b, err := ct.Encode()
	require.NoError(t, err)
	_, err = DecodeCiphertext(b[:17])
	require.True(t, errors.Is(err, ErrDecoding))
	require.False(t, errors.Is(err, ErrInsufficientShares))
	require.False(t, errors.Is(err, ErrInvalidShare))

	_, err = DecodePartialDecryption([]byte{1, 2, 3})
	require.True(t, errors.Is(err, ErrDecoding))

	pkBytes, err := aggKey.PK[0].Encode()
	require.NoError(t, err)
	corrupt := append([]byte(nil), pkBytes...)
	corrupt[10] ^= 0xff
	_, err = DecodePublicKey(corrupt)
	require.True(t, errors.Is(err, ErrDecoding))
}

func TestGenerateKeysShape(t *testing.T) {
	rng := testRng(97)
	params, err := kzg.Setup(8, rng)
	require.NoError(t, err)
	sks, aggKey, err := GenerateKeys(params, 8, rng)
	require.NoError(t, err)
	require.Len(t, sks, 8)
	require.Len(t, aggKey.PK, 8)
	require.Len(t, aggKey.AggSkLiByZ, 8)
	for i, pk := range aggKey.PK {
		require.Equal(t, uint64(i), pk.ID)
	}
}

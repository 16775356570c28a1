package threshold

import (
	"io"

	"github.com/rs/zerolog/log"

	"github.com/dealerfree/stkzg/kzg"
)

// GenerateKeys runs keygen for a full committee of n parties: n fresh
// secrets, their public keys, and the aggregate built from the whole
// set.
func GenerateKeys(params *kzg.UniversalParams, n uint64, rng io.Reader) ([]*SecretKey, *AggregateKey, error) {
	sks := make([]*SecretKey, n)
	pks := make([]*PublicKey, n)
	for i := uint64(0); i < n; i++ {
		sk, err := NewSecretKey(rng)
		if err != nil {
			return nil, nil, err
		}
		pk, err := sk.PublicKey(i, params, n)
		if err != nil {
			return nil, nil, err
		}
		sks[i] = sk
		pks[i] = pk
	}
	aggKey, err := NewAggregateKey(pks, params)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Uint64("committee", n).Msg("committee keygen complete")
	return sks, aggKey, nil
}

package threshold

import (
	"fmt"
	"sort"

	"github.com/dealerfree/stkzg/curve"
	"github.com/dealerfree/stkzg/kzg"
)

// AggregateKey is the committee-wide encryption key: the individual
// public keys ordered by id, element-wise sums of their commitments,
// and a few values derived from the parameters alone.
type AggregateKey struct {
	PK         []*PublicKey
	Ask        *curve.G1
	AggSkLiByZ []*curve.G1
	HMinus1    *curve.G2 // -h
	ZG2        *curve.G2 // [τⁿ - 1]₂
	EGH        *curve.GT // e(g, h)
}

// NewAggregateKey combines n public keys into the aggregate. The
// result is independent of the order in which the keys are supplied:
// they are sorted by id and the sums are over the whole set.
func NewAggregateKey(pks []*PublicKey, params *kzg.UniversalParams) (*AggregateKey, error) {
	n := len(pks)
	if n == 0 {
		return nil, fmt.Errorf("%w: no public keys to aggregate", ErrShapeMismatch)
	}
	if n >= len(params.PowersOfH) {
		return nil, fmt.Errorf("%w: committee of %d exceeds %d trusted powers", ErrShapeMismatch, n, len(params.PowersOfH))
	}

	ordered := make([]*PublicKey, n)
	copy(ordered, pks)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })
	for i, pk := range ordered {
		if pk.ID != uint64(i) {
			return nil, fmt.Errorf("%w: public key ids are not 0..%d", ErrShapeMismatch, n-1)
		}
		if len(pk.SkLiByZ) != n {
			return nil, fmt.Errorf("%w: public key %d carries %d quotient commitments, want %d", ErrShapeMismatch, pk.ID, len(pk.SkLiByZ), n)
		}
	}

	ask := curve.G1Zero()
	for _, pk := range ordered {
		ask = new(curve.G1).Add(ask, pk.SkLi)
	}

	aggSkLiByZ := make([]*curve.G1, n)
	for j := 0; j < n; j++ {
		sum := curve.G1Zero()
		for _, pk := range ordered {
			sum = new(curve.G1).Add(sum, pk.SkLiByZ[j])
		}
		aggSkLiByZ[j] = sum
	}

	hMinus1 := new(curve.G2).Neg(params.PowersOfH[0])
	zG2 := new(curve.G2).Add(params.PowersOfH[n], hMinus1)

	return &AggregateKey{
		PK:         ordered,
		AggSkLiByZ: aggSkLiByZ,
		Ask:        ask,
		ZG2:        zG2,
		HMinus1:    hMinus1,
		EGH:        curve.Pair(params.PowersOfG[0], params.PowersOfH[0]),
	}, nil
}

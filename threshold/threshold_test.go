package threshold

import (
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dealerfree/stkzg/curve"
	"github.com/dealerfree/stkzg/kzg"
)

func testRng(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}

// newCommittee runs the full silent setup for n parties: trusted
// powers, n independent secrets, and the aggregate key.
func newCommittee(t *testing.T, n uint64, seed int64) (*kzg.UniversalParams, []*SecretKey, *AggregateKey) {
	t.Helper()
	rng := testRng(seed)
	params, err := kzg.Setup(n, rng)
	require.NoError(t, err)
	sks, aggKey, err := GenerateKeys(params, n, rng)
	require.NoError(t, err)
	return params, sks, aggKey
}

// contribute produces partials for the contributing set and the
// matching selector. Indices outside the set stay nil and false.
func contribute(sks []*SecretKey, ct *Ciphertext, set ...int) ([]*curve.G2, []bool) {
	partials := make([]*curve.G2, len(sks))
	selector := make([]bool, len(sks))
	for _, j := range set {
		partials[j] = sks[j].PartialDecrypt(ct)
		selector[j] = true
	}
	return partials, selector
}

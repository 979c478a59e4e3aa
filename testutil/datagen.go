package testutil

import (
	"encoding/hex"
	"math/rand"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/stretchr/testify/require"
)

// AddRandomSeedsToFuzzer adds num random seeds to the fuzzer
func AddRandomSeedsToFuzzer(f *testing.F, num uint) {
	// Seed based on the current time
	r := rand.New(rand.NewSource(time.Now().Unix()))
	var idx uint
	for idx = 0; idx < num; idx++ {
		f.Add(r.Int63())
	}
}

// GenRandomKeyPair generates a deterministic secp256k1 key pair from r.
func GenRandomKeyPair(r *rand.Rand, t *testing.T) (*btcec.PrivateKey, *btcec.PublicKey) {
	keyBytes := make([]byte, 32)
	_, err := r.Read(keyBytes)
	require.NoError(t, err)

	sk, pk := btcec.PrivKeyFromBytes(keyBytes)
	require.NotNil(t, sk)

	return sk, pk
}

func GenRandomPubKeys(r *rand.Rand, t *testing.T, num int) []*btcec.PublicKey {
	pks := make([]*btcec.PublicKey, 0, num)
	for i := 0; i < num; i++ {
		_, pk := GenRandomKeyPair(r, t)
		pks = append(pks, pk)
	}

	return pks
}

// GenRandomPubKeyHex generates a random public key in the hex-encoded x-only
// form used at the boundary.
func GenRandomPubKeyHex(r *rand.Rand, t *testing.T) string {
	_, pk := GenRandomKeyPair(r, t)
	return hex.EncodeToString(schnorr.SerializePubKey(pk))
}

func GenRandomPubKeyHexes(r *rand.Rand, t *testing.T, num int) []string {
	pkHexes := make([]string, 0, num)
	for i := 0; i < num; i++ {
		pkHexes = append(pkHexes, GenRandomPubKeyHex(r, t))
	}

	return pkHexes
}

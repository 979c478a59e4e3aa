package vaultscript_test

import (
	"math/rand"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/vault-pegin/testutil"
	"github.com/babylonlabs-io/vault-pegin/vaulterrors"
	"github.com/babylonlabs-io/vault-pegin/vaultscript"
)

type scriptToken struct {
	opcode byte
	data   []byte
}

func tokenize(t *testing.T, script []byte) []scriptToken {
	tokenizer := txscript.MakeScriptTokenizer(0, script)
	var tokens []scriptToken
	for tokenizer.Next() {
		tokens = append(tokens, scriptToken{
			opcode: tokenizer.Opcode(),
			data:   tokenizer.Data(),
		})
	}
	require.NoError(t, tokenizer.Err())

	return tokens
}

func TestBuildMultisigScriptStructure(t *testing.T) {
	r := rand.New(rand.NewSource(10))

	for _, numKeys := range []int{1, 2, 3, 5} {
		pks := testutil.GenRandomPubKeys(r, t, numKeys)

		script, err := vaultscript.BuildMultisigScript(pks, false)
		require.NoError(t, err)

		tokens := tokenize(t, script)
		// one push+checksig pair per key, then threshold push and comparison
		require.Len(t, tokens, 2*numKeys+2)

		for i, pk := range pks {
			push, check := tokens[2*i], tokens[2*i+1]
			require.Equal(t, schnorr.SerializePubKey(pk), push.data)
			if i == 0 {
				require.Equal(t, byte(txscript.OP_CHECKSIG), check.opcode)
			} else {
				require.Equal(t, byte(txscript.OP_CHECKSIGADD), check.opcode)
			}
		}

		// the encoded threshold must equal the key count
		threshold := tokens[len(tokens)-2]
		require.Equal(t, byte(txscript.OP_1+numKeys-1), threshold.opcode)
		require.Equal(t, byte(txscript.OP_NUMEQUAL), tokens[len(tokens)-1].opcode)
	}
}

func TestBuildMultisigScriptVerifyVariant(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	pks := testutil.GenRandomPubKeys(r, t, 3)

	plain, err := vaultscript.BuildMultisigScript(pks, false)
	require.NoError(t, err)
	verify, err := vaultscript.BuildMultisigScript(pks, true)
	require.NoError(t, err)

	require.Equal(t, plain[:len(plain)-1], verify[:len(verify)-1])
	require.Equal(t, byte(txscript.OP_NUMEQUAL), plain[len(plain)-1])
	require.Equal(t, byte(txscript.OP_NUMEQUALVERIFY), verify[len(verify)-1])
}

func TestBuildMultisigScriptEmptyKeySet(t *testing.T) {
	script, err := vaultscript.BuildMultisigScript(nil, false)
	require.ErrorIs(t, err, vaulterrors.ErrEmptyKeySet)
	require.Nil(t, script)

	script, err = vaultscript.BuildMultisigScript(nil, true)
	require.ErrorIs(t, err, vaulterrors.ErrEmptyKeySet)
	require.Nil(t, script)
}

func TestCombineScripts(t *testing.T) {
	require.Nil(t, vaultscript.CombineScripts())

	combined := vaultscript.CombineScripts(
		[]byte{0x01, 0x02}, nil, []byte{0x03},
	)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, combined)

	// order is caller-given, no re-encoding
	reversed := vaultscript.CombineScripts(
		[]byte{0x03}, []byte{0x01, 0x02},
	)
	require.Equal(t, []byte{0x03, 0x01, 0x02}, reversed)
}

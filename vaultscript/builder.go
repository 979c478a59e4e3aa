package vaultscript

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/txscript"

	"github.com/babylonlabs-io/vault-pegin/vaulterrors"
)

// BuildMultisigScript builds an N-of-N multisig script over the given keys
// using the BIP342 CHECKSIGADD accumulator:
//
//	<PubKey_0> OP_CHECKSIG
//	<PubKey_1> OP_CHECKSIGADD ... <PubKey_N-1> OP_CHECKSIGADD
//	<N> OP_NUMEQUAL (OP_NUMEQUALVERIFY if verify is set)
//
// Keys are pushed in the given order as 32-byte x-only values, and the
// accumulator must reach exactly N for the script to succeed. Signatures are
// matched to keys positionally, so a missing or invalid signature for any
// single key fails the whole block. The verify variant is used when the block
// is followed by further script elements.
func BuildMultisigScript(pubKeys []*btcec.PublicKey, verify bool) ([]byte, error) {
	if len(pubKeys) == 0 {
		return nil, vaulterrors.ErrEmptyKeySet
	}

	builder := txscript.NewScriptBuilder()

	checkSigOp := byte(txscript.OP_CHECKSIG)
	for _, pk := range pubKeys {
		builder.AddData(schnorr.SerializePubKey(pk))
		builder.AddOp(checkSigOp)
		// only the first key uses OP_CHECKSIG
		checkSigOp = txscript.OP_CHECKSIGADD
	}

	builder.AddInt64(int64(len(pubKeys)))
	if verify {
		builder.AddOp(txscript.OP_NUMEQUALVERIFY)
	} else {
		builder.AddOp(txscript.OP_NUMEQUAL)
	}

	return builder.Script()
}

// CombineScripts joins independently built script fragments into a single
// script by byte concatenation, in the given order. No validation or
// re-encoding is performed.
func CombineScripts(fragments ...[]byte) []byte {
	var combined []byte
	for _, fragment := range fragments {
		combined = append(combined, fragment...)
	}
	return combined
}

package connector

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"

	"github.com/babylonlabs-io/vault-pegin/vaulterrors"
	"github.com/babylonlabs-io/vault-pegin/vaultscript"
)

// PeginPayoutConnector connects the first output of a PegIn transaction to a
// Payout or PayoutOptimistic transaction.
//
// Payout script structure:
//   - <Depositor> OP_CHECKSIGVERIFY
//   - <VaultProvider> OP_CHECKSIGVERIFY
//   - <VK_0> OP_CHECKSIG <VK_1> OP_CHECKSIGADD ... <UC_M> OP_CHECKSIGADD
//   - <N+M> OP_NUMEQUAL
//
// i.e. the depositor and the vault provider are mandatory cosigners, layered
// over an (N+M)-of-(N+M) multisig of all vault keepers and universal
// challengers. Note that duplicate keys across roles are not rejected here; a
// key appearing twice in the merged multisig satisfies two accumulator slots
// with a single signer. Uniqueness is expected to be enforced upstream.
type PeginPayoutConnector struct {
	Depositor            *btcec.PublicKey
	VaultProvider        *btcec.PublicKey
	VaultKeepers         []*btcec.PublicKey
	UniversalChallengers []*btcec.PublicKey
}

// NewPeginPayoutConnector creates a PeginPayoutConnector. It fails with
// ErrEmptyVaultKeepers if no vault keeper key is given; the universal
// challenger list may be empty.
func NewPeginPayoutConnector(
	depositor *btcec.PublicKey,
	vaultProvider *btcec.PublicKey,
	vaultKeepers []*btcec.PublicKey,
	universalChallengers []*btcec.PublicKey,
) (*PeginPayoutConnector, error) {
	if len(vaultKeepers) == 0 {
		return nil, vaulterrors.ErrEmptyVaultKeepers
	}

	return &PeginPayoutConnector{
		Depositor:            depositor,
		VaultProvider:        vaultProvider,
		VaultKeepers:         vaultKeepers,
		UniversalChallengers: universalChallengers,
	}, nil
}

// GeneratePayoutScript builds the payout leaf script. The result is
// deterministic for identical keys in identical order.
func (c *PeginPayoutConnector) GeneratePayoutScript() []byte {
	roleSigs, err := txscript.NewScriptBuilder().
		AddData(schnorr.SerializePubKey(c.Depositor)).
		AddOp(txscript.OP_CHECKSIGVERIFY).
		AddData(schnorr.SerializePubKey(c.VaultProvider)).
		AddOp(txscript.OP_CHECKSIGVERIFY).
		Script()
	if err != nil {
		// fixed 32-byte pushes cannot overflow the builder
		panic("building role signature script: " + err.Error())
	}

	// vault keepers first, universal challengers after, each preserving
	// its original order
	allChallengers := make(
		[]*btcec.PublicKey, 0, len(c.VaultKeepers)+len(c.UniversalChallengers),
	)
	allChallengers = append(allChallengers, c.VaultKeepers...)
	allChallengers = append(allChallengers, c.UniversalChallengers...)

	challengerMultisig, err := vaultscript.BuildMultisigScript(allChallengers, false)
	if err != nil {
		// the keeper list is non-empty by construction
		panic("building challenger multisig script: " + err.Error())
	}

	return vaultscript.CombineScripts(roleSigs, challengerMultisig)
}

// GenerateLeafHash returns the tagged hash of the payout script at the base
// tapscript leaf version. It identifies the leaf in the taproot tree and is
// used in the sighash computation when spending through the payout path.
func (c *PeginPayoutConnector) GenerateLeafHash() chainhash.Hash {
	return txscript.NewBaseTapLeaf(c.GeneratePayoutScript()).TapHash()
}

// GenerateTaprootSpendInfo commits the payout script as the single leaf of a
// taproot tree under the unspendable internal key. With a valid script and
// the fixed internal key this derivation cannot fail.
func (c *PeginPayoutConnector) GenerateTaprootSpendInfo() *SpendInfo {
	payoutLeaf := txscript.NewBaseTapLeaf(c.GeneratePayoutScript())
	tapScriptTree := txscript.AssembleTaprootScriptTree(payoutLeaf)

	internalKey := UnspendableKey()
	merkleRoot := tapScriptTree.RootNode.TapHash()

	return &SpendInfo{
		InternalKey: internalKey,
		OutputKey:   txscript.ComputeTaprootOutputKey(internalKey, merkleRoot[:]),
		MerkleRoot:  merkleRoot,
	}
}

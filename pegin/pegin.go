package pegin

import (
	"encoding/hex"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"

	"github.com/babylonlabs-io/vault-pegin/connector"
	"github.com/babylonlabs-io/vault-pegin/vaulterrors"
)

// Params carries the string-encoded inputs for building a PegIn transaction.
// Keys are 32-byte x-only public keys, hex encoded.
type Params struct {
	DepositorPubKey            string
	VaultProviderPubKey        string
	VaultKeeperPubKeys         []string
	UniversalChallengerPubKeys []string
	PeginAmount                btcutil.Amount
	Network                    string
}

// ParseNetwork maps a case-insensitive network name to its chain parameters.
func ParseNetwork(network string) (*chaincfg.Params, error) {
	switch strings.ToLower(network) {
	case "bitcoin", "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, errorsmod.Wrap(vaulterrors.ErrInvalidNetwork, network)
	}
}

// ParseXOnlyPubKey parses a hex-encoded 32-byte x-only public key and
// validates that it is a valid curve point. The returned error identifies the
// offending string.
func ParseXOnlyPubKey(pkHex string) (*btcec.PublicKey, error) {
	pkBytes, err := hex.DecodeString(pkHex)
	if err != nil {
		return nil, errorsmod.Wrapf(vaulterrors.ErrInvalidPublicKey, "%s: %v", pkHex, err)
	}

	pk, err := schnorr.ParsePubKey(pkBytes)
	if err != nil {
		return nil, errorsmod.Wrapf(vaulterrors.ErrInvalidPublicKey, "%s: %v", pkHex, err)
	}

	return pk, nil
}

func parseXOnlyPubKeys(pkHexes []string) ([]*btcec.PublicKey, error) {
	pks := make([]*btcec.PublicKey, 0, len(pkHexes))
	for _, pkHex := range pkHexes {
		pk, err := ParseXOnlyPubKey(pkHex)
		if err != nil {
			return nil, err
		}
		pks = append(pks, pk)
	}

	return pks, nil
}

// NewPayoutConnector parses the role keys in params and constructs the
// payout connector for them.
func NewPayoutConnector(params *Params) (*connector.PeginPayoutConnector, error) {
	depositor, err := ParseXOnlyPubKey(params.DepositorPubKey)
	if err != nil {
		return nil, err
	}

	vaultProvider, err := ParseXOnlyPubKey(params.VaultProviderPubKey)
	if err != nil {
		return nil, err
	}

	vaultKeepers, err := parseXOnlyPubKeys(params.VaultKeeperPubKeys)
	if err != nil {
		return nil, err
	}

	universalChallengers, err := parseXOnlyPubKeys(params.UniversalChallengerPubKeys)
	if err != nil {
		return nil, err
	}

	conn, err := connector.NewPeginPayoutConnector(
		depositor, vaultProvider, vaultKeepers, universalChallengers,
	)
	if err != nil {
		return nil, errorsmod.Wrap(vaulterrors.ErrConnector, err.Error())
	}

	return conn, nil
}

// NewUnfundedPegInTx builds a transaction that sends the pegin amount to the
// vault-controlled taproot output derived from the given role keys. The
// result has version 2, no lock time and no inputs; funding and signing are
// left to an external wallet, so it cannot be broadcast as is.
func NewUnfundedPegInTx(params *Params) (*wire.MsgTx, error) {
	netParams, err := ParseNetwork(params.Network)
	if err != nil {
		return nil, err
	}

	conn, err := NewPayoutConnector(params)
	if err != nil {
		return nil, err
	}

	pkScript, err := connector.TaprootPkScript(conn, netParams)
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx(2)
	tx.AddTxOut(wire.NewTxOut(int64(params.PeginAmount), pkScript))

	return tx, nil
}

package types

import (
	"bytes"
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"

	"github.com/babylonlabs-io/vault-pegin/connector"
)

// PegInResult is the boundary representation of a built PegIn transaction:
// the consensus-serialized transaction plus the individually queryable fields
// of its single vault output.
type PegInResult struct {
	TxHex            string `json:"tx_hex"`
	Txid             string `json:"txid"`
	VaultPkScriptHex string `json:"vault_pk_script_hex"`
	VaultValueSat    uint64 `json:"vault_value_sat"`
}

func NewPegInResult(tx *wire.MsgTx) (*PegInResult, error) {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return nil, err
	}

	return &PegInResult{
		TxHex:            hex.EncodeToString(buf.Bytes()),
		Txid:             tx.TxHash().String(),
		VaultPkScriptHex: hex.EncodeToString(tx.TxOut[0].PkScript),
		VaultValueSat:    uint64(tx.TxOut[0].Value),
	}, nil
}

// PayoutInfo is the boundary representation of a payout connector for a given
// network: the taproot address and pkScript of the vault output, the leaf
// script itself and its tap leaf hash for external sighash computation.
type PayoutInfo struct {
	Address         string `json:"address"`
	PkScriptHex     string `json:"pk_script_hex"`
	PayoutScriptHex string `json:"payout_script_hex"`
	LeafHashHex     string `json:"leaf_hash_hex"`
}

func NewPayoutInfo(conn *connector.PeginPayoutConnector, netParams *chaincfg.Params) (*PayoutInfo, error) {
	addr, err := connector.TaprootAddress(conn, netParams)
	if err != nil {
		return nil, err
	}

	pkScript, err := connector.TaprootPkScript(conn, netParams)
	if err != nil {
		return nil, err
	}

	leafHash := conn.GenerateLeafHash()

	return &PayoutInfo{
		Address:         addr.String(),
		PkScriptHex:     hex.EncodeToString(pkScript),
		PayoutScriptHex: hex.EncodeToString(conn.GeneratePayoutScript()),
		// tap leaf hashes are rendered in forward byte order, unlike txids
		LeafHashHex: hex.EncodeToString(leafHash[:]),
	}, nil
}

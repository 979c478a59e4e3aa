package connector

import (
	"encoding/hex"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
)

// unspendableKeyHex is the BIP341 NUMS point. No private key is known for it,
// so a taproot output using it as the internal key can only be spent through
// a revealed script path, never through the key path.
const unspendableKeyHex = "50929b74c1a04954b78b4b6035e97a5e078a5a0f28ec96d547bfee9ace803ac0"

var (
	unspendableKeyOnce sync.Once
	unspendableKey     *btcec.PublicKey
)

// UnspendableKey returns the fixed unspendable taproot internal key. The key
// is parsed once on first use and is immutable afterwards, so it is safe to
// share across concurrent callers.
func UnspendableKey() *btcec.PublicKey {
	unspendableKeyOnce.Do(func() {
		keyBytes, err := hex.DecodeString(unspendableKeyHex)
		if err != nil {
			panic("static unspendable key must be valid hex: " + err.Error())
		}
		unspendableKey, err = schnorr.ParsePubKey(keyBytes)
		if err != nil {
			panic("static unspendable key must be a valid point: " + err.Error())
		}
	})

	return unspendableKey
}

// SpendInfo is the taproot commitment of a connector: the internal key, the
// merkle root of the script tree and the resulting tweaked output key that
// the on-chain address and pkScript are derived from.
type SpendInfo struct {
	InternalKey *btcec.PublicKey
	OutputKey   *btcec.PublicKey
	MerkleRoot  chainhash.Hash
}

// Connector is implemented by any vault connector that commits its spending
// conditions to a taproot output. Address and pkScript derivation are
// implemented once against this interface, so connector variants only need
// to provide the commitment itself.
type Connector interface {
	GenerateTaprootSpendInfo() *SpendInfo
}

// TaprootAddress derives the p2tr address of the connector's taproot output
// key on the given network.
func TaprootAddress(c Connector, netParams *chaincfg.Params) (*btcutil.AddressTaproot, error) {
	spendInfo := c.GenerateTaprootSpendInfo()

	return btcutil.NewAddressTaproot(
		schnorr.SerializePubKey(spendInfo.OutputKey), netParams,
	)
}

// TaprootPkScript derives the pay-to-taproot output script of the connector
// for the given network.
func TaprootPkScript(c Connector, netParams *chaincfg.Params) ([]byte, error) {
	addr, err := TaprootAddress(c, netParams)
	if err != nil {
		return nil, err
	}

	return txscript.PayToAddrScript(addr)
}

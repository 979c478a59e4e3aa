package pegin_test

import (
	"math/rand"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/vault-pegin/connector"
	"github.com/babylonlabs-io/vault-pegin/pegin"
	"github.com/babylonlabs-io/vault-pegin/testutil"
	"github.com/babylonlabs-io/vault-pegin/vaulterrors"
)

func TestParseNetwork(t *testing.T) {
	tests := []struct {
		network  string
		expected *chaincfg.Params
	}{
		{"bitcoin", &chaincfg.MainNetParams},
		{"mainnet", &chaincfg.MainNetParams},
		{"MainNet", &chaincfg.MainNetParams},
		{"testnet", &chaincfg.TestNet3Params},
		{"regtest", &chaincfg.RegressionNetParams},
		{"signet", &chaincfg.SigNetParams},
		{"SIGNET", &chaincfg.SigNetParams},
	}
	for _, test := range tests {
		netParams, err := pegin.ParseNetwork(test.network)
		require.NoError(t, err, test.network)
		require.Equal(t, test.expected, netParams, test.network)
	}

	for _, network := range []string{"", "mainet", "simnet", "testnet4"} {
		netParams, err := pegin.ParseNetwork(network)
		require.ErrorIs(t, err, vaulterrors.ErrInvalidNetwork, network)
		require.Nil(t, netParams, network)
	}
}

func TestParseXOnlyPubKey(t *testing.T) {
	r := rand.New(rand.NewSource(30))
	pkHex := testutil.GenRandomPubKeyHex(r, t)

	pk, err := pegin.ParseXOnlyPubKey(pkHex)
	require.NoError(t, err)
	require.NotNil(t, pk)

	// a truncated 63-char string is rejected, naming the offending input
	truncated := pkHex[:63]
	pk, err = pegin.ParseXOnlyPubKey(truncated)
	require.ErrorIs(t, err, vaulterrors.ErrInvalidPublicKey)
	require.ErrorContains(t, err, truncated)
	require.Nil(t, pk)

	pk, err = pegin.ParseXOnlyPubKey("not-hex")
	require.ErrorIs(t, err, vaulterrors.ErrInvalidPublicKey)
	require.Nil(t, pk)
}

func TestNewUnfundedPegInTx(t *testing.T) {
	r := rand.New(rand.NewSource(31))
	params := &pegin.Params{
		DepositorPubKey:     testutil.GenRandomPubKeyHex(r, t),
		VaultProviderPubKey: testutil.GenRandomPubKeyHex(r, t),
		VaultKeeperPubKeys:  testutil.GenRandomPubKeyHexes(r, t, 1),
		PeginAmount:         btcutil.Amount(100000),
		Network:             "testnet",
	}

	tx, err := pegin.NewUnfundedPegInTx(params)
	require.NoError(t, err)

	require.EqualValues(t, 2, tx.Version)
	require.Zero(t, tx.LockTime)
	require.Empty(t, tx.TxIn)
	require.Len(t, tx.TxOut, 1)
	require.EqualValues(t, 100000, tx.TxOut[0].Value)

	// the output pays to the connector's taproot pkScript
	conn, err := pegin.NewPayoutConnector(params)
	require.NoError(t, err)
	expectedPkScript, err := connector.TaprootPkScript(conn, &chaincfg.TestNet3Params)
	require.NoError(t, err)
	require.Equal(t, expectedPkScript, tx.TxOut[0].PkScript)

	// identical inputs yield an identical transaction
	again, err := pegin.NewUnfundedPegInTx(params)
	require.NoError(t, err)
	require.Equal(t, tx.TxHash(), again.TxHash())
}

func TestNewUnfundedPegInTxInvalidNetwork(t *testing.T) {
	r := rand.New(rand.NewSource(32))
	params := &pegin.Params{
		DepositorPubKey:     testutil.GenRandomPubKeyHex(r, t),
		VaultProviderPubKey: testutil.GenRandomPubKeyHex(r, t),
		VaultKeeperPubKeys:  testutil.GenRandomPubKeyHexes(r, t, 1),
		PeginAmount:         btcutil.Amount(100000),
		Network:             "mainet",
	}

	tx, err := pegin.NewUnfundedPegInTx(params)
	require.ErrorIs(t, err, vaulterrors.ErrInvalidNetwork)
	require.Nil(t, tx)
}

func TestNewUnfundedPegInTxInvalidKey(t *testing.T) {
	r := rand.New(rand.NewSource(33))
	badKey := testutil.GenRandomPubKeyHex(r, t)[:63]
	params := &pegin.Params{
		DepositorPubKey:     testutil.GenRandomPubKeyHex(r, t),
		VaultProviderPubKey: testutil.GenRandomPubKeyHex(r, t),
		VaultKeeperPubKeys:  []string{badKey},
		PeginAmount:         btcutil.Amount(100000),
		Network:             "regtest",
	}

	tx, err := pegin.NewUnfundedPegInTx(params)
	require.ErrorIs(t, err, vaulterrors.ErrInvalidPublicKey)
	require.ErrorContains(t, err, badKey)
	require.Nil(t, tx)
}

func TestNewUnfundedPegInTxEmptyKeepers(t *testing.T) {
	r := rand.New(rand.NewSource(34))
	params := &pegin.Params{
		DepositorPubKey:     testutil.GenRandomPubKeyHex(r, t),
		VaultProviderPubKey: testutil.GenRandomPubKeyHex(r, t),
		PeginAmount:         btcutil.Amount(100000),
		Network:             "signet",
	}

	tx, err := pegin.NewUnfundedPegInTx(params)
	require.ErrorIs(t, err, vaulterrors.ErrConnector)
	require.Nil(t, tx)
}

package service_test

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/babylonlabs-io/vault-pegin/connector"
	"github.com/babylonlabs-io/vault-pegin/pegin"
	"github.com/babylonlabs-io/vault-pegin/service"
	"github.com/babylonlabs-io/vault-pegin/testutil"
	"github.com/babylonlabs-io/vault-pegin/types"
)

func postJSON(t *testing.T, handler http.Handler, path string, req interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(req)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body)))

	return rec
}

func TestBuildPeginEndpoint(t *testing.T) {
	r := rand.New(rand.NewSource(50))
	handler := service.NewAPI(zap.NewNop()).Handler()

	req := &types.PegInRequest{
		DepositorPubkey:     testutil.GenRandomPubKeyHex(r, t),
		VaultProviderPubkey: testutil.GenRandomPubKeyHex(r, t),
		VaultKeeperPubkeys:  testutil.GenRandomPubKeyHexes(r, t, 2),
		PeginAmountSat:      100000,
		Network:             "testnet",
	}

	rec := postJSON(t, handler, "/v1/pegin", req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.PegInResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.EqualValues(t, 100000, result.VaultValueSat)
	require.NotEmpty(t, result.Txid)

	// matches the direct construction path
	tx, err := pegin.NewUnfundedPegInTx(&pegin.Params{
		DepositorPubKey:     req.DepositorPubkey,
		VaultProviderPubKey: req.VaultProviderPubkey,
		VaultKeeperPubKeys:  req.VaultKeeperPubkeys,
		PeginAmount:         btcutil.Amount(100000),
		Network:             "testnet",
	})
	require.NoError(t, err)
	require.Equal(t, tx.TxHash().String(), result.Txid)
}

func TestBuildPeginEndpointRejectsBadInput(t *testing.T) {
	r := rand.New(rand.NewSource(51))
	handler := service.NewAPI(zap.NewNop()).Handler()

	valid := &types.PegInRequest{
		DepositorPubkey:     testutil.GenRandomPubKeyHex(r, t),
		VaultProviderPubkey: testutil.GenRandomPubKeyHex(r, t),
		VaultKeeperPubkeys:  testutil.GenRandomPubKeyHexes(r, t, 1),
		PeginAmountSat:      100000,
		Network:             "testnet",
	}

	badNetwork := *valid
	badNetwork.Network = "mainet"
	rec := postJSON(t, handler, "/v1/pegin", &badNetwork)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	badKey := *valid
	badKey.DepositorPubkey = valid.DepositorPubkey[:63]
	rec = postJSON(t, handler, "/v1/pegin", &badKey)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	noKeepers := *valid
	noKeepers.VaultKeeperPubkeys = nil
	rec = postJSON(t, handler, "/v1/pegin", &noKeepers)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// only POST is served
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/pegin", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPayoutInfoEndpoint(t *testing.T) {
	r := rand.New(rand.NewSource(52))
	handler := service.NewAPI(zap.NewNop()).Handler()

	req := &types.PayoutInfoRequest{
		DepositorPubkey:            testutil.GenRandomPubKeyHex(r, t),
		VaultProviderPubkey:        testutil.GenRandomPubKeyHex(r, t),
		VaultKeeperPubkeys:         testutil.GenRandomPubKeyHexes(r, t, 1),
		UniversalChallengerPubkeys: testutil.GenRandomPubKeyHexes(r, t, 2),
		Network:                    "regtest",
	}

	rec := postJSON(t, handler, "/v1/payout-info", req)
	require.Equal(t, http.StatusOK, rec.Code)

	var info types.PayoutInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))

	conn, err := pegin.NewPayoutConnector(req.ToParams())
	require.NoError(t, err)
	addr, err := connector.TaprootAddress(conn, &chaincfg.RegressionNetParams)
	require.NoError(t, err)
	require.Equal(t, addr.String(), info.Address)
	require.NotEmpty(t, info.PayoutScriptHex)
	require.Len(t, info.LeafHashHex, 64)
}

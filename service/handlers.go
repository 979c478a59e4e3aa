package service

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/babylonlabs-io/vault-pegin/pegin"
	"github.com/babylonlabs-io/vault-pegin/types"
)

// API serves vault construction operations over JSON. Every operation is a
// pure function of the request body, so handlers are safe to invoke
// concurrently without coordination.
type API struct {
	logger *zap.Logger
}

func NewAPI(logger *zap.Logger) *API {
	return &API{logger: logger}
}

func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/pegin", a.buildPegin)
	mux.HandleFunc("/v1/payout-info", a.payoutInfo)
	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *API) buildPegin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, &errorResponse{Error: "method not allowed"})
		return
	}

	var req types.PegInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, &errorResponse{Error: err.Error()})
		return
	}

	tx, err := pegin.NewUnfundedPegInTx(req.ToParams())
	if err != nil {
		totalFailedPeginBuilds.Inc()
		a.logger.Debug("rejected pegin build request", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, &errorResponse{Error: err.Error()})
		return
	}

	result, err := types.NewPegInResult(tx)
	if err != nil {
		totalFailedPeginBuilds.Inc()
		a.logger.Error("failed to serialize pegin transaction", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, &errorResponse{Error: err.Error()})
		return
	}

	totalPeginTxsBuilt.WithLabelValues(req.Network).Inc()
	a.logger.Info("built unfunded pegin transaction",
		zap.String("txid", result.Txid),
		zap.Uint64("amount_sat", result.VaultValueSat),
		zap.String("network", req.Network),
	)
	writeJSON(w, http.StatusOK, result)
}

func (a *API) payoutInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, &errorResponse{Error: "method not allowed"})
		return
	}

	var req types.PayoutInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, &errorResponse{Error: err.Error()})
		return
	}

	netParams, err := pegin.ParseNetwork(req.Network)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, &errorResponse{Error: err.Error()})
		return
	}

	conn, err := pegin.NewPayoutConnector(req.ToParams())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, &errorResponse{Error: err.Error()})
		return
	}

	info, err := types.NewPayoutInfo(conn, netParams)
	if err != nil {
		a.logger.Error("failed to derive payout info", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, &errorResponse{Error: err.Error()})
		return
	}

	totalPayoutInfoRequests.Inc()
	writeJSON(w, http.StatusOK, info)
}

func writeJSON(w http.ResponseWriter, status int, resp interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	totalPeginTxsBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vaultd_total_pegin_txs_built",
			Help: "Total number of unfunded PegIn transactions built",
		},
		[]string{"network"},
	)
	totalFailedPeginBuilds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vaultd_total_failed_pegin_builds",
			Help: "Total number of PegIn build requests rejected with an error",
		},
	)
	totalPayoutInfoRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vaultd_total_payout_info_requests",
			Help: "Total number of payout info requests served",
		},
	)
)

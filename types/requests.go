package types

import (
	"github.com/btcsuite/btcd/btcutil"

	"github.com/babylonlabs-io/vault-pegin/pegin"
)

// PegInRequest carries all data necessary to build an unfunded PegIn
// transaction. Keys are 32-byte x-only public keys, hex encoded.
type PegInRequest struct {
	DepositorPubkey            string   `json:"depositor_pubkey"`
	VaultProviderPubkey        string   `json:"vault_provider_pubkey"`
	VaultKeeperPubkeys         []string `json:"vault_keeper_pubkeys"`
	UniversalChallengerPubkeys []string `json:"universal_challenger_pubkeys"`
	PeginAmountSat             uint64   `json:"pegin_amount_sat"`
	Network                    string   `json:"network"`
}

func (r *PegInRequest) ToParams() *pegin.Params {
	return &pegin.Params{
		DepositorPubKey:            r.DepositorPubkey,
		VaultProviderPubKey:        r.VaultProviderPubkey,
		VaultKeeperPubKeys:         r.VaultKeeperPubkeys,
		UniversalChallengerPubKeys: r.UniversalChallengerPubkeys,
		PeginAmount:                btcutil.Amount(r.PeginAmountSat),
		Network:                    r.Network,
	}
}

// PayoutInfoRequest carries the role keys and target network for deriving
// the payout connector's address, pkScript and leaf script.
type PayoutInfoRequest struct {
	DepositorPubkey            string   `json:"depositor_pubkey"`
	VaultProviderPubkey        string   `json:"vault_provider_pubkey"`
	VaultKeeperPubkeys         []string `json:"vault_keeper_pubkeys"`
	UniversalChallengerPubkeys []string `json:"universal_challenger_pubkeys"`
	Network                    string   `json:"network"`
}

func (r *PayoutInfoRequest) ToParams() *pegin.Params {
	return &pegin.Params{
		DepositorPubKey:            r.DepositorPubkey,
		VaultProviderPubKey:        r.VaultProviderPubkey,
		VaultKeeperPubKeys:         r.VaultKeeperPubkeys,
		UniversalChallengerPubKeys: r.UniversalChallengerPubkeys,
		Network:                    r.Network,
	}
}

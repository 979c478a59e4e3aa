package main

const (
	homeFlag                = "home"
	forceFlag               = "force"
	depositorFlag           = "depositor-pk"
	vaultProviderFlag       = "vault-provider-pk"
	vaultKeeperFlag         = "vault-keeper-pk"
	universalChallengerFlag = "universal-challenger-pk"
	amountFlag              = "amount"
	networkFlag             = "network"

	defaultNetwork = "signet"
)

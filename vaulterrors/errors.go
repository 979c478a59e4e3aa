package vaulterrors

import (
	errorsmod "cosmossdk.io/errors"
)

const codespace = "vault"

// Sentinel errors for vault script and transaction construction. All of them
// are terminal: inputs are either valid or not, there are no transient
// failure modes. Callers match with errors.Is and read dynamic context
// (e.g. the offending key string) from the wrapped message.
var (
	ErrEmptyKeySet       = errorsmod.Register(codespace, 1101, "at least one public key is required for multisig")
	ErrEmptyVaultKeepers = errorsmod.Register(codespace, 1102, "at least one vault keeper is required")
	ErrInvalidPublicKey  = errorsmod.Register(codespace, 1103, "invalid public key")
	ErrInvalidNetwork    = errorsmod.Register(codespace, 1104, "invalid network")
	ErrConnector         = errorsmod.Register(codespace, 1105, "connector error")
)

package main

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/urfave/cli"

	"github.com/babylonlabs-io/vault-pegin/pegin"
	"github.com/babylonlabs-io/vault-pegin/types"
)

var buildPeginCommand = cli.Command{
	Name:      "build-pegin",
	ShortName: "bp",
	Usage:     "Build an unfunded PegIn transaction paying into the vault taproot output.",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:     depositorFlag,
			Usage:    "The depositor's x-only public key (64 hex chars)",
			Required: true,
		},
		cli.StringFlag{
			Name:     vaultProviderFlag,
			Usage:    "The vault provider's x-only public key (64 hex chars)",
			Required: true,
		},
		cli.StringSliceFlag{
			Name:     vaultKeeperFlag,
			Usage:    "A vault keeper's x-only public key, repeatable",
			Required: true,
		},
		cli.StringSliceFlag{
			Name:  universalChallengerFlag,
			Usage: "A universal challenger's x-only public key, repeatable",
		},
		cli.Uint64Flag{
			Name:     amountFlag,
			Usage:    "The pegin amount in satoshis",
			Required: true,
		},
		cli.StringFlag{
			Name:  networkFlag,
			Usage: "Bitcoin network (mainnet, testnet, regtest, signet)",
			Value: defaultNetwork,
		},
	},
	Action: buildPegin,
}

func buildPegin(ctx *cli.Context) error {
	params := peginParams(ctx)
	params.PeginAmount = btcutil.Amount(ctx.Uint64(amountFlag))

	tx, err := pegin.NewUnfundedPegInTx(params)
	if err != nil {
		return fmt.Errorf("failed to build pegin transaction: %w", err)
	}

	result, err := types.NewPegInResult(tx)
	if err != nil {
		return err
	}

	printRespJSON(result)

	return nil
}

var payoutInfoCommand = cli.Command{
	Name:      "payout-info",
	ShortName: "pi",
	Usage:     "Derive the vault taproot address, pkScript and payout leaf script for the given role keys.",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:     depositorFlag,
			Usage:    "The depositor's x-only public key (64 hex chars)",
			Required: true,
		},
		cli.StringFlag{
			Name:     vaultProviderFlag,
			Usage:    "The vault provider's x-only public key (64 hex chars)",
			Required: true,
		},
		cli.StringSliceFlag{
			Name:     vaultKeeperFlag,
			Usage:    "A vault keeper's x-only public key, repeatable",
			Required: true,
		},
		cli.StringSliceFlag{
			Name:  universalChallengerFlag,
			Usage: "A universal challenger's x-only public key, repeatable",
		},
		cli.StringFlag{
			Name:  networkFlag,
			Usage: "Bitcoin network (mainnet, testnet, regtest, signet)",
			Value: defaultNetwork,
		},
	},
	Action: payoutInfo,
}

func payoutInfo(ctx *cli.Context) error {
	params := peginParams(ctx)

	netParams, err := pegin.ParseNetwork(params.Network)
	if err != nil {
		return err
	}

	conn, err := pegin.NewPayoutConnector(params)
	if err != nil {
		return err
	}

	info, err := types.NewPayoutInfo(conn, netParams)
	if err != nil {
		return err
	}

	printRespJSON(info)

	return nil
}

func peginParams(ctx *cli.Context) *pegin.Params {
	return &pegin.Params{
		DepositorPubKey:            ctx.String(depositorFlag),
		VaultProviderPubKey:        ctx.String(vaultProviderFlag),
		VaultKeeperPubKeys:         ctx.StringSlice(vaultKeeperFlag),
		UniversalChallengerPubKeys: ctx.StringSlice(universalChallengerFlag),
		Network:                    ctx.String(networkFlag),
	}
}

func printRespJSON(resp interface{}) {
	jsonBytes, err := json.MarshalIndent(resp, "", "    ")
	if err != nil {
		fmt.Println("unable to decode response: ", err)
		return
	}

	fmt.Printf("%s\n", jsonBytes)
}

package main

import (
	"fmt"
	"path/filepath"

	"github.com/lightningnetwork/lnd/signal"
	"github.com/urfave/cli"

	vaultcfg "github.com/babylonlabs-io/vault-pegin/config"
	"github.com/babylonlabs-io/vault-pegin/log"
	"github.com/babylonlabs-io/vault-pegin/service"
	"github.com/babylonlabs-io/vault-pegin/util"
)

var startCommand = cli.Command{
	Name:        "start",
	Usage:       "Start the Vault PegIn Builder Daemon",
	Description: "Start the Vault PegIn Builder Daemon serving the construction API and metrics",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  homeFlag,
			Usage: "The path to the vaultd home directory",
			Value: vaultcfg.DefaultVaultDir,
		},
	},
	Action: start,
}

func start(ctx *cli.Context) error {
	homePath, err := filepath.Abs(ctx.String(homeFlag))
	if err != nil {
		return err
	}
	homePath = util.CleanAndExpandPath(homePath)

	cfg, err := vaultcfg.LoadConfig(homePath)
	if err != nil {
		return fmt.Errorf("failed to load config at %s: %w", homePath, err)
	}

	logger, err := log.NewRootLoggerWithFile(vaultcfg.LogFile(homePath), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to load the logger: %w", err)
	}

	// Hook interceptor for os signals.
	shutdownInterceptor, err := signal.Intercept()
	if err != nil {
		return err
	}

	srv := service.NewVaultServer(logger, cfg, shutdownInterceptor)

	return srv.RunUntilShutdown()
}

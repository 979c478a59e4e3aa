package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[vaultd] %v\n", err)
	os.Exit(1)
}

func main() {
	app := cli.NewApp()
	app.Name = "vaultd"
	app.Usage = "Vault PegIn Builder Daemon (vaultd)."
	app.Commands = append(app.Commands,
		startCommand, initCommand, buildPeginCommand, payoutInfoCommand,
	)

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

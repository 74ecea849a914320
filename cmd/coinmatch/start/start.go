package start

import (
	"net/http"

	"github.com/DE-labtory/coinmatch/api"
	"github.com/DE-labtory/coinmatch/config"
	"github.com/DE-labtory/coinmatch/log"
	"github.com/urfave/cli"
)

func Cmd() cli.Command {
	return cli.Command{
		Name:      "start",
		Usage:     "Start the coinmatch HTTP API",
		UsageText: "coinmatch start [--address HOST:PORT]",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "address",
				Usage: "Listen on HOST:PORT instead of the configured server address",
			},
		},
		Action: func(c *cli.Context) error {
			address := c.String("address")
			if address == "" {
				conf, err := config.Get()
				if err != nil {
					return err
				}
				address = conf.Server.Address
			}
			return startCoinmatch(address)
		},
	}
}

func startCoinmatch(address string) error {
	httpLogger := log.With("component", "http")

	httpLogger.Log("message", "http server started", "address", address)
	err := http.ListenAndServe(address, api.NewApiHandler(httpLogger))
	httpLogger.Log("message", "http server closed", "err", err)
	return err
}

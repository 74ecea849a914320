package init

import (
	"github.com/DE-labtory/coinmatch/config"
	"github.com/kyokomi/emoji"
	"github.com/urfave/cli"
)

func Cmd() cli.Command {
	return cli.Command{
		Name:      "init",
		Usage:     "Initialize coinmatch configuration",
		UsageText: "coinmatch init [--config FILE_PATH]",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "config",
				Usage: "Load configuration file from FILE_PATH",
			},
		},
		Action: func(c *cli.Context) error {
			path := c.String("config")
			if path == "" {
				path = c.Args().First()
			}
			return initCoinmatch(path)
		},
	}
}

// initCoinmatch reports a failure itself and returns a silent exit error,
// so the message is not printed twice.
func initCoinmatch(configPath string) error {
	if err := config.Init(configPath); err != nil {
		emoji.Printf(":broken_heart: initialize failed with error: %s\n", err)
		return cli.NewExitError("", 1)
	}
	emoji.Printf(":beer: successfully initialized at %s\n", config.Path())
	return nil
}
